package tui

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-deploy-config/internal/adapter"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditConfigModel is the config editing screen. The operator enters a
// deployment URL and a JSON payload; the payload is validated locally and
// written through the authenticated update endpoint. The server reports
// whether the write created the deployment or replaced an existing config.
type EditConfigModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

func NewEditConfigModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *EditConfigModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://app.example.com"
	urlInput.CharLimit = 256
	urlInput.Width = 48
	urlInput.Focus()

	configInput := textinput.New()
	configInput.Placeholder = `{"featureEnabled": true, "theme": "dark"}`
	configInput.CharLimit = 4096
	configInput.Width = 48

	return &EditConfigModel{
		ctx:     ctx,
		adapter: serverAdapter,
		inputs:  []textinput.Model{urlInput, configInput},
	}
}

func (m *EditConfigModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - configSavedMsg — clears submitting state; on error, populates errMsg;
//     on success, shows whether the deployment was created or updated.
//   - esc            — cancels and navigates back to the menu.
//   - tab/shift+tab  — move focus between inputs.
//   - enter          — validates inputs and dispatches the async save command.
//
// All other key events are forwarded to the focused input widget.
func (m *EditConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(configSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.errMsg = ""
		if result.created {
			m.status = "Деплой зарегистрирован, конфигурация сохранена"
		} else {
			m.status = "Конфигурация обновлена"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			url := strings.TrimSpace(m.inputs[0].Value())
			config := strings.TrimSpace(m.inputs[1].Value())
			if url == "" || config == "" {
				m.errMsg = "URL и конфигурация обязательны"
				return m, nil
			}
			if !json.Valid([]byte(config)) {
				m.errMsg = "Конфигурация должна быть валидным JSON"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdSaveConfig(url, config)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EditConfigModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼──────────────────────────────────────────────\n")
	b.WriteString("URL      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Конфиг   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ИЗМЕНЕНИЕ КОНФИГУРАЦИИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

func (m *EditConfigModel) cmdSaveConfig(url, config string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		response, err := serverAdapter.UpdateConfig(ctx, models.UpdateConfigRequest{
			URL:    url,
			Config: json.RawMessage(config),
		})

		// a fresh row comes back with revision 1
		created := err == nil && response.Data.Revision == 1
		return configSavedMsg{response: response, created: created, err: err}
	}
}

func (m *EditConfigModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EditConfigModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
