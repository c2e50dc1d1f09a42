package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/adapter"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewConfigModel is the config inspection screen. The operator enters a
// deployment URL, the config is fetched from the server, pretty-printed, and
// can be copied to the system clipboard. A deployment unknown to the server
// is registered with the default config by the read itself, so this screen
// never shows "not found".
type ViewConfigModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	urlInput textinput.Model
	loading  bool

	loadedURL    string
	loadedConfig string
	errMsg       string
	status       string
}

func NewViewConfigModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *ViewConfigModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://app.example.com"
	urlInput.CharLimit = 256
	urlInput.Width = 48
	urlInput.Focus()

	return &ViewConfigModel{
		ctx:      ctx,
		adapter:  serverAdapter,
		urlInput: urlInput,
	}
}

func (m *ViewConfigModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - configLoadedMsg — stores the pretty-printed config or the fetch error.
//   - esc             — navigates back to the menu.
//   - enter           — dispatches the async fetch command.
//   - ctrl+k          — copies the loaded config to the system clipboard.
//
// All other key events are forwarded to the URL input widget.
func (m *ViewConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case configLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.loadedURL = result.url
		m.loadedConfig = prettyJSON(result.config)
		return m, nil
	case copiedMsg:
		m.status = "Конфигурация скопирована в буфер обмена"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.loading = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.loading {
				return m, nil
			}

			url := strings.TrimSpace(m.urlInput.Value())
			if url == "" {
				m.errMsg = "URL деплоя обязателен"
				return m, nil
			}

			m.errMsg = ""
			m.loading = true
			return m, m.cmdLoadConfig(url)
		case "ctrl+k":
			if m.loadedConfig == "" {
				return m, nil
			}
			return m, m.cmdCopyConfig()
		}
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *ViewConfigModel) View() string {
	var b strings.Builder
	b.WriteString("URL │ [")
	b.WriteString(m.urlInput.View())
	b.WriteString("]\n")

	if m.loading {
		b.WriteString("\nЗагрузка...\n")
	}

	if m.loadedConfig != "" {
		b.WriteString("\n")
		b.WriteString(fitText(m.loadedURL, 72))
		b.WriteString("\n")
		b.WriteString(m.loadedConfig)
		b.WriteString("\n")
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

	return renderPage("КОНФИГУРАЦИЯ ДЕПЛОЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: загрузить │ ctrl+k: копировать")
}

func (m *ViewConfigModel) cmdLoadConfig(url string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		config, err := serverAdapter.GetConfig(ctx, url)
		return configLoadedMsg{url: url, config: config, err: err}
	}
}

func (m *ViewConfigModel) cmdCopyConfig() tea.Cmd {
	config := m.loadedConfig

	return func() tea.Msg {
		if err := clipboard.WriteAll(config); err != nil {
			return configLoadedMsg{url: "", err: err}
		}
		return copiedMsg{}
	}
}

func prettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
