package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-deploy-config/internal/adapter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	adapter adapter.ServerAdapter

	items  []string
	idx    int
	status string
}

func NewMenuModel(serverAdapter adapter.ServerAdapter) *MenuModel {
	return &MenuModel{
		adapter: serverAdapter,
		items: []string{
			"Войти",
			"Посмотреть конфигурацию",
			"Изменить конфигурацию",
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(SignInSuccessNotice); ok {
		if notice.Email != "" {
			m.status = "Пользователь " + notice.Email + " успешно вошёл"
		} else {
			m.status = "Вход выполнен успешно"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "view"} }
		default:
			// editing requires a token — send the operator to sign in first
			if m.adapter.Token() == "" {
				m.status = "Для изменения конфигурации нужно войти"
				return m, func() tea.Msg { return NavigateTo{Page: "login"} }
			}
			return m, func() tea.Msg { return NavigateTo{Page: "edit"} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
