package tui

import (
	"fmt"
	"strings"

	"prosync-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type notificationsState struct {
	loading bool
	errMsg  string
	items   []api.Notification
	cursor  int
}

type notificationsLoadedMsg struct {
	items []api.Notification
	err   error
}

// markedReadMsg reports the backend outcome of an optimistic mark. The
// local flags were already flipped and are not rolled back on failure.
type markedReadMsg struct{ err error }

func (m appModel) loadNotificationsCmd() tea.Cmd {
	return func() tea.Msg {
		ns, err := m.r.dash.Notifications(m.ctx)
		return notificationsLoadedMsg{items: ns, err: err}
	}
}

func (m appModel) markReadCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return markedReadMsg{err: m.r.dash.MarkRead(m.ctx, id)}
	}
}

func (m appModel) markAllReadCmd() tea.Cmd {
	return func() tea.Msg {
		return markedReadMsg{err: m.r.dash.MarkAllRead(m.ctx)}
	}
}

func (m appModel) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.notifications

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			m.view = viewHome
			return m, m.loadHomeCmd()
		case "q":
			return m, tea.Quit
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return m, nil
		case "down", "j":
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
			return m, nil
		case "r":
			s.loading = true
			s.errMsg = ""
			return m, m.loadNotificationsCmd()
		case "enter":
			// Optimistic: flip locally first, then tell the backend.
			if s.cursor < len(s.items) {
				s.items[s.cursor].Leida = true
				return m, m.markReadCmd(s.items[s.cursor].ID)
			}
			return m, nil
		case "a":
			for i := range s.items {
				s.items[i].Leida = true
			}
			return m, m.markAllReadCmd()
		}

	case notificationsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("Error al cargar notificaciones: %s", msg.err)
			return m, nil
		}
		s.items = msg.items
		if s.cursor >= len(s.items) {
			s.cursor = 0
		}
		return m, nil

	case markedReadMsg:
		// No rollback: the local flags stay flipped whatever the backend said.
		return m, nil
	}

	return m, nil
}

func (m appModel) viewNotifications() string {
	s := m.notifications

	var body string
	switch {
	case s.loading:
		body = styleMuted().Render("Cargando notificaciones…")
	case s.errMsg != "":
		body = errorLine(s.errMsg)
	case len(s.items) == 0:
		body = styleMuted().Render("Sin notificaciones.")
	default:
		var b strings.Builder
		for i, n := range s.items {
			marker := "●"
			line := n.Mensaje
			if n.Leida {
				marker = " "
				line = styleMuted().Render(line)
			} else {
				line = lipgloss.NewStyle().Foreground(colorUnreadFg).Render(line)
			}
			row := marker + " " + line
			if i == s.cursor {
				row = styleSelected().Render(marker + " " + n.Mensaje)
			}
			b.WriteString(row)
			if i < len(s.items)-1 {
				b.WriteString("\n")
			}
		}
		body = b.String()
	}

	return joinScreen(
		titleBar("Notificaciones"),
		body,
		footerBar("enter: marcar leída  a: marcar todas  r: recargar  esc: inicio"),
	)
}
