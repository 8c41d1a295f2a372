package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerState struct {
	inputs  []textinput.Model // username, email, password, confirm
	focus   int
	loading bool
	errMsg  string
}

func newRegisterState() registerState {
	mk := func(placeholder string, secret bool) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 128
		if secret {
			in.EchoMode = textinput.EchoPassword
		}
		return in
	}
	return registerState{
		inputs: []textinput.Model{
			mk("usuario", false),
			mk("correo electrónico", false),
			mk("contraseña", true),
			mk("confirmar contraseña", true),
		},
	}
}

func (s registerState) focusCmd() tea.Cmd {
	return s.inputs[0].Focus()
}

type registerDoneMsg struct{ err error }

func (m appModel) registerCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		return registerDoneMsg{err: m.r.auth.Register(m.ctx, username, email, password)}
	}
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.register

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.view = viewLogin
			return m, m.login.focusCmd()
		case "tab", "down":
			return m, m.focusRegisterInput(s.focus + 1)
		case "shift+tab", "up":
			return m, m.focusRegisterInput(s.focus - 1)
		case "enter":
			username := s.inputs[0].Value()
			email := s.inputs[1].Value()
			password := s.inputs[2].Value()
			confirm := s.inputs[3].Value()

			if password != confirm {
				s.errMsg = "Las contraseñas no coinciden"
				return m, nil
			}
			if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
				s.errMsg = "Todos los campos son obligatorios"
				return m, nil
			}
			s.loading = true
			s.errMsg = ""
			return m, m.registerCmd(username, email, password)
		}

		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return m, cmd

	case registerDoneMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		m.view = viewLogin
		m.login.info = "Cuenta creada; inicia sesión"
		m.login.errMsg = ""
		return m, m.login.focusCmd()
	}

	return m, nil
}

func (m *appModel) focusRegisterInput(next int) tea.Cmd {
	s := &m.register
	n := len(s.inputs)
	s.inputs[s.focus].Blur()
	s.focus = ((next % n) + n) % n
	return s.inputs[s.focus].Focus()
}

func (m appModel) viewRegister() string {
	s := m.register

	rows := make([]string, 0, len(s.inputs))
	for _, in := range s.inputs {
		rows = append(rows, in.View())
	}

	status := ""
	if s.loading {
		status = styleMuted().Render("Creando cuenta…")
	}

	return joinScreen(
		titleBar("ProSync — Registro"),
		strings.Join(rows, "\n"),
		status,
		errorLine(s.errMsg),
		footerBar("enter: crear cuenta  tab: campo  esc: volver"),
	)
}
