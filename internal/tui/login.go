package tui

import (
	"fmt"

	"prosync-cli/internal/api"
	"prosync-cli/internal/identity"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const badCredentialsMsg = "Credenciales incorrectas. Por favor verifica tu usuario y contraseña."

type loginState struct {
	username textinput.Model
	password textinput.Model
	focus    int

	loading bool
	errMsg  string
	info    string

	// Google sign-in sub-state. The token is held while the user picks a
	// username, so the resubmit carries both.
	flow             *identity.Flow
	googleURL        string
	googleToken      string
	googleName       string
	usernameRequired bool
	googleUsername   textinput.Model
}

func newLoginState() loginState {
	user := textinput.New()
	user.Placeholder = "usuario"
	user.CharLimit = 64

	pass := textinput.New()
	pass.Placeholder = "contraseña"
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 128

	chooser := textinput.New()
	chooser.Placeholder = "elige un nombre de usuario"
	chooser.CharLimit = 64

	return loginState{username: user, password: pass, googleUsername: chooser}
}

func (s loginState) focusCmd() tea.Cmd {
	return s.username.Focus()
}

type loginDoneMsg struct {
	resp     api.AuthResponse
	username string
	err      error
}

type googleBeginMsg struct {
	flow *identity.Flow
	url  string
	err  error
}

type googleWaitMsg struct {
	res identity.Result
	err error
}

type googleLoginDoneMsg struct {
	resp  api.AuthResponse
	token string
	name  string
	err   error
}

type sessionSavedMsg struct{ err error }

func (m appModel) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.r.auth.Login(m.ctx, username, password)
		return loginDoneMsg{resp: resp, username: username, err: err}
	}
}

func (m appModel) googleBeginCmd() tea.Cmd {
	return func() tea.Msg {
		flow := identity.NewFlow(m.deps.GoogleID, m.deps.GoogleSecret)
		url, err := flow.Begin(m.ctx)
		return googleBeginMsg{flow: flow, url: url, err: err}
	}
}

func (m appModel) googleWaitCmd(flow *identity.Flow) tea.Cmd {
	return func() tea.Msg {
		res, err := flow.Wait(m.ctx)
		return googleWaitMsg{res: res, err: err}
	}
}

func (m appModel) googleLoginCmd(token string, username *string, name string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.r.auth.LoginWithGoogle(m.ctx, token, username)
		return googleLoginDoneMsg{resp: resp, token: token, name: name, err: err}
	}
}

func (m appModel) saveSessionCmd(token, username string) tea.Cmd {
	return func() tea.Msg {
		if m.deps.SaveToken == nil {
			return sessionSavedMsg{}
		}
		return sessionSavedMsg{err: m.deps.SaveToken(m.ctx, token, username)}
	}
}

// enterSession is the shared success path for both login flavors: arm the
// in-process token holder synchronously so the very next request carries
// it, then persist in the background and load the dashboard.
func (m appModel) enterSession(token, username string) (tea.Model, tea.Cmd) {
	if m.deps.Holder != nil {
		m.deps.Holder.Set(token)
	}
	m.login.loading = false
	m.login.usernameRequired = false
	m.login.googleToken = ""
	m.view = viewHome
	m.home = homeState{}
	return m, tea.Batch(m.saveSessionCmd(token, username), m.loadHomeCmd())
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.login

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return m, nil
		}
		if s.usernameRequired {
			switch msg.String() {
			case "esc":
				s.usernameRequired = false
				s.googleToken = ""
				s.googleUsername.SetValue("")
				return m, nil
			case "enter":
				name := s.googleUsername.Value()
				if name == "" {
					return m, nil
				}
				s.loading = true
				s.errMsg = ""
				return m, m.googleLoginCmd(s.googleToken, &name, name)
			}
			var cmd tea.Cmd
			s.googleUsername, cmd = s.googleUsername.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			if !s.username.Focused() && !s.password.Focused() {
				return m, tea.Quit
			}
		case "tab", "shift+tab", "up", "down":
			s.focus = (s.focus + 1) % 2
			if s.focus == 0 {
				s.password.Blur()
				return m, s.username.Focus()
			}
			s.username.Blur()
			return m, s.password.Focus()
		case "enter":
			s.loading = true
			s.errMsg = ""
			s.info = ""
			return m, m.loginCmd(s.username.Value(), s.password.Value())
		case "ctrl+g":
			if m.deps.GoogleID == "" {
				s.errMsg = "Google sign-in no configurado (PROSYNC_GOOGLE_CLIENT_ID)"
				return m, nil
			}
			s.errMsg = ""
			s.info = ""
			return m, m.googleBeginCmd()
		case "ctrl+r":
			m.view = viewRegister
			m.register = newRegisterState()
			return m, m.register.focusCmd()
		}

		var cmd tea.Cmd
		if s.focus == 0 {
			s.username, cmd = s.username.Update(msg)
		} else {
			s.password, cmd = s.password.Update(msg)
		}
		return m, cmd

	case loginDoneMsg:
		if msg.err != nil {
			s.loading = false
			if api.IsStatus(msg.err, 401) {
				s.errMsg = badCredentialsMsg
			} else {
				s.errMsg = msg.err.Error()
			}
			return m, nil
		}
		return m.enterSession(msg.resp.Token, msg.username)

	case googleBeginMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		s.flow = msg.flow
		s.googleURL = msg.url
		s.info = "Abre la URL en tu navegador para iniciar sesión"
		return m, m.googleWaitCmd(msg.flow)

	case googleWaitMsg:
		s.googleURL = ""
		s.flow = nil
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.res.ErrorMessage != "" {
			s.errMsg = msg.res.ErrorMessage
			return m, nil
		}
		s.loading = true
		return m, m.googleLoginCmd(msg.res.IDToken, nil, msg.res.DisplayName)

	case googleLoginDoneMsg:
		if msg.err != nil {
			if api.IsUserNotFound(msg.err) {
				// Unknown account: keep the identity token and ask for a
				// username to finish registration with.
				s.loading = false
				s.usernameRequired = true
				s.googleToken = msg.token
				s.googleName = msg.name
				return m, s.googleUsername.Focus()
			}
			s.loading = false
			s.errMsg = fmt.Sprintf("Error Google: %s", msg.err)
			return m, nil
		}
		return m.enterSession(msg.resp.Token, msg.name)

	case sessionSavedMsg:
		// Persistence failures don't block the session already running.
		return m, nil
	}

	return m, nil
}

func (m appModel) viewLogin() string {
	s := m.login

	if s.usernameRequired {
		return joinScreen(
			titleBar("ProSync — Completa tu registro"),
			"No existe una cuenta para esa identidad. Elige un nombre de usuario:",
			s.googleUsername.View(),
			errorLine(s.errMsg),
			footerBar("enter: continuar  esc: cancelar"),
		)
	}

	status := ""
	switch {
	case s.loading:
		status = styleMuted().Render("Iniciando sesión…")
	case s.googleURL != "":
		status = s.info + "\n\n  " + s.googleURL
	case s.info != "":
		status = s.info
	}

	return joinScreen(
		titleBar("ProSync — Iniciar sesión"),
		s.username.View()+"\n"+s.password.View(),
		status,
		errorLine(s.errMsg),
		footerBar("enter: entrar  tab: campo  ctrl+g: google  ctrl+r: registro  ctrl+c: salir"),
	)
}
