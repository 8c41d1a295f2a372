package tui

import (
	"fmt"
	"strings"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type teamState struct {
	projectID int
	loading   bool
	errMsg    string
	members   []api.UserProject
	cursor    int

	adding bool
	email  textinput.Model
}

func newTeamState(projectID int) teamState {
	email := textinput.New()
	email.Placeholder = "ejemplo@correo.com"
	email.CharLimit = 128
	return teamState{projectID: projectID, loading: true, email: email}
}

type teamLoadedMsg struct {
	members []api.UserProject
	err     error
}

type memberAddedMsg struct{ err error }

type roleChangedMsg struct{ err error }

func (m appModel) loadTeamCmd(projectID int) tea.Cmd {
	return func() tea.Msg {
		ms, err := m.r.boards.Members(m.ctx, projectID)
		return teamLoadedMsg{members: ms, err: err}
	}
}

func (m appModel) addMemberCmd(projectID int, email string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.r.boards.AddMemberByEmail(m.ctx, projectID, email)
		return memberAddedMsg{err: err}
	}
}

func (m appModel) changeRoleCmd(userID, projectID, roleID int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.r.boards.ChangeMemberRole(m.ctx, userID, projectID, roleID)
		return roleChangedMsg{err: err}
	}
}

func (m appModel) updateTeam(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.team

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return m, nil
		}
		if s.adding {
			switch msg.String() {
			case "esc":
				s.adding = false
				s.email.SetValue("")
				return m, nil
			case "enter":
				email := strings.TrimSpace(s.email.Value())
				if !strings.Contains(email, "@") {
					s.errMsg = "Escribe un correo válido"
					return m, nil
				}
				s.adding = false
				s.loading = true
				s.errMsg = ""
				s.email.SetValue("")
				return m, m.addMemberCmd(s.projectID, email)
			}
			var cmd tea.Cmd
			s.email, cmd = s.email.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc", "backspace":
			m.view = viewBoard
			return m, nil
		case "q":
			return m, tea.Quit
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return m, nil
		case "down", "j":
			if s.cursor < len(s.members)-1 {
				s.cursor++
			}
			return m, nil
		case "a":
			s.adding = true
			s.errMsg = ""
			return m, s.email.Focus()
		case "r":
			s.loading = true
			s.errMsg = ""
			return m, m.loadTeamCmd(s.projectID)
		case "l":
			// Toggle the selected member between Miembro and Líder.
			if s.cursor < len(s.members) {
				up := s.members[s.cursor]
				role := status.RoleLeader
				if status.IsLeader(up.Rol) {
					role = status.RoleMember
				}
				s.loading = true
				s.errMsg = ""
				return m, m.changeRoleCmd(up.Usuario.ID, s.projectID, role)
			}
			return m, nil
		}

	case teamLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		s.members = msg.members
		if s.cursor >= len(s.members) {
			s.cursor = 0
		}
		return m, nil

	case memberAddedMsg:
		if msg.err != nil {
			s.loading = false
			s.errMsg = teamErrorMessage(msg.err)
			return m, nil
		}
		return m, m.loadTeamCmd(s.projectID)

	case roleChangedMsg:
		if msg.err != nil {
			s.loading = false
			s.errMsg = teamErrorMessage(msg.err)
			return m, nil
		}
		return m, m.loadTeamCmd(s.projectID)
	}

	return m, nil
}

func teamErrorMessage(err error) string {
	switch {
	case api.IsStatus(err, 404):
		return "Usuario no encontrado"
	case api.IsStatus(err, 403):
		return "No tienes permisos de Líder"
	default:
		return err.Error()
	}
}

func (m appModel) viewTeam() string {
	s := m.team

	var body string
	switch {
	case s.loading:
		body = styleMuted().Render("Cargando equipo…")
	case len(s.members) == 0:
		body = styleMuted().Render("Sin miembros.")
	default:
		var b strings.Builder
		for i, up := range s.members {
			line := fmt.Sprintf("%s  <%s>  %s", up.Usuario.Username, up.Usuario.Email, up.Rol.Rol)
			if i == s.cursor {
				line = styleSelected().Render(line)
			}
			b.WriteString(line)
			if i < len(s.members)-1 {
				b.WriteString("\n")
			}
		}
		body = b.String()
	}

	parts := []string{titleBar("Equipo"), body}
	if s.adding {
		parts = append(parts, "Correo del usuario a invitar:\n"+s.email.View())
	}
	parts = append(parts,
		errorLine(s.errMsg),
		footerBar("a: invitar  l: cambiar rol  r: recargar  esc: volver"),
	)
	return joinScreen(parts...)
}
