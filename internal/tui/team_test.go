package tui

import (
	"testing"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"

	tea "github.com/charmbracelet/bubbletea"
)

func typeEmail(m appModel, email string) appModel {
	m.team.email.SetValue(email)
	return m
}

func TestTeamAddRejectsInvalidEmailLocally(t *testing.T) {
	m := newTestApp(&fakeAPI{})
	m.view = viewTeam
	m.team = newTeamState(2)
	m.team.loading = false
	m.team.adding = true
	m = typeEmail(m, "no-es-correo")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asApp(next)

	if cmd != nil {
		t.Fatalf("invalid email must not reach the backend")
	}
	if m.team.errMsg != "Escribe un correo válido" {
		t.Fatalf("errMsg = %q", m.team.errMsg)
	}
	if !m.team.adding {
		t.Fatalf("invite form must stay open for correction")
	}
}

func TestTeamAddUnknownEmailShowsUserNotFound(t *testing.T) {
	f := &fakeAPI{
		UserByEmailFn: func(email string) (api.User, error) {
			return api.User{}, &api.Error{Status: 404, Method: "GET", Path: "/api/usuarios/email/" + email}
		},
	}
	m := newTestApp(f)
	m.view = viewTeam
	m.team = newTeamState(2)
	m.team.loading = false
	m.team.adding = true
	m = typeEmail(m, "nadie@correo.com")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asApp(next)
	if cmd == nil {
		t.Fatalf("valid email must trigger the add command")
	}

	next, _ = m.Update(cmd())
	m = asApp(next)

	if m.team.errMsg != "Usuario no encontrado" {
		t.Fatalf("errMsg = %q", m.team.errMsg)
	}
	if m.team.loading {
		t.Fatalf("loading must stop after the failure")
	}
}

func TestTeamAddWithoutLeaderRightsShowsPermissionMessage(t *testing.T) {
	f := &fakeAPI{
		UserByEmailFn: func(email string) (api.User, error) {
			return api.User{ID: 7, Email: email}, nil
		},
		AddUserToProjectFn: func(req api.CreateUserProjectRequest) (api.UserProject, error) {
			return api.UserProject{}, &api.Error{Status: 403, Method: "POST", Path: "/api/usuarios-proyectos"}
		},
	}
	m := newTestApp(f)
	m.view = viewTeam
	m.team = newTeamState(2)
	m.team.loading = false
	m.team.adding = true
	m = typeEmail(m, "ana@correo.com")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asApp(next)
	next, _ = m.Update(cmd())
	m = asApp(next)

	if m.team.errMsg != "No tienes permisos de Líder" {
		t.Fatalf("errMsg = %q", m.team.errMsg)
	}
}

func TestRoleToggleFlipsBetweenMemberAndLeader(t *testing.T) {
	var gotRole int
	f := &fakeAPI{
		UpdateUserRoleFn: func(userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error) {
			gotRole = req.RolID
			return api.UserProject{}, nil
		},
	}
	m := newTestApp(f)
	m.view = viewTeam
	m.team = newTeamState(2)
	m.team.loading = false
	m.team.members = []api.UserProject{
		{Usuario: api.User{ID: 4, Username: "ana"}, Rol: api.Role{ID: status.RoleLeader, Rol: "Líder"}},
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = asApp(next)
	if cmd == nil {
		t.Fatalf("toggle must issue the role change")
	}
	if _, ok := cmd().(roleChangedMsg); !ok {
		t.Fatalf("unexpected message type")
	}
	if gotRole != status.RoleMember {
		t.Fatalf("leader must be demoted to member, sent role %d", gotRole)
	}
}

func TestMemberAddedReloadsTeam(t *testing.T) {
	reloaded := false
	f := &fakeAPI{
		ProjectMembersFn: func(projectID int) ([]api.UserProject, error) {
			reloaded = true
			return []api.UserProject{{Usuario: api.User{ID: 4}}}, nil
		},
	}
	m := newTestApp(f)
	m.view = viewTeam
	m.team = newTeamState(2)
	m.team.loading = false

	next, cmd := m.Update(memberAddedMsg{})
	m = asApp(next)
	if cmd == nil {
		t.Fatalf("successful add must reload the team")
	}
	next, _ = m.Update(cmd())
	m = asApp(next)

	if !reloaded {
		t.Fatalf("reload command never hit the members endpoint")
	}
	if len(m.team.members) != 1 {
		t.Fatalf("members = %+v", m.team.members)
	}
}
