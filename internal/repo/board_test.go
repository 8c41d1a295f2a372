package repo

import (
	"context"
	"errors"
	"testing"

	"prosync-cli/internal/api"
)

func TestUpdateTaskComputesEstadoLabel(t *testing.T) {
	var got api.UpdateTaskRequest
	f := &fakeAPI{
		updateTask: func(_ context.Context, taskID int, req api.UpdateTaskRequest) (api.Task, error) {
			got = req
			return api.Task{ID: taskID, Title: req.Title, Estado: &req.Estado}, nil
		},
	}
	r := NewBoard(f)

	cases := []struct {
		statusID  int
		wantLabel string
	}{
		{1, "Pendiente"},
		{2, "En Progreso"},
		{3, "Hecho"},
		{42, "Pendiente"},
	}
	for _, tc := range cases {
		if _, err := r.UpdateTask(context.Background(), 5, "t", nil, tc.statusID, nil, nil); err != nil {
			t.Fatalf("UpdateTask(%d): %v", tc.statusID, err)
		}
		if got.Estado.ID != tc.statusID || got.Estado.Estado != tc.wantLabel {
			t.Fatalf("status %d: expected estado {%d %q}, got %+v", tc.statusID, tc.statusID, tc.wantLabel, got.Estado)
		}
	}
}

func TestAddMemberByEmailTwoSequentialCalls(t *testing.T) {
	var created *api.CreateUserProjectRequest
	f := &fakeAPI{
		userByEmail: func(_ context.Context, email string) (api.User, error) {
			if email != "bob@x.dev" {
				t.Fatalf("unexpected email lookup %q", email)
			}
			return api.User{ID: 42, Username: "bob", Email: email}, nil
		},
		addUserToProject: func(_ context.Context, req api.CreateUserProjectRequest) (api.UserProject, error) {
			created = &req
			return api.UserProject{Usuario: api.User{ID: req.UserID}, Rol: api.Role{ID: req.RolID}}, nil
		},
	}
	r := NewBoard(f)

	up, err := r.AddMemberByEmail(context.Background(), 7, "bob@x.dev")
	if err != nil {
		t.Fatalf("AddMemberByEmail: %v", err)
	}
	if created == nil {
		t.Fatal("membership create call never issued")
	}
	if created.UserID != 42 || created.ProjectID != 7 || created.RolID != 1 {
		t.Fatalf("unexpected membership request: %+v", created)
	}
	if up.Usuario.ID != 42 {
		t.Fatalf("unexpected membership result: %+v", up)
	}
}

func TestAddMemberByEmailLookupFailureSkipsCreate(t *testing.T) {
	createCalled := false
	f := &fakeAPI{
		userByEmail: func(context.Context, string) (api.User, error) {
			return api.User{}, &api.Error{Status: 404, Body: "Usuario no encontrado"}
		},
		addUserToProject: func(_ context.Context, req api.CreateUserProjectRequest) (api.UserProject, error) {
			createCalled = true
			return api.UserProject{}, nil
		},
	}
	_, err := NewBoard(f).AddMemberByEmail(context.Background(), 7, "ghost@x.dev")
	if !api.IsStatus(err, 404) {
		t.Fatalf("expected the 404 to pass through, got %v", err)
	}
	if createCalled {
		t.Fatal("membership create must not run after a failed lookup")
	}
}

func TestChangeMemberRolePassThrough(t *testing.T) {
	f := &fakeAPI{
		updateUserRole: func(_ context.Context, userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error) {
			if userID != 3 || projectID != 7 || req.RolID != 2 {
				t.Fatalf("unexpected role update: user=%d project=%d req=%+v", userID, projectID, req)
			}
			return api.UserProject{Rol: api.Role{ID: 2, Rol: "Líder"}}, nil
		},
	}
	up, err := NewBoard(f).ChangeMemberRole(context.Background(), 3, 7, 2)
	if err != nil {
		t.Fatalf("ChangeMemberRole: %v", err)
	}
	if up.Rol.ID != 2 {
		t.Fatalf("unexpected result: %+v", up)
	}
}

func TestBoardsErrorPassThrough(t *testing.T) {
	want := errors.New("down")
	f := &fakeAPI{
		boards: func(context.Context, int) ([]api.Board, error) { return nil, want },
	}
	if _, err := NewBoard(f).Boards(context.Background(), 1); !errors.Is(err, want) {
		t.Fatalf("expected pass-through error, got %v", err)
	}
}
