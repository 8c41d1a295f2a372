package repo

import (
	"context"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"
)

type BoardAPI interface {
	Boards(ctx context.Context, projectID int) ([]api.Board, error)
	CreateBoard(ctx context.Context, projectID int, req api.CreateBoardRequest) (api.Board, error)
	BoardTasks(ctx context.Context, boardID int) ([]api.Task, error)
	Task(ctx context.Context, taskID int) (api.Task, error)
	UpdateTask(ctx context.Context, taskID int, req api.UpdateTaskRequest) (api.Task, error)
	ProjectMembers(ctx context.Context, projectID int) ([]api.UserProject, error)
	UserByEmail(ctx context.Context, email string) (api.User, error)
	AddUserToProject(ctx context.Context, req api.CreateUserProjectRequest) (api.UserProject, error)
	UpdateUserRole(ctx context.Context, userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error)
}

type Board struct {
	api BoardAPI
}

func NewBoard(a BoardAPI) *Board { return &Board{api: a} }

func (r *Board) Boards(ctx context.Context, projectID int) ([]api.Board, error) {
	return r.api.Boards(ctx, projectID)
}

func (r *Board) CreateBoard(ctx context.Context, projectID int, name string) (api.Board, error) {
	return r.api.CreateBoard(ctx, projectID, api.CreateBoardRequest{Name: name})
}

func (r *Board) Tasks(ctx context.Context, boardID int) ([]api.Task, error) {
	return r.api.BoardTasks(ctx, boardID)
}

func (r *Board) Task(ctx context.Context, taskID int) (api.Task, error) {
	return r.api.Task(ctx, taskID)
}

// UpdateTask builds the estado pair from the fixed enumeration; the label is
// computed client-side (the backend applies the same table on its end).
func (r *Board) UpdateTask(ctx context.Context, taskID int, title string, description *string, statusID int, dueDate *string, responsableID *int) (api.Task, error) {
	req := api.UpdateTaskRequest{
		Title:         title,
		Description:   description,
		Estado:        api.Estado{ID: statusID, Estado: status.Label(statusID)},
		DueDate:       dueDate,
		ResponsableID: responsableID,
	}
	return r.api.UpdateTask(ctx, taskID, req)
}

func (r *Board) Members(ctx context.Context, projectID int) ([]api.UserProject, error) {
	return r.api.ProjectMembers(ctx, projectID)
}

// AddMemberByEmail resolves the email to a user id and then creates the
// membership. Two sequential calls with no transactional guarantee: if the
// second fails, no membership exists and the caller sees that error.
func (r *Board) AddMemberByEmail(ctx context.Context, projectID int, email string) (api.UserProject, error) {
	u, err := r.api.UserByEmail(ctx, email)
	if err != nil {
		return api.UserProject{}, err
	}
	return r.api.AddUserToProject(ctx, api.CreateUserProjectRequest{
		UserID:    u.ID,
		ProjectID: projectID,
		RolID:     1,
	})
}

func (r *Board) ChangeMemberRole(ctx context.Context, userID, projectID, roleID int) (api.UserProject, error) {
	return r.api.UpdateUserRole(ctx, userID, projectID, api.UpdateRoleRequest{RolID: roleID})
}
