package repo

import (
	"context"
	"io"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"
)

type TaskAPI interface {
	MyTasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (api.Task, error)
	TaskComments(ctx context.Context, taskID int) ([]api.Comment, error)
	CreateComment(ctx context.Context, req api.CreateCommentRequest) (api.Comment, error)
	TaskFiles(ctx context.Context, taskID int) ([]api.TaskFile, error)
	UploadTaskFile(ctx context.Context, taskID int, filename, mimeType string, content io.Reader) (api.TaskFile, error)
}

type Task struct {
	api TaskAPI
}

func NewTask(a TaskAPI) *Task { return &Task{api: a} }

func (r *Task) MyTasks(ctx context.Context) ([]api.Task, error) {
	return r.api.MyTasks(ctx)
}

// Create always starts a task in Pending; status changes go through
// Board.UpdateTask afterwards.
func (r *Task) Create(ctx context.Context, boardID int, title string, description *string) (api.Task, error) {
	return r.api.CreateTask(ctx, api.CreateTaskRequest{
		Title:       title,
		Description: description,
		BoardID:     boardID,
		EstadoID:    status.Pending,
	})
}

func (r *Task) Comments(ctx context.Context, taskID int) ([]api.Comment, error) {
	return r.api.TaskComments(ctx, taskID)
}

func (r *Task) AddComment(ctx context.Context, taskID, userID int, contenido string) (api.Comment, error) {
	return r.api.CreateComment(ctx, api.CreateCommentRequest{TaskID: taskID, UserID: userID, Contenido: contenido})
}

func (r *Task) Files(ctx context.Context, taskID int) ([]api.TaskFile, error) {
	return r.api.TaskFiles(ctx, taskID)
}

// UploadFile wraps content into a multipart body. A non-2xx response yields
// (nil, nil), an absent result rather than an error, so an upload rejection
// never crashes the screen that triggered it. Transport faults still return
// an error.
func (r *Task) UploadFile(ctx context.Context, taskID int, filename, mimeType string, content io.Reader) (*api.TaskFile, error) {
	f, err := r.api.UploadTaskFile(ctx, taskID, filename, mimeType, content)
	if err != nil {
		if api.StatusOf(err) != 0 {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
