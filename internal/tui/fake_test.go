package tui

import (
	"context"
	"errors"
	"io"

	"prosync-cli/internal/api"
	"prosync-cli/internal/repo"
	"prosync-cli/internal/session"
)

var errNotProgrammed = errors.New("fake: endpoint not programmed")

// fakeAPI satisfies every repo API interface; each test programs only the
// endpoints its screen touches.
type fakeAPI struct {
	LoginFn       func(req api.LoginRequest) (api.AuthResponse, error)
	RegisterFn    func(req api.RegisterRequest) error
	GoogleLoginFn func(req api.GoogleLoginRequest) (api.AuthResponse, error)
	ProfileFn     func() (api.User, error)

	ProjectsFn      func() ([]api.Project, error)
	CreateProjectFn func(req api.CreateProjectRequest) (api.Project, error)
	ProjectDetailFn func(projectID int) (api.ProjectDetail, error)

	BoardsFn      func(projectID int) ([]api.Board, error)
	CreateBoardFn func(projectID int, req api.CreateBoardRequest) (api.Board, error)
	BoardTasksFn  func(boardID int) ([]api.Task, error)
	TaskFn        func(taskID int) (api.Task, error)
	UpdateTaskFn  func(taskID int, req api.UpdateTaskRequest) (api.Task, error)

	ProjectMembersFn   func(projectID int) ([]api.UserProject, error)
	UserByEmailFn      func(email string) (api.User, error)
	AddUserToProjectFn func(req api.CreateUserProjectRequest) (api.UserProject, error)
	UpdateUserRoleFn   func(userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error)

	MyTasksFn        func() ([]api.Task, error)
	CreateTaskFn     func(req api.CreateTaskRequest) (api.Task, error)
	TaskCommentsFn   func(taskID int) ([]api.Comment, error)
	CreateCommentFn  func(req api.CreateCommentRequest) (api.Comment, error)
	TaskFilesFn      func(taskID int) ([]api.TaskFile, error)
	UploadTaskFileFn func(taskID int, filename, mimeType string) (api.TaskFile, error)

	DashboardStatsFn func() (api.DashboardStats, error)
	NotificationsFn  func() (api.Page[api.Notification], error)
	MarkReadFn       func(id int) (api.Notification, error)
	MarkAllReadFn    func() error
}

func (f *fakeAPI) Login(_ context.Context, req api.LoginRequest) (api.AuthResponse, error) {
	if f.LoginFn == nil {
		return api.AuthResponse{}, errNotProgrammed
	}
	return f.LoginFn(req)
}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) error {
	if f.RegisterFn == nil {
		return errNotProgrammed
	}
	return f.RegisterFn(req)
}

func (f *fakeAPI) GoogleLogin(_ context.Context, req api.GoogleLoginRequest) (api.AuthResponse, error) {
	if f.GoogleLoginFn == nil {
		return api.AuthResponse{}, errNotProgrammed
	}
	return f.GoogleLoginFn(req)
}

func (f *fakeAPI) Profile(context.Context) (api.User, error) {
	if f.ProfileFn == nil {
		return api.User{}, errNotProgrammed
	}
	return f.ProfileFn()
}

func (f *fakeAPI) Projects(context.Context) ([]api.Project, error) {
	if f.ProjectsFn == nil {
		return nil, errNotProgrammed
	}
	return f.ProjectsFn()
}

func (f *fakeAPI) CreateProject(_ context.Context, req api.CreateProjectRequest) (api.Project, error) {
	if f.CreateProjectFn == nil {
		return api.Project{}, errNotProgrammed
	}
	return f.CreateProjectFn(req)
}

func (f *fakeAPI) ProjectDetail(_ context.Context, projectID int) (api.ProjectDetail, error) {
	if f.ProjectDetailFn == nil {
		return api.ProjectDetail{}, errNotProgrammed
	}
	return f.ProjectDetailFn(projectID)
}

func (f *fakeAPI) Boards(_ context.Context, projectID int) ([]api.Board, error) {
	if f.BoardsFn == nil {
		return nil, errNotProgrammed
	}
	return f.BoardsFn(projectID)
}

func (f *fakeAPI) CreateBoard(_ context.Context, projectID int, req api.CreateBoardRequest) (api.Board, error) {
	if f.CreateBoardFn == nil {
		return api.Board{}, errNotProgrammed
	}
	return f.CreateBoardFn(projectID, req)
}

func (f *fakeAPI) BoardTasks(_ context.Context, boardID int) ([]api.Task, error) {
	if f.BoardTasksFn == nil {
		return nil, errNotProgrammed
	}
	return f.BoardTasksFn(boardID)
}

func (f *fakeAPI) Task(_ context.Context, taskID int) (api.Task, error) {
	if f.TaskFn == nil {
		return api.Task{}, errNotProgrammed
	}
	return f.TaskFn(taskID)
}

func (f *fakeAPI) UpdateTask(_ context.Context, taskID int, req api.UpdateTaskRequest) (api.Task, error) {
	if f.UpdateTaskFn == nil {
		return api.Task{}, errNotProgrammed
	}
	return f.UpdateTaskFn(taskID, req)
}

func (f *fakeAPI) ProjectMembers(_ context.Context, projectID int) ([]api.UserProject, error) {
	if f.ProjectMembersFn == nil {
		return nil, errNotProgrammed
	}
	return f.ProjectMembersFn(projectID)
}

func (f *fakeAPI) UserByEmail(_ context.Context, email string) (api.User, error) {
	if f.UserByEmailFn == nil {
		return api.User{}, errNotProgrammed
	}
	return f.UserByEmailFn(email)
}

func (f *fakeAPI) AddUserToProject(_ context.Context, req api.CreateUserProjectRequest) (api.UserProject, error) {
	if f.AddUserToProjectFn == nil {
		return api.UserProject{}, errNotProgrammed
	}
	return f.AddUserToProjectFn(req)
}

func (f *fakeAPI) UpdateUserRole(_ context.Context, userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error) {
	if f.UpdateUserRoleFn == nil {
		return api.UserProject{}, errNotProgrammed
	}
	return f.UpdateUserRoleFn(userID, projectID, req)
}

func (f *fakeAPI) MyTasks(context.Context) ([]api.Task, error) {
	if f.MyTasksFn == nil {
		return nil, errNotProgrammed
	}
	return f.MyTasksFn()
}

func (f *fakeAPI) CreateTask(_ context.Context, req api.CreateTaskRequest) (api.Task, error) {
	if f.CreateTaskFn == nil {
		return api.Task{}, errNotProgrammed
	}
	return f.CreateTaskFn(req)
}

func (f *fakeAPI) TaskComments(_ context.Context, taskID int) ([]api.Comment, error) {
	if f.TaskCommentsFn == nil {
		return nil, errNotProgrammed
	}
	return f.TaskCommentsFn(taskID)
}

func (f *fakeAPI) CreateComment(_ context.Context, req api.CreateCommentRequest) (api.Comment, error) {
	if f.CreateCommentFn == nil {
		return api.Comment{}, errNotProgrammed
	}
	return f.CreateCommentFn(req)
}

func (f *fakeAPI) TaskFiles(_ context.Context, taskID int) ([]api.TaskFile, error) {
	if f.TaskFilesFn == nil {
		return nil, errNotProgrammed
	}
	return f.TaskFilesFn(taskID)
}

func (f *fakeAPI) UploadTaskFile(_ context.Context, taskID int, filename, mimeType string, _ io.Reader) (api.TaskFile, error) {
	if f.UploadTaskFileFn == nil {
		return api.TaskFile{}, errNotProgrammed
	}
	return f.UploadTaskFileFn(taskID, filename, mimeType)
}

func (f *fakeAPI) DashboardStats(context.Context) (api.DashboardStats, error) {
	if f.DashboardStatsFn == nil {
		return api.DashboardStats{}, errNotProgrammed
	}
	return f.DashboardStatsFn()
}

func (f *fakeAPI) Notifications(context.Context) (api.Page[api.Notification], error) {
	if f.NotificationsFn == nil {
		return api.Page[api.Notification]{}, errNotProgrammed
	}
	return f.NotificationsFn()
}

func (f *fakeAPI) MarkNotificationRead(_ context.Context, id int) (api.Notification, error) {
	if f.MarkReadFn == nil {
		return api.Notification{}, errNotProgrammed
	}
	return f.MarkReadFn(id)
}

func (f *fakeAPI) MarkAllNotificationsRead(context.Context) error {
	if f.MarkAllReadFn == nil {
		return errNotProgrammed
	}
	return f.MarkAllReadFn()
}

func newTestApp(f *fakeAPI) appModel {
	return newAppModel(context.Background(), Deps{Holder: session.NewHolder()}, repos{
		auth:     repo.NewAuth(f),
		projects: repo.NewProject(f),
		boards:   repo.NewBoard(f),
		tasks:    repo.NewTask(f),
		dash:     repo.NewDashboard(f),
	})
}

func asApp(m interface{ View() string }) appModel {
	return m.(appModel)
}
