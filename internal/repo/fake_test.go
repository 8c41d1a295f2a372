package repo

import (
	"context"
	"errors"
	"io"

	"prosync-cli/internal/api"
)

// fakeAPI lets each test program just the endpoints it cares about.
// Unprogrammed endpoints fail loudly.
type fakeAPI struct {
	login            func(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error)
	register         func(ctx context.Context, req api.RegisterRequest) error
	googleLogin      func(ctx context.Context, req api.GoogleLoginRequest) (api.AuthResponse, error)
	profile          func(ctx context.Context) (api.User, error)
	projects         func(ctx context.Context) ([]api.Project, error)
	createProject    func(ctx context.Context, req api.CreateProjectRequest) (api.Project, error)
	projectDetail    func(ctx context.Context, projectID int) (api.ProjectDetail, error)
	boards           func(ctx context.Context, projectID int) ([]api.Board, error)
	createBoard      func(ctx context.Context, projectID int, req api.CreateBoardRequest) (api.Board, error)
	boardTasks       func(ctx context.Context, boardID int) ([]api.Task, error)
	task             func(ctx context.Context, taskID int) (api.Task, error)
	updateTask       func(ctx context.Context, taskID int, req api.UpdateTaskRequest) (api.Task, error)
	myTasks          func(ctx context.Context) ([]api.Task, error)
	createTask       func(ctx context.Context, req api.CreateTaskRequest) (api.Task, error)
	projectMembers   func(ctx context.Context, projectID int) ([]api.UserProject, error)
	userByEmail      func(ctx context.Context, email string) (api.User, error)
	addUserToProject func(ctx context.Context, req api.CreateUserProjectRequest) (api.UserProject, error)
	updateUserRole   func(ctx context.Context, userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error)
	notifications    func(ctx context.Context) (api.Page[api.Notification], error)
	markRead         func(ctx context.Context, id int) (api.Notification, error)
	markAllRead      func(ctx context.Context) error
	taskComments     func(ctx context.Context, taskID int) ([]api.Comment, error)
	createComment    func(ctx context.Context, req api.CreateCommentRequest) (api.Comment, error)
	taskFiles        func(ctx context.Context, taskID int) ([]api.TaskFile, error)
	uploadTaskFile   func(ctx context.Context, taskID int, filename, mimeType string, content io.Reader) (api.TaskFile, error)
	stats            func(ctx context.Context) (api.DashboardStats, error)
}

var errNotProgrammed = errors.New("fakeAPI: endpoint not programmed")

func (f *fakeAPI) Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error) {
	if f.login == nil {
		return api.AuthResponse{}, errNotProgrammed
	}
	return f.login(ctx, req)
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) error {
	if f.register == nil {
		return errNotProgrammed
	}
	return f.register(ctx, req)
}

func (f *fakeAPI) GoogleLogin(ctx context.Context, req api.GoogleLoginRequest) (api.AuthResponse, error) {
	if f.googleLogin == nil {
		return api.AuthResponse{}, errNotProgrammed
	}
	return f.googleLogin(ctx, req)
}

func (f *fakeAPI) Profile(ctx context.Context) (api.User, error) {
	if f.profile == nil {
		return api.User{}, errNotProgrammed
	}
	return f.profile(ctx)
}

func (f *fakeAPI) Projects(ctx context.Context) ([]api.Project, error) {
	if f.projects == nil {
		return nil, errNotProgrammed
	}
	return f.projects(ctx)
}

func (f *fakeAPI) CreateProject(ctx context.Context, req api.CreateProjectRequest) (api.Project, error) {
	if f.createProject == nil {
		return api.Project{}, errNotProgrammed
	}
	return f.createProject(ctx, req)
}

func (f *fakeAPI) ProjectDetail(ctx context.Context, projectID int) (api.ProjectDetail, error) {
	if f.projectDetail == nil {
		return api.ProjectDetail{}, errNotProgrammed
	}
	return f.projectDetail(ctx, projectID)
}

func (f *fakeAPI) Boards(ctx context.Context, projectID int) ([]api.Board, error) {
	if f.boards == nil {
		return nil, errNotProgrammed
	}
	return f.boards(ctx, projectID)
}

func (f *fakeAPI) CreateBoard(ctx context.Context, projectID int, req api.CreateBoardRequest) (api.Board, error) {
	if f.createBoard == nil {
		return api.Board{}, errNotProgrammed
	}
	return f.createBoard(ctx, projectID, req)
}

func (f *fakeAPI) BoardTasks(ctx context.Context, boardID int) ([]api.Task, error) {
	if f.boardTasks == nil {
		return nil, errNotProgrammed
	}
	return f.boardTasks(ctx, boardID)
}

func (f *fakeAPI) Task(ctx context.Context, taskID int) (api.Task, error) {
	if f.task == nil {
		return api.Task{}, errNotProgrammed
	}
	return f.task(ctx, taskID)
}

func (f *fakeAPI) UpdateTask(ctx context.Context, taskID int, req api.UpdateTaskRequest) (api.Task, error) {
	if f.updateTask == nil {
		return api.Task{}, errNotProgrammed
	}
	return f.updateTask(ctx, taskID, req)
}

func (f *fakeAPI) MyTasks(ctx context.Context) ([]api.Task, error) {
	if f.myTasks == nil {
		return nil, errNotProgrammed
	}
	return f.myTasks(ctx)
}

func (f *fakeAPI) CreateTask(ctx context.Context, req api.CreateTaskRequest) (api.Task, error) {
	if f.createTask == nil {
		return api.Task{}, errNotProgrammed
	}
	return f.createTask(ctx, req)
}

func (f *fakeAPI) ProjectMembers(ctx context.Context, projectID int) ([]api.UserProject, error) {
	if f.projectMembers == nil {
		return nil, errNotProgrammed
	}
	return f.projectMembers(ctx, projectID)
}

func (f *fakeAPI) UserByEmail(ctx context.Context, email string) (api.User, error) {
	if f.userByEmail == nil {
		return api.User{}, errNotProgrammed
	}
	return f.userByEmail(ctx, email)
}

func (f *fakeAPI) AddUserToProject(ctx context.Context, req api.CreateUserProjectRequest) (api.UserProject, error) {
	if f.addUserToProject == nil {
		return api.UserProject{}, errNotProgrammed
	}
	return f.addUserToProject(ctx, req)
}

func (f *fakeAPI) UpdateUserRole(ctx context.Context, userID, projectID int, req api.UpdateRoleRequest) (api.UserProject, error) {
	if f.updateUserRole == nil {
		return api.UserProject{}, errNotProgrammed
	}
	return f.updateUserRole(ctx, userID, projectID, req)
}

func (f *fakeAPI) Notifications(ctx context.Context) (api.Page[api.Notification], error) {
	if f.notifications == nil {
		return api.Page[api.Notification]{}, errNotProgrammed
	}
	return f.notifications(ctx)
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id int) (api.Notification, error) {
	if f.markRead == nil {
		return api.Notification{}, errNotProgrammed
	}
	return f.markRead(ctx, id)
}

func (f *fakeAPI) MarkAllNotificationsRead(ctx context.Context) error {
	if f.markAllRead == nil {
		return errNotProgrammed
	}
	return f.markAllRead(ctx)
}

func (f *fakeAPI) TaskComments(ctx context.Context, taskID int) ([]api.Comment, error) {
	if f.taskComments == nil {
		return nil, errNotProgrammed
	}
	return f.taskComments(ctx, taskID)
}

func (f *fakeAPI) CreateComment(ctx context.Context, req api.CreateCommentRequest) (api.Comment, error) {
	if f.createComment == nil {
		return api.Comment{}, errNotProgrammed
	}
	return f.createComment(ctx, req)
}

func (f *fakeAPI) TaskFiles(ctx context.Context, taskID int) ([]api.TaskFile, error) {
	if f.taskFiles == nil {
		return nil, errNotProgrammed
	}
	return f.taskFiles(ctx, taskID)
}

func (f *fakeAPI) UploadTaskFile(ctx context.Context, taskID int, filename, mimeType string, content io.Reader) (api.TaskFile, error) {
	if f.uploadTaskFile == nil {
		return api.TaskFile{}, errNotProgrammed
	}
	return f.uploadTaskFile(ctx, taskID, filename, mimeType, content)
}

func (f *fakeAPI) DashboardStats(ctx context.Context) (api.DashboardStats, error) {
	if f.stats == nil {
		return api.DashboardStats{}, errNotProgrammed
	}
	return f.stats(ctx)
}
