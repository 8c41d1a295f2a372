package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Auth

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *Client) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/google", req, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/auth/perfil", nil, &out)
	return out, err
}

// Dashboard

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out)
	return out, err
}

// Projects

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/api/projects/listar", nil, &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error) {
	var out Project
	err := c.do(ctx, http.MethodPost, "/api/projects/crear", req, &out)
	return out, err
}

func (c *Client) ProjectDetail(ctx context.Context, projectID int) (ProjectDetail, error) {
	var out ProjectDetail
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), nil, &out)
	return out, err
}

// Boards

func (c *Client) Boards(ctx context.Context, projectID int) ([]Board, error) {
	var out []Board
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/boards/project/%d", projectID), nil, &out)
	return out, err
}

func (c *Client) CreateBoard(ctx context.Context, projectID int, req CreateBoardRequest) (Board, error) {
	var out Board
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/boards/project/%d", projectID), req, &out)
	return out, err
}

// Tasks

func (c *Client) BoardTasks(ctx context.Context, boardID int) ([]Task, error) {
	var out []Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tareas/board/%d", boardID), nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, "/api/tareas", req, &out)
	return out, err
}

func (c *Client) Task(ctx context.Context, taskID int) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tareas/%d", taskID), nil, &out)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, taskID int, req UpdateTaskRequest) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tareas/%d", taskID), req, &out)
	return out, err
}

func (c *Client) MyTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.do(ctx, http.MethodGet, "/api/tareas/usuario", nil, &out)
	return out, err
}

// Membership

func (c *Client) ProjectMembers(ctx context.Context, projectID int) ([]UserProject, error) {
	var out []UserProject
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user-projects/project/%d", projectID), nil, &out)
	return out, err
}

func (c *Client) UserByEmail(ctx context.Context, email string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/users/email/"+url.PathEscape(email), nil, &out)
	return out, err
}

func (c *Client) AddUserToProject(ctx context.Context, req CreateUserProjectRequest) (UserProject, error) {
	var out UserProject
	err := c.do(ctx, http.MethodPost, "/api/user-projects", req, &out)
	return out, err
}

func (c *Client) UpdateUserRole(ctx context.Context, userID, projectID int, req UpdateRoleRequest) (UserProject, error) {
	var out UserProject
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user-projects/%d/%d", userID, projectID), req, &out)
	return out, err
}

// Notifications

func (c *Client) Notifications(ctx context.Context) (Page[Notification], error) {
	var out Page[Notification]
	err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) (Notification, error) {
	var out Notification
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), nil, &out)
	return out, err
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPatch, "/api/notifications/read-all", nil, nil)
}

// Comments

func (c *Client) TaskComments(ctx context.Context, taskID int) ([]Comment, error) {
	var out []Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/comments/task/%d", taskID), nil, &out)
	return out, err
}

func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (Comment, error) {
	var out Comment
	err := c.do(ctx, http.MethodPost, "/api/comments", req, &out)
	return out, err
}

// Files

func (c *Client) TaskFiles(ctx context.Context, taskID int) ([]TaskFile, error) {
	var out []TaskFile
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/files/task/%d", taskID), nil, &out)
	return out, err
}

func (c *Client) UploadTaskFile(ctx context.Context, taskID int, filename, mimeType string, content io.Reader) (TaskFile, error) {
	var out TaskFile
	err := c.upload(ctx, fmt.Sprintf("/api/files/task/%d", taskID), filename, mimeType, content, &out)
	return out, err
}
