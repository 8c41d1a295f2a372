package tui

import (
	"context"
	"strings"

	"prosync-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewHome
	viewProjects
	viewCreateProject
	viewBoard
	viewCreateTask
	viewTaskDetail
	viewTeam
	viewMyTasks
	viewNotifications
)

// appModel is the whole TUI: one screen visible at a time, each screen's
// state in its own sub-struct. Screens never share fetched data; entering
// a screen re-fetches from the backend.
type appModel struct {
	ctx  context.Context
	deps Deps
	r    repos

	width  int
	height int

	view view
	me   api.User

	login         loginState
	register      registerState
	home          homeState
	projects      projectsState
	createProject createProjectState
	board         boardState
	createTask    createTaskState
	taskDetail    taskDetailState
	team          teamState
	myTasks       myTasksState
	notifications notificationsState
}

func newAppModel(ctx context.Context, d Deps, r repos) appModel {
	m := appModel{
		ctx:  ctx,
		deps: d,
		r:    r,
		view: viewLogin,
	}
	m.login = newLoginState()
	if d.Holder != nil && d.Holder.Active() {
		m.view = viewHome
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewHome {
		return m.loadHomeCmd()
	}
	return m.login.focusCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewRegister:
		return m.updateRegister(msg)
	case viewHome:
		return m.updateHome(msg)
	case viewProjects:
		return m.updateProjects(msg)
	case viewCreateProject:
		return m.updateCreateProject(msg)
	case viewBoard:
		return m.updateBoard(msg)
	case viewCreateTask:
		return m.updateCreateTask(msg)
	case viewTaskDetail:
		return m.updateTaskDetail(msg)
	case viewTeam:
		return m.updateTeam(msg)
	case viewMyTasks:
		return m.updateMyTasks(msg)
	case viewNotifications:
		return m.updateNotifications(msg)
	default:
		return m, nil
	}
}

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewLogin:
		body = m.viewLogin()
	case viewRegister:
		body = m.viewRegister()
	case viewHome:
		body = m.viewHome()
	case viewProjects:
		body = m.viewProjects()
	case viewCreateProject:
		body = m.viewCreateProject()
	case viewBoard:
		body = m.viewBoard()
	case viewCreateTask:
		body = m.viewCreateTask()
	case viewTaskDetail:
		body = m.viewTaskDetail()
	case viewTeam:
		body = m.viewTeam()
	case viewMyTasks:
		body = m.viewMyTasks()
	case viewNotifications:
		body = m.viewNotifications()
	}
	return body
}

func (m appModel) bodyWidth() int {
	if m.width < 40 {
		return 80
	}
	return m.width
}

func (m appModel) bodyHeight() int {
	h := m.height - 4
	if h < 8 {
		return 16
	}
	return h
}

func titleBar(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(text)
}

func footerBar(text string) string {
	return styleMuted().Render(text)
}

func errorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(colorError).Render(msg)
}

func joinScreen(parts ...string) string {
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func emptyAsDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
