package tui

import (
	"fmt"
	"strings"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"

	tea "github.com/charmbracelet/bubbletea"
)

type myTasksState struct {
	loading bool
	errMsg  string
	tasks   []api.Task
	cursor  int
}

type myTasksLoadedMsg struct {
	tasks []api.Task
	err   error
}

func (m appModel) loadMyTasksCmd() tea.Cmd {
	return func() tea.Msg {
		ts, err := m.r.tasks.MyTasks(m.ctx)
		return myTasksLoadedMsg{tasks: ts, err: err}
	}
}

func (m appModel) updateMyTasks(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.myTasks

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			m.view = viewHome
			return m, m.loadHomeCmd()
		case "q":
			return m, tea.Quit
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return m, nil
		case "down", "j":
			if s.cursor < len(s.tasks)-1 {
				s.cursor++
			}
			return m, nil
		case "r":
			s.loading = true
			s.errMsg = ""
			return m, m.loadMyTasksCmd()
		case "enter":
			if s.cursor < len(s.tasks) {
				t := s.tasks[s.cursor]
				projectID := 0
				if t.ProjectID != nil {
					projectID = *t.ProjectID
				}
				m.view = viewTaskDetail
				m.taskDetail = taskDetailState{taskID: t.ID, projectID: projectID, loading: true}
				return m, m.loadTaskDetailCmd(t.ID, projectID)
			}
			return m, nil
		}

	case myTasksLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		s.tasks = msg.tasks
		if s.cursor >= len(s.tasks) {
			s.cursor = 0
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) viewMyTasks() string {
	s := m.myTasks

	var body string
	switch {
	case s.loading:
		body = styleMuted().Render("Cargando tareas…")
	case s.errMsg != "":
		body = errorLine(s.errMsg)
	case len(s.tasks) == 0:
		body = styleMuted().Render("No tienes tareas asignadas.")
	default:
		var b strings.Builder
		for i, t := range s.tasks {
			project := derefStr(t.ProjectName)
			line := fmt.Sprintf("[%s] %s", status.Label(status.OfTask(t)), t.Title)
			if project != "" {
				line += "  " + styleMuted().Render(project)
			}
			if i == s.cursor {
				line = styleSelected().Render(line)
			}
			b.WriteString(line)
			if i < len(s.tasks)-1 {
				b.WriteString("\n")
			}
		}
		body = b.String()
	}

	return joinScreen(
		titleBar("Mis tareas"),
		body,
		footerBar("enter: abrir  r: recargar  esc: inicio  q: salir"),
	)
}
