package tui

import (
	"fmt"
	"strings"

	"prosync-cli/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type projectsState struct {
	loading bool
	errMsg  string
	items   []api.Project
	cursor  int
}

type projectsLoadedMsg struct {
	projects []api.Project
	err      error
}

func (m appModel) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ps, err := m.r.projects.ListWithStats(m.ctx)
		return projectsLoadedMsg{projects: ps, err: err}
	}
}

func (m appModel) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.projects

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
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
			return m, nil
		case "r":
			s.loading = true
			s.errMsg = ""
			return m, m.loadProjectsCmd()
		case "c":
			m.view = viewCreateProject
			m.createProject = newCreateProjectState()
			return m, m.createProject.focusCmd()
		case "enter":
			if s.cursor < len(s.items) {
				p := s.items[s.cursor]
				m.view = viewBoard
				m.board = boardState{project: p, loading: true}
				return m, m.initBoardCmd(p.ID)
			}
			return m, nil
		}

	case projectsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		s.items = msg.projects
		if s.cursor >= len(s.items) {
			s.cursor = 0
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) viewProjects() string {
	s := m.projects

	var body string
	switch {
	case s.loading:
		body = styleMuted().Render("Cargando proyectos…")
	case s.errMsg != "":
		body = errorLine(s.errMsg)
	case len(s.items) == 0:
		body = styleMuted().Render("No hay proyectos todavía; pulsa c para crear uno.")
	default:
		var b strings.Builder
		for i, p := range s.items {
			line := fmt.Sprintf("%s  (%d miembros, %d tareas)", p.Name, p.Members, p.Tasks)
			if d := derefStr(p.Description); d != "" {
				line += "  " + styleMuted().Render(truncateCell(d, 40))
			}
			if i == s.cursor {
				line = styleSelected().Render(line)
			}
			b.WriteString(line)
			if i < len(s.items)-1 {
				b.WriteString("\n")
			}
		}
		body = b.String()
	}

	return joinScreen(
		titleBar("Proyectos"),
		body,
		footerBar("enter: abrir  c: crear  r: recargar  esc: inicio  q: salir"),
	)
}

type createProjectState struct {
	name        textinput.Model
	description textinput.Model
	focus       int
	loading     bool
	errMsg      string
}

func newCreateProjectState() createProjectState {
	name := textinput.New()
	name.Placeholder = "nombre del proyecto"
	name.CharLimit = 128

	desc := textinput.New()
	desc.Placeholder = "descripción (opcional)"
	desc.CharLimit = 256

	return createProjectState{name: name, description: desc}
}

func (s createProjectState) focusCmd() tea.Cmd {
	return s.name.Focus()
}

type projectCreatedMsg struct {
	project api.Project
	err     error
}

func (m appModel) createProjectCmd(name string, description *string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.r.projects.Create(m.ctx, name, description)
		return projectCreatedMsg{project: p, err: err}
	}
}

func (m appModel) updateCreateProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.createProject

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.view = viewProjects
			return m, nil
		case "tab", "shift+tab", "up", "down":
			s.focus = (s.focus + 1) % 2
			if s.focus == 0 {
				s.description.Blur()
				return m, s.name.Focus()
			}
			s.name.Blur()
			return m, s.description.Focus()
		case "enter":
			name := strings.TrimSpace(s.name.Value())
			if name == "" {
				s.errMsg = "El nombre no puede estar vacío"
				return m, nil
			}
			var desc *string
			if d := strings.TrimSpace(s.description.Value()); d != "" {
				desc = &d
			}
			s.loading = true
			s.errMsg = ""
			return m, m.createProjectCmd(name, desc)
		}

		var cmd tea.Cmd
		if s.focus == 0 {
			s.name, cmd = s.name.Update(msg)
		} else {
			s.description, cmd = s.description.Update(msg)
		}
		return m, cmd

	case projectCreatedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		m.view = viewProjects
		m.projects = projectsState{loading: true}
		return m, m.loadProjectsCmd()
	}

	return m, nil
}

func (m appModel) viewCreateProject() string {
	s := m.createProject

	status := ""
	if s.loading {
		status = styleMuted().Render("Creando proyecto…")
	}

	return joinScreen(
		titleBar("Nuevo proyecto"),
		s.name.View()+"\n"+s.description.View(),
		status,
		errorLine(s.errMsg),
		footerBar("enter: crear  tab: campo  esc: cancelar"),
	)
}
