package tui

import (
	"fmt"
	"strings"

	"prosync-cli/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultBoardName = "Tablero general"

type boardState struct {
	project api.Project
	board   *api.Board
	cols    []kanbanColumn
	sel     boardSelection
	loading bool
	errMsg  string
}

type boardReadyMsg struct {
	board api.Board
	err   error
}

type boardTasksMsg struct {
	tasks []api.Task
	err   error
}

// initBoardCmd resolves the project's working board: the first existing
// one, or a freshly created "Tablero general" when the project has none.
func (m appModel) initBoardCmd(projectID int) tea.Cmd {
	return func() tea.Msg {
		boards, err := m.r.boards.Boards(m.ctx, projectID)
		if err != nil {
			return boardReadyMsg{err: err}
		}
		if len(boards) > 0 {
			return boardReadyMsg{board: boards[0]}
		}
		b, err := m.r.boards.CreateBoard(m.ctx, projectID, defaultBoardName)
		if err != nil {
			return boardReadyMsg{err: err}
		}
		return boardReadyMsg{board: b}
	}
}

func (m appModel) loadBoardTasksCmd(boardID int) tea.Cmd {
	return func() tea.Msg {
		ts, err := m.r.boards.Tasks(m.ctx, boardID)
		return boardTasksMsg{tasks: ts, err: err}
	}
}

func (m appModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.board

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			m.view = viewProjects
			m.projects.loading = true
			return m, m.loadProjectsCmd()
		case "q":
			return m, tea.Quit
		case "left", "h":
			s.sel = clampBoardSelection(s.cols, boardSelection{col: s.sel.col - 1, row: s.sel.row})
			return m, nil
		case "right", "l":
			s.sel = clampBoardSelection(s.cols, boardSelection{col: s.sel.col + 1, row: s.sel.row})
			return m, nil
		case "up", "k":
			s.sel = clampBoardSelection(s.cols, boardSelection{col: s.sel.col, row: s.sel.row - 1})
			return m, nil
		case "down", "j":
			s.sel = clampBoardSelection(s.cols, boardSelection{col: s.sel.col, row: s.sel.row + 1})
			return m, nil
		case "r":
			if s.board != nil {
				return m, m.loadBoardTasksCmd(s.board.ID)
			}
			return m, nil
		case "c":
			if s.board != nil {
				m.view = viewCreateTask
				m.createTask = newCreateTaskState(*s.board)
				return m, m.createTask.focusCmd()
			}
			return m, nil
		case "m":
			m.view = viewTeam
			m.team = newTeamState(s.project.ID)
			return m, m.loadTeamCmd(s.project.ID)
		case "enter":
			if t, ok := selectedBoardTask(s.cols, s.sel); ok {
				m.view = viewTaskDetail
				m.taskDetail = taskDetailState{taskID: t.ID, projectID: s.project.ID, loading: true}
				return m, m.loadTaskDetailCmd(t.ID, s.project.ID)
			}
			return m, nil
		}

	case boardReadyMsg:
		if msg.err != nil {
			s.loading = false
			s.errMsg = fmt.Sprintf("Error al cargar el proyecto: %s", msg.err)
			return m, nil
		}
		b := msg.board
		s.board = &b
		return m, m.loadBoardTasksCmd(b.ID)

	case boardTasksMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = "Error al cargar tareas"
			return m, nil
		}
		s.errMsg = ""
		s.cols = buildBoardColumns(msg.tasks)
		s.sel = clampBoardSelection(s.cols, s.sel)
		return m, nil
	}

	return m, nil
}

func (m appModel) viewBoard() string {
	s := m.board

	boardName := ""
	if s.board != nil {
		boardName = "  ·  " + s.board.Name
	}
	header := titleBar(s.project.Name + boardName)

	var body string
	switch {
	case s.loading:
		body = styleMuted().Render("Cargando tablero…")
	case s.errMsg != "":
		body = errorLine(s.errMsg)
	default:
		body = renderBoardColumns(s.cols, s.sel, m.bodyWidth(), m.bodyHeight())
	}

	return joinScreen(
		header,
		body,
		footerBar("←→↑↓: mover  enter: abrir tarea  c: nueva tarea  m: equipo  r: recargar  esc: volver"),
	)
}

type createTaskState struct {
	board       api.Board
	title       textinput.Model
	description textinput.Model
	focus       int
	loading     bool
	errMsg      string
}

func newCreateTaskState(board api.Board) createTaskState {
	title := textinput.New()
	title.Placeholder = "título"
	title.CharLimit = 128

	desc := textinput.New()
	desc.Placeholder = "descripción (opcional)"
	desc.CharLimit = 512

	return createTaskState{board: board, title: title, description: desc}
}

func (s createTaskState) focusCmd() tea.Cmd {
	return s.title.Focus()
}

type taskCreatedMsg struct {
	task api.Task
	err  error
}

func (m appModel) createTaskCmd(boardID int, title string, description *string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.r.tasks.Create(m.ctx, boardID, title, description)
		return taskCreatedMsg{task: t, err: err}
	}
}

func (m appModel) updateCreateTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.createTask

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.view = viewBoard
			return m, nil
		case "tab", "shift+tab", "up", "down":
			s.focus = (s.focus + 1) % 2
			if s.focus == 0 {
				s.description.Blur()
				return m, s.title.Focus()
			}
			s.title.Blur()
			return m, s.description.Focus()
		case "enter":
			title := strings.TrimSpace(s.title.Value())
			if title == "" {
				s.errMsg = "El título es obligatorio"
				return m, nil
			}
			var desc *string
			if d := strings.TrimSpace(s.description.Value()); d != "" {
				desc = &d
			}
			s.loading = true
			s.errMsg = ""
			return m, m.createTaskCmd(s.board.ID, title, desc)
		}

		var cmd tea.Cmd
		if s.focus == 0 {
			s.title, cmd = s.title.Update(msg)
		} else {
			s.description, cmd = s.description.Update(msg)
		}
		return m, cmd

	case taskCreatedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return m, nil
		}
		m.view = viewBoard
		return m, m.loadBoardTasksCmd(s.board.ID)
	}

	return m, nil
}

func (m appModel) viewCreateTask() string {
	s := m.createTask

	status := ""
	if s.loading {
		status = styleMuted().Render("Creando tarea…")
	}

	return joinScreen(
		titleBar("Nueva tarea — "+s.board.Name),
		s.title.View()+"\n"+s.description.View(),
		status,
		errorLine(s.errMsg),
		footerBar("enter: crear  tab: campo  esc: cancelar"),
	)
}
