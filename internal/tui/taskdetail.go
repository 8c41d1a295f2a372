package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

type detailMode int

const (
	detailBrowse detailMode = iota
	detailEditTitle
	detailEditDesc
	detailEditDue
	detailComment
	detailAttach
)

type taskDetailState struct {
	taskID    int
	projectID int

	loading bool
	errMsg  string
	saved   bool

	task        api.Task
	members     []api.UserProject
	comments    []api.Comment
	attachments []api.TaskFile
	isLeader    bool

	// Pending edits, applied to the backend on ctrl+s.
	title       string
	description *string
	statusID    int
	dueDate     *string
	assignee    *int

	mode      detailMode
	input     textinput.Model
	attCursor int
}

type taskDetailLoadedMsg struct {
	task     api.Task
	members  []api.UserProject
	comments []api.Comment
	files    []api.TaskFile
	me       api.User
	err      error
}

type taskSavedMsg struct {
	task api.Task
	err  error
}

type commentAddedMsg struct {
	comment api.Comment
	err     error
}

type fileUploadedMsg struct {
	file *api.TaskFile
	err  error
}

// loadTaskDetailCmd fetches everything the detail screen shows. Only the
// task and profile fetches are fatal; members, comments and attachments
// degrade to empty lists so a flaky sub-resource doesn't hide the task.
func (m appModel) loadTaskDetailCmd(taskID, projectID int) tea.Cmd {
	return func() tea.Msg {
		var out taskDetailLoadedMsg

		g, ctx := errgroup.WithContext(m.ctx)
		g.Go(func() error {
			var err error
			out.task, err = m.r.boards.Task(ctx, taskID)
			return err
		})
		g.Go(func() error {
			var err error
			out.me, err = m.r.auth.Profile(ctx)
			return err
		})
		g.Go(func() error {
			if ms, err := m.r.boards.Members(ctx, projectID); err == nil {
				out.members = ms
			}
			return nil
		})
		g.Go(func() error {
			if cs, err := m.r.tasks.Comments(ctx, taskID); err == nil {
				out.comments = cs
			}
			return nil
		})
		g.Go(func() error {
			if fs, err := m.r.tasks.Files(ctx, taskID); err == nil {
				out.files = fs
			}
			return nil
		})
		out.err = g.Wait()
		return out
	}
}

func (m appModel) saveTaskCmd(s taskDetailState) tea.Cmd {
	return func() tea.Msg {
		due := s.dueDate
		if due != nil {
			if d := strings.TrimSpace(*due); d == "" || d == "Sin Fecha" {
				due = nil
			}
		}
		t, err := m.r.boards.UpdateTask(m.ctx, s.taskID, s.title, s.description, s.statusID, due, s.assignee)
		return taskSavedMsg{task: t, err: err}
	}
}

func (m appModel) addCommentCmd(taskID, userID int, text string) tea.Cmd {
	return func() tea.Msg {
		c, err := m.r.tasks.AddComment(m.ctx, taskID, userID, text)
		return commentAddedMsg{comment: c, err: err}
	}
}

func (m appModel) uploadFileCmd(taskID int, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return fileUploadedMsg{err: err}
		}
		defer f.Close()
		name := filepath.Base(path)
		uploaded, err := m.r.tasks.UploadFile(m.ctx, taskID, name, mime.TypeByExtension(filepath.Ext(name)), f)
		return fileUploadedMsg{file: uploaded, err: err}
	}
}

func (m appModel) updateTaskDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.taskDetail

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return m, nil
		}
		if s.mode != detailBrowse {
			return m.updateTaskDetailInput(msg)
		}
		return m.updateTaskDetailBrowse(msg)

	case taskDetailLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("Error al cargar tarea: %s", msg.err)
			return m, nil
		}
		m.me = msg.me
		s.task = msg.task
		s.members = msg.members
		s.comments = msg.comments
		s.attachments = msg.files

		s.isLeader = false
		for _, up := range s.members {
			if up.Usuario.ID == msg.me.ID && status.IsLeader(up.Rol) {
				s.isLeader = true
			}
		}

		s.title = msg.task.Title
		s.description = msg.task.Description
		s.statusID = status.OfTask(msg.task)
		s.dueDate = msg.task.DueDate
		s.assignee = msg.task.ResponsableID
		if s.attCursor >= len(s.attachments) {
			s.attCursor = 0
		}
		return m, nil

	case taskSavedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("Error al guardar: %s", msg.err)
			return m, nil
		}
		s.saved = true
		s.errMsg = ""
		return m, m.loadTaskDetailCmd(s.taskID, s.projectID)

	case commentAddedMsg:
		// Failures here are swallowed; the comment simply doesn't appear.
		if msg.err == nil {
			s.comments = append(s.comments, msg.comment)
		}
		return m, nil

	case fileUploadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("Error al subir archivo: %s", msg.err)
			return m, nil
		}
		if msg.file == nil {
			s.errMsg = "Error al subir archivo: Respuesta vacía"
			return m, nil
		}
		s.attachments = append(s.attachments, *msg.file)
		return m, nil
	}

	return m, nil
}

func (m appModel) updateTaskDetailBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.taskDetail

	requireLeader := func() bool {
		if s.isLeader {
			return true
		}
		s.errMsg = "No tienes permisos de Líder"
		return false
	}

	switch msg.String() {
	case "esc", "backspace":
		m.view = viewBoard
		if m.board.board != nil {
			return m, m.loadBoardTasksCmd(m.board.board.ID)
		}
		return m, nil
	case "q":
		return m, tea.Quit
	case "r":
		s.loading = true
		s.saved = false
		return m, m.loadTaskDetailCmd(s.taskID, s.projectID)
	case "s":
		if !requireLeader() {
			return m, nil
		}
		s.statusID = nextStatus(s.statusID)
		s.saved = false
		return m, nil
	case "a":
		if !requireLeader() {
			return m, nil
		}
		s.assignee = nextAssignee(s.members, s.assignee)
		s.saved = false
		return m, nil
	case "e":
		if !requireLeader() {
			return m, nil
		}
		return m, m.enterDetailInput(detailEditTitle, s.title, "título")
	case "d":
		if !requireLeader() {
			return m, nil
		}
		return m, m.enterDetailInput(detailEditDesc, derefStr(s.description), "descripción")
	case "f":
		if !requireLeader() {
			return m, nil
		}
		return m, m.enterDetailInput(detailEditDue, derefStr(s.dueDate), "fecha límite (YYYY-MM-DD, vacío = Sin Fecha)")
	case "ctrl+s":
		if !requireLeader() {
			return m, nil
		}
		s.loading = true
		s.errMsg = ""
		return m, m.saveTaskCmd(*s)
	case "c":
		return m, m.enterDetailInput(detailComment, "", "escribe un comentario")
	case "u":
		return m, m.enterDetailInput(detailAttach, "", "ruta del archivo a adjuntar")
	case "n":
		if s.attCursor < len(s.attachments)-1 {
			s.attCursor++
		}
		return m, nil
	case "p":
		if s.attCursor > 0 {
			s.attCursor--
		}
		return m, nil
	case "x":
		// Client-only removal: there is no delete endpoint, the file just
		// leaves this snapshot until the next reload.
		if s.attCursor < len(s.attachments) {
			s.attachments = append(s.attachments[:s.attCursor], s.attachments[s.attCursor+1:]...)
			if s.attCursor >= len(s.attachments) && s.attCursor > 0 {
				s.attCursor--
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *appModel) enterDetailInput(mode detailMode, value, placeholder string) tea.Cmd {
	s := &m.taskDetail
	s.mode = mode
	s.errMsg = ""
	s.input = textinput.New()
	s.input.Placeholder = placeholder
	s.input.CharLimit = 512
	s.input.SetValue(value)
	return s.input.Focus()
}

func (m appModel) updateTaskDetailInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.taskDetail

	switch msg.String() {
	case "esc":
		s.mode = detailBrowse
		return m, nil
	case "enter":
		value := strings.TrimSpace(s.input.Value())
		mode := s.mode
		s.mode = detailBrowse
		s.saved = false

		switch mode {
		case detailEditTitle:
			if value == "" {
				s.errMsg = "El título es obligatorio"
				return m, nil
			}
			s.title = value
		case detailEditDesc:
			if value == "" {
				s.description = nil
			} else {
				s.description = &value
			}
		case detailEditDue:
			if value == "" || value == "Sin Fecha" {
				s.dueDate = nil
			} else {
				s.dueDate = &value
			}
		case detailComment:
			if value == "" {
				return m, nil
			}
			if m.me.ID == 0 {
				s.errMsg = "No se pudo identificar al usuario"
				return m, nil
			}
			return m, m.addCommentCmd(s.taskID, m.me.ID, value)
		case detailAttach:
			if value == "" {
				return m, nil
			}
			s.loading = true
			return m, m.uploadFileCmd(s.taskID, value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return m, cmd
}

func nextStatus(id int) int {
	switch id {
	case status.Pending:
		return status.InProgress
	case status.InProgress:
		return status.Done
	default:
		return status.Pending
	}
}

// nextAssignee cycles nil -> members[0] -> ... -> members[n-1] -> nil.
func nextAssignee(members []api.UserProject, cur *int) *int {
	if len(members) == 0 {
		return nil
	}
	if cur == nil {
		id := members[0].Usuario.ID
		return &id
	}
	for i, up := range members {
		if up.Usuario.ID == *cur {
			if i == len(members)-1 {
				return nil
			}
			id := members[i+1].Usuario.ID
			return &id
		}
	}
	id := members[0].Usuario.ID
	return &id
}

func (m appModel) viewTaskDetail() string {
	s := m.taskDetail

	if s.loading {
		return joinScreen(titleBar("Tarea"), styleMuted().Render("Cargando…"))
	}
	if s.errMsg != "" && s.task.ID == 0 {
		return joinScreen(titleBar("Tarea"), errorLine(s.errMsg), footerBar("r: reintentar  esc: volver"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Estado: %s", status.Label(s.statusID))
	fmt.Fprintf(&b, "   Fecha límite: %s", emptyAsDash(derefStr(s.dueDate)))
	fmt.Fprintf(&b, "   Responsable: %s", assigneeName(s.members, s.assignee))
	if s.saved {
		b.WriteString("   " + styleMuted().Render("(guardado)"))
	}

	desc := renderMarkdown(derefStr(s.description), m.bodyWidth()-4)
	if desc == "" {
		desc = styleMuted().Render("Sin descripción.")
	}

	var comments strings.Builder
	comments.WriteString(titleBar(fmt.Sprintf("Comentarios (%d)", len(s.comments))))
	for _, c := range s.comments {
		author := "-"
		if c.User != nil {
			author = c.User.Username
		}
		fmt.Fprintf(&comments, "\n%s: %s", author, c.Contenido)
	}

	var files strings.Builder
	files.WriteString(titleBar(fmt.Sprintf("Adjuntos (%d)", len(s.attachments))))
	for i, f := range s.attachments {
		line := f.ArchivoURL
		if i == s.attCursor {
			line = styleSelected().Render(line)
		}
		files.WriteString("\n" + line)
	}

	footer := "c: comentar  u: adjuntar  n/p: adjunto  x: quitar adjunto  r: recargar  esc: volver"
	if s.isLeader {
		footer = "e: título  d: descripción  s: estado  f: fecha  a: responsable  ctrl+s: guardar  " + footer
	}

	parts := []string{
		titleBar(s.title),
		b.String(),
		desc,
		comments.String(),
		files.String(),
	}
	if s.mode != detailBrowse {
		parts = append(parts, s.input.View())
	}
	parts = append(parts, errorLine(s.errMsg), footerBar(footer))
	return joinScreen(parts...)
}

func assigneeName(members []api.UserProject, id *int) string {
	if id == nil {
		return "-"
	}
	for _, up := range members {
		if up.Usuario.ID == *id {
			return up.Usuario.Username
		}
	}
	return fmt.Sprintf("#%d", *id)
}
