package tui

import (
	"fmt"

	"prosync-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

type homeState struct {
	loading bool
	errMsg  string
	stats   *api.DashboardStats
	unread  int
}

type homeLoadedMsg struct {
	user   api.User
	stats  api.DashboardStats
	notifs []api.Notification
	err    error
}

type loggedOutMsg struct{ err error }

// loadHomeCmd fetches profile, stats and notifications concurrently and
// joins all three; a single failure fails the whole refresh.
func (m appModel) loadHomeCmd() tea.Cmd {
	return func() tea.Msg {
		var (
			user   api.User
			stats  api.DashboardStats
			notifs []api.Notification
		)
		g, ctx := errgroup.WithContext(m.ctx)
		g.Go(func() error {
			var err error
			user, err = m.r.auth.Profile(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			stats, err = m.r.dash.Stats(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			notifs, err = m.r.dash.Notifications(ctx)
			return err
		})
		err := g.Wait()
		return homeLoadedMsg{user: user, stats: stats, notifs: notifs, err: err}
	}
}

func (m appModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if m.deps.ClearToken == nil {
			return loggedOutMsg{}
		}
		return loggedOutMsg{err: m.deps.ClearToken(m.ctx)}
	}
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := &m.home

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			// Only flag loading when there is nothing to show yet.
			if s.stats == nil {
				s.loading = true
			}
			s.errMsg = ""
			return m, m.loadHomeCmd()
		case "p":
			m.view = viewProjects
			m.projects = projectsState{loading: true}
			return m, m.loadProjectsCmd()
		case "t":
			m.view = viewMyTasks
			m.myTasks = myTasksState{loading: true}
			return m, m.loadMyTasksCmd()
		case "n":
			m.view = viewNotifications
			m.notifications = notificationsState{loading: true}
			return m, m.loadNotificationsCmd()
		case "ctrl+l":
			if m.deps.Holder != nil {
				m.deps.Holder.Clear()
			}
			m.view = viewLogin
			m.login = newLoginState()
			return m, tea.Batch(m.logoutCmd(), m.login.focusCmd())
		}

	case homeLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("Error al cargar datos %s", msg.err)
			return m, nil
		}
		m.me = msg.user
		stats := msg.stats
		s.stats = &stats
		s.unread = 0
		for _, n := range msg.notifs {
			if !n.Leida {
				s.unread++
			}
		}
		return m, nil

	case loggedOutMsg:
		return m, nil
	}

	return m, nil
}

func (m appModel) viewHome() string {
	s := m.home

	header := titleBar(fmt.Sprintf("ProSync — %s", emptyAsDash(m.me.Username)))

	var body string
	switch {
	case s.loading, s.stats == nil && s.errMsg == "":
		body = styleMuted().Render("Cargando…")
	case s.errMsg != "":
		body = errorLine(s.errMsg)
	default:
		st := s.stats
		body = fmt.Sprintf(
			"Proyectos activos: %d (%+d)   Tareas completadas: %d (%+d)\n"+
				"Miembros de equipo: %d (%+d)   Tiempo promedio: %.1f\n"+
				"Notificaciones sin leer: %d",
			st.ProyectosActivos, st.CambioProyectos,
			st.TareasCompletadas, st.CambioTareas,
			st.MiembrosEquipo, st.CambioMiembros,
			st.TiempoPromedio, s.unread,
		)
	}

	return joinScreen(
		header,
		body,
		footerBar("p: proyectos  t: mis tareas  n: notificaciones  r: recargar  ctrl+l: salir de sesión  q: salir"),
	)
}
