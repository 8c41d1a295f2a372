package tui

import (
	"context"

	"prosync-cli/internal/api"
	"prosync-cli/internal/repo"
	"prosync-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Deps is everything the TUI needs from the host process. SaveToken and
// ClearToken persist the session across invocations; the TUI never touches
// the stores directly.
type Deps struct {
	Client       *api.Client
	Holder       *session.Holder
	SaveToken    func(ctx context.Context, token, username string) error
	ClearToken   func(ctx context.Context) error
	GoogleID     string
	GoogleSecret string
}

func Run(ctx context.Context, d Deps) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(ctx, d, repos{
		auth:     repo.NewAuth(d.Client),
		projects: repo.NewProject(d.Client),
		boards:   repo.NewBoard(d.Client),
		tasks:    repo.NewTask(d.Client),
		dash:     repo.NewDashboard(d.Client),
	})
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

type repos struct {
	auth     *repo.Auth
	projects *repo.Project
	boards   *repo.Board
	tasks    *repo.Task
	dash     *repo.Dashboard
}
