package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"prosync-cli/internal/api"
	"prosync-cli/internal/format"
	"prosync-cli/internal/session"
	"prosync-cli/internal/store"
	"prosync-cli/internal/tui"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type App struct {
	Server     string
	Profile    string
	PrettyJSON bool
	Timeout    time.Duration
}

func NewRootCmd() *cobra.Command {
	// Local .env is a convenience for dev setups; absence is fine.
	_ = godotenv.Load()

	app := &App{}

	cmd := &cobra.Command{
		Use:          "prosync",
		Short:        "ProSync client CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  prosync

  # Scriptable commands
  prosync login --username ana
  prosync projects list
  prosync tasks list
  prosync notifications list
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("PROSYNC_SERVER", ""), "Backend base URL (overrides the profile's stored server)")
	cmd.PersistentFlags().StringVar(&app.Profile, "profile", envOr("PROSYNC_PROFILE", ""), "Profile name (default: config currentProfile, else 'default')")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 30*time.Second, "Per-request timeout")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newBoardsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newTeamCmd(app))
	cmd.AddCommand(newNotificationsCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	env, err := loadEnv(ctx, app)
	if err != nil {
		return err
	}
	defer env.Close()
	googleID, googleSecret := env.GoogleOAuth()
	return tui.Run(ctx, tui.Deps{
		Client:       env.Client,
		Holder:       env.Holder,
		SaveToken:    env.SaveToken,
		ClearToken:   env.ClearToken,
		GoogleID:     googleID,
		GoogleSecret: googleSecret,
	})
}

// env bundles everything a command needs to talk to one backend profile.
type env struct {
	Cfg      *store.Config
	Sessions *store.Sessions
	Holder   *session.Holder
	Client   *api.Client
	Profile  string
	Server   string
}

func loadEnv(ctx context.Context, app *App) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	profile := app.Profile
	if profile == "" {
		profile = cfg.CurrentProfile
	}
	if profile == "" {
		profile = store.DefaultProfile
	}

	server := app.Server
	if server == "" {
		if p, ok := cfg.Profile(profile); ok {
			server = p.ServerURL
		}
	}
	if server == "" {
		return nil, errors.New("no server configured; pass --server or set PROSYNC_SERVER")
	}

	sessions, err := store.OpenSessions(ctx)
	if err != nil {
		return nil, err
	}

	holder := session.NewHolder()
	if tok, ok, err := sessions.Token(ctx, profile); err == nil && ok {
		// Expired tokens would only bounce off the backend as 401s.
		if !session.Expired(tok, time.Now()) {
			holder.Set(tok)
		}
	}

	e := &env{
		Cfg:      cfg,
		Sessions: sessions,
		Holder:   holder,
		Profile:  profile,
		Server:   server,
	}
	e.Client = api.New(server, holder, api.WithLogger(debugLogger()))
	return e, nil
}

func (e *env) Close() {
	if e.Sessions != nil {
		_ = e.Sessions.Close()
	}
}

// SaveToken persists a fresh session for this profile and records the
// server + username so later invocations need no flags.
func (e *env) SaveToken(ctx context.Context, token, username string) error {
	e.Holder.Set(token)
	if err := e.Sessions.Save(ctx, e.Profile, token); err != nil {
		return err
	}
	p, _ := e.Cfg.Profile(e.Profile)
	p.ServerURL = e.Server
	if username != "" {
		p.Username = username
	}
	e.Cfg.SetProfile(e.Profile, p)
	if e.Cfg.CurrentProfile == "" {
		e.Cfg.CurrentProfile = e.Profile
	}
	return store.SaveConfig(e.Cfg)
}

func (e *env) ClearToken(ctx context.Context) error {
	e.Holder.Clear()
	return e.Sessions.Delete(ctx, e.Profile)
}

// GoogleOAuth returns the configured (clientID, clientSecret) pair, env
// vars taking precedence over config.json.
func (e *env) GoogleOAuth() (string, string) {
	id := envOr("PROSYNC_GOOGLE_CLIENT_ID", e.Cfg.GoogleClientID)
	secret := envOr("PROSYNC_GOOGLE_CLIENT_SECRET", e.Cfg.GoogleClientSecret)
	return id, secret
}

func (e *env) requireAuth() error {
	if !e.Holder.Active() {
		return errors.New("not logged in; run `prosync login` (or `prosync login --google`)")
	}
	return nil
}

// reqCtx derives the per-request context commands run their calls under.
func reqCtx(cmd *cobra.Command, app *App) (context.Context, context.CancelFunc) {
	if app.Timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), app.Timeout)
}

// debugLogger writes transport debug lines to $PROSYNC_DEBUG (a file path).
// Unset means no logging at all.
func debugLogger() zerolog.Logger {
	path := os.Getenv("PROSYNC_DEBUG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
