package cli

import (
	"errors"
	"fmt"
	"strings"

	"prosync-cli/internal/api"
	"prosync-cli/internal/identity"
	"prosync-cli/internal/repo"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var (
		username string
		password string
		google   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session for this profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer env.Close()

			ctx, cancel := reqCtx(cmd, app)
			defer cancel()

			auth := repo.NewAuth(env.Client)

			if google {
				resp, name, err := googleSignIn(cmd, app, env, auth, username)
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := env.SaveToken(ctx, resp.Token, name); err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": map[string]any{
					"profile":  env.Profile,
					"username": name,
				}})
			}

			if username == "" || password == "" {
				return writeErr(cmd, errors.New("pass --username and --password (or use --google)"))
			}

			resp, err := auth.Login(ctx, username, password)
			if err != nil {
				if api.IsStatus(err, 401) {
					return writeErr(cmd, errors.New("Credenciales incorrectas. Por favor verifica tu usuario y contraseña."))
				}
				return writeErr(cmd, err)
			}
			if err := env.SaveToken(ctx, resp.Token, username); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"profile":  env.Profile,
				"username": username,
			}})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (with --google: name for first-time registration)")
	cmd.Flags().StringVar(&password, "password", envOr("PROSYNC_PASSWORD", ""), "Password (or PROSYNC_PASSWORD)")
	cmd.Flags().BoolVar(&google, "google", false, "Sign in with Google (opens a browser)")
	return cmd
}

// googleSignIn runs the loopback OAuth flow and exchanges the resulting
// id_token with the backend. A 404 (or a USER_NOT_FOUND body) means the
// account does not exist yet; the same token is then resubmitted with
// --username to register.
func googleSignIn(cmd *cobra.Command, app *App, e *env, auth *repo.Auth, username string) (api.AuthResponse, string, error) {
	clientID, clientSecret := e.GoogleOAuth()
	if clientID == "" {
		return api.AuthResponse{}, "", errors.New("google sign-in not configured; set PROSYNC_GOOGLE_CLIENT_ID (and optionally PROSYNC_GOOGLE_CLIENT_SECRET)")
	}

	flow := identity.NewFlow(clientID, clientSecret)
	url, err := flow.Begin(cmd.Context())
	if err != nil {
		return api.AuthResponse{}, "", err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Open this URL in your browser to sign in:\n\n  %s\n\n", url)

	res, err := flow.Wait(cmd.Context())
	if err != nil {
		return api.AuthResponse{}, "", err
	}
	if res.ErrorMessage != "" {
		return api.AuthResponse{}, "", errors.New(res.ErrorMessage)
	}

	ctx, cancel := reqCtx(cmd, app)
	defer cancel()

	var name *string
	if username != "" {
		name = &username
	}
	resp, err := auth.LoginWithGoogle(ctx, res.IDToken, name)
	if err != nil {
		if api.IsUserNotFound(err) {
			return api.AuthResponse{}, "", errors.New("no ProSync account for that Google identity; rerun with --username <name> to register")
		}
		return api.AuthResponse{}, "", err
	}

	shown := username
	if shown == "" {
		shown = res.DisplayName
	}
	return resp, shown, nil
}

func newLogoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session for this profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer env.Close()

			ctx, cancel := reqCtx(cmd, app)
			defer cancel()

			if err := env.ClearToken(ctx); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"profile": env.Profile, "loggedOut": true}})
		},
	}
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var (
		username string
		email    string
		password string
		confirm  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if confirm != "" && password != confirm {
				return writeErr(cmd, errors.New("Las contraseñas no coinciden"))
			}
			if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
				return writeErr(cmd, errors.New("Todos los campos son obligatorios"))
			}

			env, err := loadEnv(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer env.Close()

			ctx, cancel := reqCtx(cmd, app)
			defer cancel()

			if err := repo.NewAuth(env.Client).Register(ctx, username, email, password); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"registered": username}})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation (optional)")
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer env.Close()
			if err := env.requireAuth(); err != nil {
				return writeErr(cmd, err)
			}

			ctx, cancel := reqCtx(cmd, app)
			defer cancel()

			u, err := repo.NewAuth(env.Client).Profile(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}
	return cmd
}
