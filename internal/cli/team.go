package cli

import (
	"errors"
	"strings"

	"prosync-cli/internal/api"
	"prosync-cli/internal/repo"

	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Project membership commands",
	}
	cmd.AddCommand(newTeamListCmd(app))
	cmd.AddCommand(newTeamAddCmd(app))
	cmd.AddCommand(newTeamRoleCmd(app))
	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's members and their roles",
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

			ms, err := repo.NewBoard(env.Client).Members(ctx, projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ms})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var (
		projectID int
		email     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Invite a user to a project by email (joins as Miembro)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.Contains(email, "@") {
				return writeErr(cmd, errors.New("Escribe un correo válido"))
			}

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

			up, err := repo.NewBoard(env.Client).AddMemberByEmail(ctx, projectID, strings.TrimSpace(email))
			if err != nil {
				switch {
				case api.IsStatus(err, 404):
					return writeErr(cmd, errors.New("Usuario no encontrado"))
				case api.IsStatus(err, 403):
					return writeErr(cmd, errors.New("No tienes permisos de Líder"))
				}
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": up})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&email, "email", "", "User's email")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newTeamRoleCmd(app *App) *cobra.Command {
	var (
		projectID int
		userID    int
		roleID    int
	)

	cmd := &cobra.Command{
		Use:   "role",
		Short: "Change a member's role",
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

			up, err := repo.NewBoard(env.Client).ChangeMemberRole(ctx, userID, projectID, roleID)
			if err != nil {
				if api.IsStatus(err, 403) {
					return writeErr(cmd, errors.New("No tienes permisos de Líder"))
				}
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": up})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	cmd.Flags().IntVar(&userID, "user", 0, "Member's user id")
	cmd.Flags().IntVar(&roleID, "role", 0, "Role id (1=Miembro, 2=Líder)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
