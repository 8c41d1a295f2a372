package cli

import (
	"strings"

	"prosync-cli/internal/repo"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the user's projects",
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

			projects := repo.NewProject(env.Client)
			if stats {
				ps, err := projects.ListWithStats(ctx)
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": ps})
			}
			ps, err := projects.List(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ps})
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Fill in live member/task counts (extra requests per project)")
	return cmd
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
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

			var desc *string
			if d := strings.TrimSpace(description); d != "" {
				desc = &d
			}
			p, err := repo.NewProject(env.Client).Create(ctx, strings.TrimSpace(name), desc)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return writeErr(cmd, err)
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

			d, err := repo.NewProject(env.Client).Detail(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": d})
		},
	}
	return cmd
}
