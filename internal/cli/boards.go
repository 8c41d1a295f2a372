package cli

import (
	"strings"

	"prosync-cli/internal/repo"

	"github.com/spf13/cobra"
)

func newBoardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Board commands",
	}
	cmd.AddCommand(newBoardsListCmd(app))
	cmd.AddCommand(newBoardsCreateCmd(app))
	return cmd
}

func newBoardsListCmd(app *App) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's boards",
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

			bs, err := repo.NewBoard(env.Client).Boards(ctx, projectID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": bs})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newBoardsCreateCmd(app *App) *cobra.Command {
	var (
		projectID int
		name      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board in a project",
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

			b, err := repo.NewBoard(env.Client).CreateBoard(ctx, projectID, strings.TrimSpace(name))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": b})
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	cmd.Flags().StringVar(&name, "name", "", "Board name")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
