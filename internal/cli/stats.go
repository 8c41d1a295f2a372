package cli

import (
	"prosync-cli/internal/repo"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your dashboard counters",
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

			s, err := repo.NewDashboard(env.Client).Stats(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": s})
		},
	}
	return cmd
}
