package cli

import (
	"prosync-cli/internal/repo"

	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Notification commands",
	}
	cmd.AddCommand(newNotificationsListCmd(app))
	cmd.AddCommand(newNotificationsReadCmd(app))
	cmd.AddCommand(newNotificationsReadAllCmd(app))
	return cmd
}

func newNotificationsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notifications (newest first)",
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

			ns, err := repo.NewDashboard(env.Client).Notifications(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ns})
		},
	}
	return cmd
}

func newNotificationsReadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "notification")
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

			if err := repo.NewDashboard(env.Client).MarkRead(ctx, id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"read": id}})
		},
	}
	return cmd
}

func newNotificationsReadAllCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read-all",
		Short: "Mark all notifications as read",
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

			if err := repo.NewDashboard(env.Client).MarkAllRead(ctx); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"readAll": true}})
		},
	}
	return cmd
}
