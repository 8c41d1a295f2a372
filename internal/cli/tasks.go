package cli

import (
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"prosync-cli/internal/repo"
	"prosync-cli/internal/status"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksCommentsCmd(app))
	cmd.AddCommand(newTasksCommentCmd(app))
	cmd.AddCommand(newTasksFilesCmd(app))
	cmd.AddCommand(newTasksUploadCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var boardID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (mine by default, or a board's with --board)",
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

			if boardID > 0 {
				ts, err := repo.NewBoard(env.Client).Tasks(ctx, boardID)
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": ts})
			}
			ts, err := repo.NewTask(env.Client).MyTasks(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ts})
		},
	}

	cmd.Flags().IntVar(&boardID, "board", 0, "Board id (omit to list tasks assigned to you)")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
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

			t, err := repo.NewBoard(env.Client).Task(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var (
		boardID     int
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task on a board (starts Pendiente, unassigned)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return writeErr(cmd, errors.New("El título es obligatorio"))
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

			var desc *string
			if d := strings.TrimSpace(description); d != "" {
				desc = &d
			}
			t, err := repo.NewTask(env.Client).Create(ctx, boardID, strings.TrimSpace(title), desc)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().IntVar(&boardID, "board", 0, "Board id")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var (
		title       string
		description string
		statusID    int
		due         string
		assignee    int
	)

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
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

			boards := repo.NewBoard(env.Client)

			// The update endpoint replaces the whole record, so start from
			// what the backend has and overlay only the flags that were set.
			cur, err := boards.Task(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}

			newTitle := cur.Title
			if cmd.Flags().Changed("title") {
				newTitle = strings.TrimSpace(title)
				if newTitle == "" {
					return writeErr(cmd, errors.New("El título es obligatorio"))
				}
			}
			newDesc := cur.Description
			if cmd.Flags().Changed("description") {
				if d := strings.TrimSpace(description); d != "" {
					newDesc = &d
				} else {
					newDesc = nil
				}
			}
			newStatus := status.OfTask(cur)
			if cmd.Flags().Changed("status") {
				newStatus = statusID
			}
			newDue := cur.DueDate
			if cmd.Flags().Changed("due") {
				if d := strings.TrimSpace(due); d != "" {
					newDue = &d
				} else {
					newDue = nil
				}
			}
			newAssignee := cur.ResponsableID
			if cmd.Flags().Changed("assignee") {
				if assignee > 0 {
					newAssignee = &assignee
				} else {
					newAssignee = nil
				}
			}

			t, err := boards.UpdateTask(ctx, id, newTitle, newDesc, newStatus, newDue, newAssignee)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description (empty clears)")
	cmd.Flags().IntVar(&statusID, "status", 0, "Status id (1=Pendiente, 2=En Progreso, 3=Hecho)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (empty clears)")
	cmd.Flags().IntVar(&assignee, "assignee", 0, "Assignee user id (0 clears)")
	return cmd
}

func newTasksCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments <task-id>",
		Short: "List a task's comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
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

			cs, err := repo.NewTask(env.Client).Comments(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cs})
		},
	}
	return cmd
}

func newTasksCommentCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "comment <task-id>",
		Short: "Add a comment to a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(message) == "" {
				return writeErr(cmd, errors.New("comment message must not be empty"))
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

			// The create endpoint wants the author id in the body.
			me, err := repo.NewAuth(env.Client).Profile(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, err := repo.NewTask(env.Client).AddComment(ctx, id, me.ID, message)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Comment text")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func newTasksFilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files <task-id>",
		Short: "List a task's attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
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

			fs, err := repo.NewTask(env.Client).Files(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": fs})
		},
	}
	return cmd
}

func newTasksUploadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <task-id> <file>",
		Short: "Attach a local file to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "task")
			if err != nil {
				return writeErr(cmd, err)
			}

			f, err := os.Open(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			defer f.Close()

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

			name := filepath.Base(args[1])
			mimeType := mime.TypeByExtension(filepath.Ext(name))
			uploaded, err := repo.NewTask(env.Client).UploadFile(ctx, id, name, mimeType, f)
			if err != nil {
				return writeErr(cmd, err)
			}
			if uploaded == nil {
				return writeErr(cmd, errors.New("Error al subir archivo: Respuesta vacía"))
			}
			return writeOut(cmd, app, map[string]any{"data": uploaded})
		},
	}
	return cmd
}
