package tui

import (
	"fmt"
	"strings"

	"prosync-cli/internal/api"
	"prosync-cli/internal/status"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/charmbracelet/lipgloss"
)

// Kanban columns for the board screen: one column per status, fixed order
// Pendiente / En Progreso / Hecho.

type kanbanColumn struct {
	status api.Estado
	tasks  []api.Task
}

type boardSelection struct {
	col int
	row int
}

func buildBoardColumns(tasks []api.Task) []kanbanColumn {
	cols := make([]kanbanColumn, 0, 3)
	for _, st := range status.All() {
		col := kanbanColumn{status: st}
		for _, t := range tasks {
			if status.OfTask(t) == st.ID {
				col.tasks = append(col.tasks, t)
			}
		}
		cols = append(cols, col)
	}
	return cols
}

// clampBoardSelection keeps the selection on an existing card after the
// task set changes (e.g. a status edit moved the selected task away).
func clampBoardSelection(cols []kanbanColumn, sel boardSelection) boardSelection {
	if len(cols) == 0 {
		return boardSelection{}
	}
	if sel.col < 0 {
		sel.col = 0
	}
	if sel.col >= len(cols) {
		sel.col = len(cols) - 1
	}
	if sel.row < 0 {
		sel.row = 0
	}
	if n := len(cols[sel.col].tasks); sel.row >= n {
		if n == 0 {
			sel.row = 0
		} else {
			sel.row = n - 1
		}
	}
	return sel
}

func selectedBoardTask(cols []kanbanColumn, sel boardSelection) (api.Task, bool) {
	sel = clampBoardSelection(cols, sel)
	if sel.col >= len(cols) || len(cols[sel.col].tasks) == 0 {
		return api.Task{}, false
	}
	return cols[sel.col].tasks[sel.row], true
}

func renderBoardColumns(cols []kanbanColumn, sel boardSelection, width, height int) string {
	if len(cols) == 0 {
		return ""
	}
	sel = clampBoardSelection(cols, sel)

	gap := 2
	colWidth := (width - gap*(len(cols)-1)) / len(cols)
	if colWidth < 16 {
		colWidth = 16
	}
	inner := colWidth - 4 // border + padding

	rendered := make([]string, 0, len(cols))
	for ci, col := range cols {
		var b strings.Builder

		header := fmt.Sprintf("%s (%d)", col.status.Estado, len(col.tasks))
		headerStyle := lipgloss.NewStyle().Bold(true)
		if col.status.ID == status.Done {
			headerStyle = headerStyle.Foreground(colorDoneFg)
		}
		b.WriteString(headerStyle.Render(truncateCell(header, inner)))
		b.WriteString("\n")

		if len(col.tasks) == 0 {
			b.WriteString(styleMuted().Render("(vacío)"))
		}
		for ri, t := range col.tasks {
			line := truncateCell(t.Title, inner)
			if ci == sel.col && ri == sel.row {
				line = styleSelected().Render(line)
			}
			b.WriteString(line)
			if ri < len(col.tasks)-1 {
				b.WriteString("\n")
			}
		}

		box := lipgloss.NewStyle().
			Width(colWidth - 2).
			Height(height - 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCardBorder).
			Padding(0, 1).
			Render(b.String())
		rendered = append(rendered, box)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func truncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}
