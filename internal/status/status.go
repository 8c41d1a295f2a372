// Package status holds the task status enumeration and the membership role
// helpers shared by the repositories and the UI.
//
// The id↔label table mirrors the one the backend applies; the backend does
// not expose it, so the pairing is duplicated here.
package status

import (
	"strings"

	"prosync-cli/internal/api"
)

const (
	Pending    = 1
	InProgress = 2
	Done       = 3
)

// Label maps a status id to its display label. Total over all ints: unknown
// ids fall back to the Pending label, matching what the backend renders.
func Label(id int) string {
	switch id {
	case Pending:
		return "Pendiente"
	case InProgress:
		return "En Progreso"
	case Done:
		return "Hecho"
	default:
		return "Pendiente"
	}
}

// All returns the closed enumeration in board-column order.
func All() []api.Estado {
	return []api.Estado{
		{ID: Pending, Estado: Label(Pending)},
		{ID: InProgress, Estado: Label(InProgress)},
		{ID: Done, Estado: Label(Done)},
	}
}

// OfTask resolves a task's status id regardless of which shape the endpoint
// used (nested estado object vs flattened estadoId). Unknown => Pending.
func OfTask(t api.Task) int {
	if t.Estado != nil && t.Estado.ID != 0 {
		return t.Estado.ID
	}
	if t.EstadoID != nil && *t.EstadoID != 0 {
		return *t.EstadoID
	}
	return Pending
}

// RoleLeader is the elevated membership role. The id is authoritative; the
// label comparison is a fallback for backends that omit the id.
const (
	RoleMember = 1
	RoleLeader = 2
)

func IsLeader(r api.Role) bool {
	if r.ID == RoleLeader {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Rol), "LIDER") ||
		strings.EqualFold(strings.TrimSpace(r.Rol), "Líder")
}
