package tui

import (
	"testing"

	"prosync-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMarkReadFlipsFlagBeforeBackendResolves(t *testing.T) {
	backendCalled := false
	f := &fakeAPI{
		MarkReadFn: func(id int) (api.Notification, error) {
			backendCalled = true
			return api.Notification{}, &api.Error{Status: 500}
		},
	}
	m := newTestApp(f)
	m.view = viewNotifications
	m.notifications.items = []api.Notification{
		{ID: 1, Mensaje: "uno", Leida: false},
		{ID: 2, Mensaje: "dos", Leida: false},
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = asApp(next)

	if backendCalled {
		t.Fatalf("backend must not have been called yet")
	}
	if !m.notifications.items[0].Leida {
		t.Fatalf("expected the local flag flipped before the backend call resolves")
	}
	if m.notifications.items[1].Leida {
		t.Fatalf("only the selected notification should flip")
	}

	// Resolve the backend call as a failure: no rollback.
	next, _ = m.Update(cmd())
	m = asApp(next)
	if !backendCalled {
		t.Fatalf("expected the backend call to run")
	}
	if !m.notifications.items[0].Leida {
		t.Fatalf("optimistic flag must stay flipped after a backend failure")
	}
}

func TestMarkAllReadIsOptimisticWithoutRollback(t *testing.T) {
	f := &fakeAPI{
		MarkAllReadFn: func() error { return &api.Error{Status: 503} },
	}
	m := newTestApp(f)
	m.view = viewNotifications
	m.notifications.items = []api.Notification{
		{ID: 1, Leida: false},
		{ID: 2, Leida: true},
		{ID: 3, Leida: false},
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = asApp(next)
	for i, n := range m.notifications.items {
		if !n.Leida {
			t.Fatalf("item %d not flipped before the backend resolved", i)
		}
	}

	next, _ = m.Update(cmd())
	m = asApp(next)
	for i, n := range m.notifications.items {
		if !n.Leida {
			t.Fatalf("item %d rolled back after backend failure", i)
		}
	}
}

func TestNotificationsLoadErrorMessage(t *testing.T) {
	m := newTestApp(&fakeAPI{})
	m.view = viewNotifications
	m.notifications.loading = true

	next, _ := m.Update(m.loadNotificationsCmd()())
	m = asApp(next)

	if m.notifications.loading {
		t.Fatalf("expected loading cleared")
	}
	if m.notifications.errMsg == "" {
		t.Fatalf("expected an error message from the unprogrammed backend")
	}
}
