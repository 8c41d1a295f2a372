package repo

import (
	"context"
	"testing"

	"prosync-cli/internal/api"
)

func TestNotificationsUnwrapsFirstPageOnly(t *testing.T) {
	f := &fakeAPI{
		notifications: func(context.Context) (api.Page[api.Notification], error) {
			return api.Page[api.Notification]{
				Content: []api.Notification{
					{ID: 1, Mensaje: "uno"},
					{ID: 2, Mensaje: "dos", Leida: true},
				},
				TotalPages: 5,
				Last:       false,
			}, nil
		},
	}
	got, err := NewDashboard(f).Notifications(context.Background())
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the first page's 2 items and no traversal, got %d", len(got))
	}
	if got[0].Mensaje != "uno" || !got[1].Leida {
		t.Fatalf("unexpected content: %+v", got)
	}
}

func TestMarkReadDiscardsUpdatedRecord(t *testing.T) {
	f := &fakeAPI{
		markRead: func(_ context.Context, id int) (api.Notification, error) {
			if id != 3 {
				t.Fatalf("unexpected id %d", id)
			}
			return api.Notification{ID: 3, Leida: true}, nil
		},
	}
	if err := NewDashboard(f).MarkRead(context.Background(), 3); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
}
