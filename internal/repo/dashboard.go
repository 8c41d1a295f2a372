package repo

import (
	"context"

	"prosync-cli/internal/api"
)

type DashboardAPI interface {
	DashboardStats(ctx context.Context) (api.DashboardStats, error)
	Notifications(ctx context.Context) (api.Page[api.Notification], error)
	MarkNotificationRead(ctx context.Context, id int) (api.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
}

type Dashboard struct {
	api DashboardAPI
}

func NewDashboard(a DashboardAPI) *Dashboard { return &Dashboard{api: a} }

func (r *Dashboard) Stats(ctx context.Context) (api.DashboardStats, error) {
	return r.api.DashboardStats(ctx)
}

// Notifications unwraps the first page only; there is no pagination traversal.
func (r *Dashboard) Notifications(ctx context.Context) ([]api.Notification, error) {
	page, err := r.api.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (r *Dashboard) MarkRead(ctx context.Context, id int) error {
	_, err := r.api.MarkNotificationRead(ctx, id)
	return err
}

func (r *Dashboard) MarkAllRead(ctx context.Context) error {
	return r.api.MarkAllNotificationsRead(ctx)
}
