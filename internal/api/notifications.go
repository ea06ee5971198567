package api

import (
	"context"

	"github.com/eventosia/client/internal/models"
)

// ListNotifications returns the authenticated user's notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.get(ctx, "/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id models.ID) error {
	return c.put(ctx, "/notifications/"+id.String()+"/read", nil, nil)
}
