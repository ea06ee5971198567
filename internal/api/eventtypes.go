package api

import (
	"context"
	"time"

	"github.com/eventosia/client/internal/models"
)

// EventTypePayload creates or updates a types-of-event record.
type EventTypePayload struct {
	EventModality       models.Modality `json:"event_modality"`
	Description         string          `json:"description,omitempty"`
	VideoConferenceLink string          `json:"video_conference_link,omitempty"`
	MaxParticipants     int             `json:"max_participants"`
	PriceEvent          float64         `json:"price_event"`
	StartTime           time.Time       `json:"start_time"`
	EndTime             time.Time       `json:"end_time"`
}

// CreateEventType creates the satellite type record for an event.
func (c *Client) CreateEventType(ctx context.Context, p EventTypePayload) (*models.EventType, error) {
	var out models.EventType
	if err := c.post(ctx, "/types-of-event", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEventType updates an existing type record.
func (c *Client) UpdateEventType(ctx context.Context, id models.ID, p EventTypePayload) (*models.EventType, error) {
	var out models.EventType
	if err := c.put(ctx, "/types-of-event/"+id.String(), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
