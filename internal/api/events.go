package api

import (
	"context"
	"net/http"

	"github.com/eventosia/client/internal/models"
)

// CreateEventInput carries the multipart fields for event creation. All id
// fields must already be resolved; the orchestrator in internal/form threads
// them through from the dependent creates.
type CreateEventInput struct {
	Name            string
	TypeOfEventID   models.ID
	LocationID      models.ID
	EventStateID    string // defaults to models.EventStateCreated
	UserIDCreatedBy string
	Image           *models.ImageAsset
}

func (in CreateEventInput) fields() map[string]string {
	state := in.EventStateID
	if state == "" {
		state = models.EventStateCreated
	}
	return map[string]string{
		"name":               in.Name,
		"type_of_event_id":   in.TypeOfEventID.String(),
		"location_id":        in.LocationID.String(),
		"event_state_id":     state,
		"user_id_created_by": in.UserIDCreatedBy,
	}
}

// CreateEvent creates an event via multipart POST /events.
func (c *Client) CreateEvent(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	var out models.Event
	if err := c.doMultipart(ctx, http.MethodPost, "/events", in.fields(), in.Image, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEvent updates an event via multipart PUT /events/:id. Empty fields
// are omitted so the server keeps their current values.
func (c *Client) UpdateEvent(ctx context.Context, id models.ID, in CreateEventInput) (*models.Event, error) {
	fields := map[string]string{}
	for k, v := range in.fields() {
		if v != "" {
			fields[k] = v
		}
	}
	var out models.Event
	if err := c.doMultipart(ctx, http.MethodPut, "/events/"+id.String(), fields, in.Image, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeEventState moves an event to a new state.
func (c *Client) ChangeEventState(ctx context.Context, id models.ID, stateID string) (*models.Event, error) {
	fields := map[string]string{"event_state_id": stateID}
	var out models.Event
	if err := c.doMultipart(ctx, http.MethodPut, "/events/"+id.String(), fields, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns all events visible to the authenticated user.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.get(ctx, "/events", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvent returns one event by id.
func (c *Client) GetEvent(ctx context.Context, id models.ID) (*models.Event, error) {
	var out models.Event
	if err := c.get(ctx, "/events/"+id.String(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id models.ID) error {
	return c.delete(ctx, "/events/"+id.String())
}
