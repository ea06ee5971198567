package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eventosia/client/internal/models"
)

// Group is a uniform call group over one REST resource. The per-entity
// contexts in the app differ only in entity type and path, so they share this
// single implementation.
type Group[T any] struct {
	c    *Client
	path string
}

func newGroup[T any](c *Client, path string) *Group[T] {
	return &Group[T]{c: c, path: path}
}

// List returns all records, optionally filtered (e.g. by event_id).
func (g *Group[T]) List(ctx context.Context, q url.Values) ([]T, error) {
	var out []T
	if err := g.c.get(ctx, withQuery(g.path, q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one record by id.
func (g *Group[T]) Get(ctx context.Context, id models.ID) (T, error) {
	var out T
	if err := g.c.get(ctx, g.path+"/"+id.String(), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Create posts a new record and returns the persisted form.
func (g *Group[T]) Create(ctx context.Context, payload any) (T, error) {
	var out T
	if err := g.c.post(ctx, g.path, payload, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Update replaces a record and returns the persisted form.
func (g *Group[T]) Update(ctx context.Context, id models.ID, payload any) (T, error) {
	var out T
	if err := g.c.put(ctx, g.path+"/"+id.String(), payload, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Delete removes a record.
func (g *Group[T]) Delete(ctx context.Context, id models.ID) error {
	return g.c.do(ctx, http.MethodDelete, g.path+"/"+id.String(), nil, nil)
}

// Participants is the call group for /participants.
func (c *Client) Participants() *Group[models.Participant] {
	return newGroup[models.Participant](c, "/participants")
}

// Resources is the call group for /resources.
func (c *Client) Resources() *Group[models.Resource] {
	return newGroup[models.Resource](c, "/resources")
}

// Food is the call group for /food.
func (c *Client) Food() *Group[models.Food] {
	return newGroup[models.Food](c, "/food")
}

// Categories is the call group for /categories.
func (c *Client) Categories() *Group[models.Category] {
	return newGroup[models.Category](c, "/categories")
}

// Users is the call group for /users.
func (c *Client) Users() *Group[models.User] {
	return newGroup[models.User](c, "/users")
}

// ByEvent builds the query filter for records belonging to one event.
func ByEvent(eventID models.ID) url.Values {
	return url.Values{"event_id": []string{eventID.String()}}
}
