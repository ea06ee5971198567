package store

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
)

// AppState composes the per-entity stores. It is created once at startup and
// passed explicitly to whatever needs it, instead of the ambient provider
// nesting the app grew up with.
type AppState struct {
	Events       *Store[models.Event]
	Participants *Store[models.Participant]
	Resources    *Store[models.Resource]
	Food         *Store[models.Food]
	Categories   *Store[models.Category]
	Users        *Store[models.User]
}

// NewAppState wires every entity store to the API client.
func NewAppState(client *api.Client, logger *zap.Logger) *AppState {
	return &AppState{
		Events: New("events", eventAPI{client}, func(e models.Event) models.ID { return e.ID }, logger),
		Participants: New("participants", client.Participants(),
			func(p models.Participant) models.ID { return p.ID }, logger),
		Resources: New("resources", client.Resources(),
			func(r models.Resource) models.ID { return r.ID }, logger),
		Food: New("food", client.Food(),
			func(f models.Food) models.ID { return f.ID }, logger),
		Categories: New("categories", client.Categories(),
			func(c models.Category) models.ID { return c.ID }, logger),
		Users: New("users", client.Users(),
			func(u models.User) models.ID { return u.ID }, logger),
	}
}

// eventAPI adapts the event endpoints to the uniform resource shape. Events
// are the one irregular resource: create and update are multipart.
type eventAPI struct {
	c *api.Client
}

func (a eventAPI) List(ctx context.Context, _ url.Values) ([]models.Event, error) {
	return a.c.ListEvents(ctx)
}

func (a eventAPI) Get(ctx context.Context, id models.ID) (models.Event, error) {
	e, err := a.c.GetEvent(ctx, id)
	if err != nil {
		return models.Event{}, err
	}
	return *e, nil
}

func (a eventAPI) Create(ctx context.Context, payload any) (models.Event, error) {
	in, ok := payload.(api.CreateEventInput)
	if !ok {
		return models.Event{}, fmt.Errorf("event create expects api.CreateEventInput, got %T", payload)
	}
	e, err := a.c.CreateEvent(ctx, in)
	if err != nil {
		return models.Event{}, err
	}
	return *e, nil
}

func (a eventAPI) Update(ctx context.Context, id models.ID, payload any) (models.Event, error) {
	in, ok := payload.(api.CreateEventInput)
	if !ok {
		return models.Event{}, fmt.Errorf("event update expects api.CreateEventInput, got %T", payload)
	}
	e, err := a.c.UpdateEvent(ctx, id, in)
	if err != nil {
		return models.Event{}, err
	}
	return *e, nil
}

func (a eventAPI) Delete(ctx context.Context, id models.ID) error {
	return a.c.DeleteEvent(ctx, id)
}
