package form

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
)

// ErrMissingID means a create call nominally succeeded but the response
// carried no server-assigned id, so the dependent calls cannot proceed.
var ErrMissingID = errors.New("server response missing id")

// CreatorAPI is the slice of the API client the submission sequence uses.
type CreatorAPI interface {
	CreateEventType(ctx context.Context, p api.EventTypePayload) (*models.EventType, error)
	CreateLocation(ctx context.Context, p api.LocationPayload) (*models.Location, error)
	CreateEvent(ctx context.Context, in api.CreateEventInput) (*models.Event, error)
}

// Submitter turns a finished draft into a persisted event through three
// strictly sequential creates: type of event, location, then the event
// referencing both ids. There is no rollback: a failure after the first
// create leaves orphaned satellite records on the server. That matches the
// server's contract today; compensation would need a server-side transaction.
type Submitter struct {
	api    CreatorAPI
	logger *zap.Logger
}

// NewSubmitter creates a submitter over the given API slice.
func NewSubmitter(creator CreatorAPI, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{api: creator, logger: logger}
}

// Submit runs the submission sequence. Each step starts only after the
// previous one returned its id; a failure aborts everything that follows.
func (s *Submitter) Submit(ctx context.Context, d *Draft) (*models.Event, error) {
	if err := validateFinal(d); err != nil {
		return nil, err
	}
	maxParticipants, err := d.maxParticipants()
	if err != nil {
		return nil, err
	}
	price, err := d.priceEvent()
	if err != nil {
		return nil, err
	}
	rentalPrice, err := d.locationRentalPrice()
	if err != nil {
		return nil, err
	}

	eventType, err := s.api.CreateEventType(ctx, api.EventTypePayload{
		EventModality:       d.EventModality,
		Description:         d.Description,
		VideoConferenceLink: d.VideoConferenceLink,
		MaxParticipants:     maxParticipants,
		PriceEvent:          price,
		StartTime:           *d.StartTime,
		EndTime:             *d.EndTime,
	})
	if err != nil {
		return nil, fmt.Errorf("create event type: %w", err)
	}
	if eventType.ID.IsZero() {
		return nil, fmt.Errorf("create event type: %w", ErrMissingID)
	}

	location, err := s.api.CreateLocation(ctx, api.LocationPayload{
		Name:        d.LocationName,
		Address:     d.LocationAddress,
		Description: d.LocationDescription,
		RentalPrice: rentalPrice,
	})
	if err != nil {
		// The type record created above stays behind as an orphan.
		s.logger.Warn("location create failed after event type was created",
			zap.String("type_of_event_id", eventType.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("create location: %w", err)
	}
	if location.ID.IsZero() {
		s.logger.Warn("location create returned no id",
			zap.String("type_of_event_id", eventType.ID.String()))
		return nil, fmt.Errorf("create location: %w", ErrMissingID)
	}

	event, err := s.api.CreateEvent(ctx, api.CreateEventInput{
		Name:            d.Name,
		TypeOfEventID:   eventType.ID,
		LocationID:      location.ID,
		EventStateID:    models.EventStateCreated,
		UserIDCreatedBy: d.UserIDCreatedBy,
		Image:           d.Image,
	})
	if err != nil {
		s.logger.Warn("event create failed after satellite records were created",
			zap.String("type_of_event_id", eventType.ID.String()),
			zap.String("location_id", location.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		zap.String("event_id", event.ID.String()),
		zap.String("type_of_event_id", eventType.ID.String()),
		zap.String("location_id", location.ID.String()))
	return event, nil
}
