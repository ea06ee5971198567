// Package form holds the multi-step event creation workflow: the in-progress
// draft, per-step validation, the step/navigation state machine, and the
// submission sequence that turns a finished draft into a persisted event.
package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/eventosia/client/internal/models"
)

// Draft is the working, not-yet-persisted event being created or edited.
// Numeric inputs stay as raw strings until submit, exactly as the form
// captures them; parsing happens in validation. Location fields feed the
// dependent location create, the rest feed the type and event creates.
type Draft struct {
	Name                string `validate:"required"`
	Description         string
	EventModality       models.Modality `validate:"omitempty,oneof=virtual presencial hibrido"`
	VideoConferenceLink string
	MaxParticipants     string
	PriceEvent          string
	StartTime           *time.Time `validate:"required"`
	EndTime             *time.Time `validate:"required"`
	Image               *models.ImageAsset

	LocationName        string `validate:"required"`
	LocationAddress     string `validate:"required"`
	LocationDescription string
	LocationRentalPrice string

	UserIDCreatedBy string
}

// maxParticipants parses the raw input into a positive integer.
func (d *Draft) maxParticipants() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(d.MaxParticipants))
	if err != nil || n <= 0 {
		return 0, errInvalidMaxParticipants
	}
	return n, nil
}

// priceEvent parses the raw input into a non-negative amount.
func (d *Draft) priceEvent() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(d.PriceEvent), 64)
	if err != nil || v < 0 {
		return 0, errInvalidPrice
	}
	return v, nil
}

// locationRentalPrice parses the optional rental price; empty means zero.
func (d *Draft) locationRentalPrice() (float64, error) {
	raw := strings.TrimSpace(d.LocationRentalPrice)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, errInvalidRentalPrice
	}
	return v, nil
}
