package api

import (
	"context"

	"github.com/eventosia/client/internal/models"
)

// LocationPayload creates or updates a location record.
type LocationPayload struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description string  `json:"description,omitempty"`
	RentalPrice float64 `json:"rental_price"`
}

// CreateLocation creates the satellite location record for an event.
func (c *Client) CreateLocation(ctx context.Context, p LocationPayload) (*models.Location, error) {
	var out models.Location
	if err := c.post(ctx, "/locations", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLocation updates an existing location record.
func (c *Client) UpdateLocation(ctx context.Context, id models.ID, p LocationPayload) (*models.Location, error) {
	var out models.Location
	if err := c.put(ctx, "/locations/"+id.String(), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
