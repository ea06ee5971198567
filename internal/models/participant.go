package models

import "time"

// Participant is a person registered to an event.
type Participant struct {
	ID        ID        `json:"id"`
	EventID   ID        `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// Resource is equipment or material assigned to an event.
type Resource struct {
	ID                ID      `json:"id"`
	EventID           ID      `json:"event_id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	QuantityAvailable int     `json:"quantity_available"`
	Price             float64 `json:"price"`
}

// TotalCost is the client-computed cost of the assigned quantity. The server
// recomputes this on billing; the local value is display-only.
func (r Resource) TotalCost() float64 {
	return float64(r.QuantityAvailable) * r.Price
}

// Food is a catering item assigned to an event.
type Food struct {
	ID                ID      `json:"id"`
	EventID           ID      `json:"event_id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	QuantityAvailable int     `json:"quantity_available"`
	Price             float64 `json:"price"`
}

// TotalCost is the client-computed cost of the assigned quantity.
func (f Food) TotalCost() float64 {
	return float64(f.QuantityAvailable) * f.Price
}
