package models

import "time"

// Modality is how an event is attended.
type Modality string

const (
	ModalityVirtual    Modality = "virtual"
	ModalityPresencial Modality = "presencial"
	ModalityHibrido    Modality = "hibrido"
)

// Valid reports whether the modality is one of the known values.
func (m Modality) Valid() bool {
	switch m {
	case ModalityVirtual, ModalityPresencial, ModalityHibrido:
		return true
	}
	return false
}

// RequiresVideoLink reports whether events of this modality need a
// video-conference link.
func (m Modality) RequiresVideoLink() bool {
	return m == ModalityVirtual || m == ModalityHibrido
}

// EventStateCreated is the fixed initial state assigned on event creation.
const EventStateCreated = "1"

// Event is a persisted event as returned by the API.
type Event struct {
	ID              ID         `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	TypeOfEventID   ID         `json:"type_of_event_id"`
	LocationID      ID         `json:"location_id"`
	EventStateID    string     `json:"event_state_id"`
	UserIDCreatedBy string     `json:"user_id_created_by"`
	ImageURL        string     `json:"image_url,omitempty"`
	TypeOfEvent     *EventType `json:"type_of_event,omitempty"`
	Location        *Location  `json:"location,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// EventType is the satellite record holding modality, schedule and pricing
// for one event. Created before the event itself; the event references it by id.
type EventType struct {
	ID                  ID        `json:"id"`
	EventModality       Modality  `json:"event_modality"`
	Description         string    `json:"description,omitempty"`
	VideoConferenceLink string    `json:"video_conference_link,omitempty"`
	MaxParticipants     int       `json:"max_participants"`
	PriceEvent          float64   `json:"price_event"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
}

// Location is the satellite record holding venue details for one event.
type Location struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description string  `json:"description,omitempty"`
	RentalPrice float64 `json:"rental_price"`
}
