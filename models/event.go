package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a traceability event attached to a lot.
type EventType string

const (
	EventTypePlanting      EventType = "planting"
	EventTypeFertilization EventType = "fertilization"
	EventTypeIrrigation    EventType = "irrigation"
	EventTypePestControl   EventType = "pest_control"
	EventTypeHarvest       EventType = "harvest"
	EventTypeOther         EventType = "other"
)

// Event is a single traceability record in a lot's history: what happened,
// where, and any free-form metadata the producer attached.
type Event struct {
	ID            uuid.UUID       `json:"id"`
	LotID         uuid.UUID       `json:"lot_id"`
	EventType     EventType       `json:"event_type"`
	Description   *string         `json:"description,omitempty"`
	EventLocation *string         `json:"event_location,omitempty"`
	Coordinates   *Point          `json:"coordinates,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// Event model.
func (e Event) TableName() string {
	return "events"
}

// EventUpdate describes a partial update of an event. Nil fields are left
// unchanged.
type EventUpdate struct {
	EventType     *EventType      `json:"event_type,omitempty"`
	Description   *string         `json:"description,omitempty"`
	EventLocation *string         `json:"event_location,omitempty"`
	Coordinates   *Point          `json:"coordinates,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
}
