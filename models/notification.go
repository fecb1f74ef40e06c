package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to a producer (e.g. lot status
// changes, account approvals).
type Notification struct {
	ID               uuid.UUID       `json:"id"`
	ProducerID       uuid.UUID       `json:"producer_id"`
	Title            string          `json:"title"`
	Message          string          `json:"message"`
	NotificationType string          `json:"notification_type"`
	IsRead           bool            `json:"is_read"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// Notification model.
func (n Notification) TableName() string {
	return "notifications"
}

// NotificationUpdate describes a partial update of a notification.
// Nil fields are left unchanged.
type NotificationUpdate struct {
	Title            *string         `json:"title,omitempty"`
	Message          *string         `json:"message,omitempty"`
	NotificationType *string         `json:"notification_type,omitempty"`
	IsRead           *bool           `json:"is_read,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
}
