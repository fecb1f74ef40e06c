package models

import (
	"encoding/json"
	"time"
)

// RegisterProducerRequest is the body of POST /api/auth/register.
type RegisterProducerRequest struct {
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	FarmName           *string `json:"farm_name,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	LanguagePreference string  `json:"language_preference,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the success body of login and register: the bearer
// credential, its scheme, and its validity window in seconds.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ErrorResponse is the body of every rejected or failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateLotRequest is the body of POST /api/lots.
type CreateLotRequest struct {
	ProductName           string    `json:"product_name"`
	CropType              CropType  `json:"crop_type"`
	EstimatedQuantity     float64   `json:"estimated_quantity"`
	UnitOfMeasure         string    `json:"unit_of_measure"`
	EstimatedHarvestDate  time.Time `json:"estimated_harvest_date"`
	AdditionalDescription *string   `json:"additional_description,omitempty"`
	LocationCoordinates   *Point    `json:"location_coordinates,omitempty"`
}

// CreateEventRequest is the body of POST /api/lots/{lotID}/events.
type CreateEventRequest struct {
	EventType     EventType       `json:"event_type"`
	Description   *string         `json:"description,omitempty"`
	EventLocation *string         `json:"event_location,omitempty"`
	Coordinates   *Point          `json:"coordinates,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
}

// CreateNotificationRequest is the body of POST /api/notifications.
type CreateNotificationRequest struct {
	ProducerID       string          `json:"producer_id"`
	Title            string          `json:"title"`
	Message          string          `json:"message"`
	NotificationType string          `json:"notification_type"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
}

// ListMeta carries pagination info alongside list payloads.
type ListMeta struct {
	Page    int64 `json:"page"`
	PerPage int64 `json:"per_page"`
	Total   int64 `json:"total"`
}

// ProducerList is the body of GET /api/producers.
type ProducerList struct {
	Producers []Producer `json:"producers"`
	ListMeta
}

// LotList is the body of GET /api/lots.
type LotList struct {
	Lots []Lot `json:"lots"`
	ListMeta
}

// NotificationList is the body of GET /api/notifications.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	ListMeta
}
