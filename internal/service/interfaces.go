package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/models"
)

// AuthService is the authentication core: credential verification, token
// issuance and validation, and principal resolution for protected requests.
type AuthService interface {
	// RegisterProducer creates a new producer account with a hashed
	// password. Duplicate emails surface as store.ErrEmailAlreadyExists,
	// raised by the database uniqueness constraint.
	RegisterProducer(ctx context.Context, request models.RegisterProducerRequest) (models.Producer, error)

	// Login verifies the email/password pair and returns the matching
	// producer. Every failure mode attributable to the credentials is
	// ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.Producer, error)

	// CreateToken issues a signed bearer token for the producer.
	CreateToken(ctx context.Context, producer models.Producer) (models.Token, error)

	// ParseToken validates a raw bearer token string and returns the
	// decoded token. Validation is pure; no store lookup is performed.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveProducer re-fetches the live producer for the given token
	// subject and verifies the account is active.
	ResolveProducer(ctx context.Context, id uuid.UUID) (models.Producer, error)
}

// ProducerService exposes producer profile CRUD for administrative
// endpoints.
type ProducerService interface {
	ListProducers(ctx context.Context, filter models.ProducerFilter) ([]models.Producer, error)
	GetProducer(ctx context.Context, id uuid.UUID) (models.Producer, error)
	UpdateProducer(ctx context.Context, id uuid.UUID, update models.ProducerUpdate) (models.Producer, error)
	DeleteProducer(ctx context.Context, id uuid.UUID) error
}

// LotService manages harvest batches owned by a producer. All operations
// on an existing lot enforce that the caller owns it.
type LotService interface {
	CreateLot(ctx context.Context, producerID uuid.UUID, request models.CreateLotRequest) (models.Lot, error)
	GetLot(ctx context.Context, producerID, lotID uuid.UUID) (models.Lot, error)
	ListLots(ctx context.Context, filter models.LotFilter) ([]models.Lot, error)
	UpdateLot(ctx context.Context, producerID, lotID uuid.UUID, update models.LotUpdate) (models.Lot, error)
	DeleteLot(ctx context.Context, producerID, lotID uuid.UUID) error
}

// EventService manages traceability events. Ownership is checked through
// the parent lot.
type EventService interface {
	CreateEvent(ctx context.Context, producerID, lotID uuid.UUID, request models.CreateEventRequest) (models.Event, error)
	GetEvent(ctx context.Context, producerID, eventID uuid.UUID) (models.Event, error)
	ListLotEvents(ctx context.Context, producerID, lotID uuid.UUID) ([]models.Event, error)
	UpdateEvent(ctx context.Context, producerID, eventID uuid.UUID, update models.EventUpdate) (models.Event, error)
	DeleteEvent(ctx context.Context, producerID, eventID uuid.UUID) error
}

// NotificationService manages per-producer notifications.
type NotificationService interface {
	CreateNotification(ctx context.Context, producerID uuid.UUID, request models.CreateNotificationRequest) (models.Notification, error)
	GetNotification(ctx context.Context, producerID, notificationID uuid.UUID) (models.Notification, error)
	ListNotifications(ctx context.Context, producerID uuid.UUID, page, perPage int64) ([]models.Notification, error)
	UpdateNotification(ctx context.Context, producerID, notificationID uuid.UUID, update models.NotificationUpdate) (models.Notification, error)
	DeleteNotification(ctx context.Context, producerID, notificationID uuid.UUID) error
	MarkAsRead(ctx context.Context, producerID, notificationID uuid.UUID) (models.Notification, error)
	MarkAllAsRead(ctx context.Context, producerID uuid.UUID) error
}
