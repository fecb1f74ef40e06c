package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/models"
)

// ProducerRepository is the credential store consumed by the auth core and
// the producer CRUD handlers. Lookup failures surface as
// [ErrProducerNotFound]; uniqueness violations as [ErrEmailAlreadyExists].
type ProducerRepository interface {
	CreateProducer(ctx context.Context, producer models.Producer) (models.Producer, error)
	FindProducerByEmail(ctx context.Context, email string) (models.Producer, error)
	FindProducerByID(ctx context.Context, id uuid.UUID) (models.Producer, error)
	ListProducers(ctx context.Context, filter models.ProducerFilter) ([]models.Producer, error)
	UpdateProducer(ctx context.Context, id uuid.UUID, update models.ProducerUpdate) (models.Producer, error)
	DeleteProducer(ctx context.Context, id uuid.UUID) error
}

// LotRepository persists harvest batches.
type LotRepository interface {
	CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error)
	FindLotByID(ctx context.Context, id uuid.UUID) (models.Lot, error)
	ListLots(ctx context.Context, filter models.LotFilter) ([]models.Lot, error)
	UpdateLot(ctx context.Context, id uuid.UUID, update models.LotUpdate) (models.Lot, error)
	DeleteLot(ctx context.Context, id uuid.UUID) error
}

// EventRepository persists traceability events attached to lots.
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (models.Event, error)
	ListEventsByLot(ctx context.Context, lotID uuid.UUID) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, update models.EventUpdate) (models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// NotificationRepository persists producer notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)
	FindNotificationByID(ctx context.Context, id uuid.UUID) (models.Notification, error)
	ListNotificationsByProducer(ctx context.Context, producerID uuid.UUID, page, perPage int64) ([]models.Notification, error)
	UpdateNotification(ctx context.Context, id uuid.UUID, update models.NotificationUpdate) (models.Notification, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, producerID uuid.UUID) error
}
