package store

import (
	"context"

	"github.com/kairos-agro/kairos-server/internal/config"
	"github.com/kairos-agro/kairos-server/internal/logger"
)

// Storages aggregates all repositories backed by a single database handle.
type Storages struct {
	ProducerRepository     ProducerRepository
	LotRepository          LotRepository
	EventRepository        EventRepository
	NotificationRepository NotificationRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories on top of the shared pooled handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		ProducerRepository:     NewProducerRepository(db, log),
		LotRepository:          NewLotRepository(db, log),
		EventRepository:        NewEventRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
	}, nil
}
