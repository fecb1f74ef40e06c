package service

import (
	"github.com/kairos-agro/kairos-server/internal/config"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
)

// Services aggregates all business-logic services consumed by the
// transport layer.
type Services struct {
	AuthService         AuthService
	ProducerService     ProducerService
	LotService          LotService
	EventService        EventService
	NotificationService NotificationService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.ProducerRepository, cfg.App, logger),
		ProducerService:     NewProducerService(storages.ProducerRepository, logger),
		LotService:          NewLotService(storages.LotRepository, logger),
		EventService:        NewEventService(storages.EventRepository, storages.LotRepository, logger),
		NotificationService: NewNotificationService(storages.NotificationRepository, logger),
	}
}
