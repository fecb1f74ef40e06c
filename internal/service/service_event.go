package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/models"
)

// eventService is the concrete implementation of EventService. Ownership of
// an event is derived from the parent lot: only the lot's producer may read
// or mutate its history.
type eventService struct {
	eventRepository store.EventRepository
	lotRepository   store.LotRepository
	logger          *logger.Logger
}

// NewEventService constructs an EventService backed by the given
// repositories.
func NewEventService(eventRepository store.EventRepository, lotRepository store.LotRepository, logger *logger.Logger) EventService {
	return &eventService{
		eventRepository: eventRepository,
		lotRepository:   lotRepository,
		logger:          logger,
	}
}

// CreateEvent appends a traceability event to an owned lot.
func (s *eventService) CreateEvent(ctx context.Context, producerID, lotID uuid.UUID, request models.CreateEventRequest) (models.Event, error) {
	log := logger.FromContext(ctx)

	if request.EventType == "" {
		log.Error().Msg("invalid event data provided")
		return models.Event{}, ErrInvalidDataProvided
	}

	if err := s.checkLotOwnership(ctx, producerID, lotID); err != nil {
		return models.Event{}, err
	}

	created, err := s.eventRepository.CreateEvent(ctx, models.Event{
		LotID:         lotID,
		EventType:     request.EventType,
		Description:   request.Description,
		EventLocation: request.EventLocation,
		Coordinates:   request.Coordinates,
		Metadata:      request.Metadata,
	})
	if err != nil {
		log.Err(err).Str("lot_id", lotID.String()).Msg("event creation ended with error")
		return models.Event{}, fmt.Errorf("event creation ended with error: %w", err)
	}

	return created, nil
}

// GetEvent returns a single event, provided the caller owns its lot.
func (s *eventService) GetEvent(ctx context.Context, producerID, eventID uuid.UUID) (models.Event, error) {
	return s.ownedEvent(ctx, producerID, eventID)
}

// ListLotEvents returns the full chronological history of an owned lot.
func (s *eventService) ListLotEvents(ctx context.Context, producerID, lotID uuid.UUID) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	if err := s.checkLotOwnership(ctx, producerID, lotID); err != nil {
		return nil, err
	}

	events, err := s.eventRepository.ListEventsByLot(ctx, lotID)
	if err != nil {
		log.Err(err).Str("lot_id", lotID.String()).Msg("event listing ended with error")
		return nil, fmt.Errorf("event listing ended with error: %w", err)
	}

	return events, nil
}

// UpdateEvent applies a partial update to an event on an owned lot.
func (s *eventService) UpdateEvent(ctx context.Context, producerID, eventID uuid.UUID, update models.EventUpdate) (models.Event, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ownedEvent(ctx, producerID, eventID); err != nil {
		return models.Event{}, err
	}

	updated, err := s.eventRepository.UpdateEvent(ctx, eventID, update)
	if err != nil {
		log.Err(err).Str("event_id", eventID.String()).Msg("event update ended with error")
		return models.Event{}, fmt.Errorf("event update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteEvent removes an event from an owned lot's history.
func (s *eventService) DeleteEvent(ctx context.Context, producerID, eventID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedEvent(ctx, producerID, eventID); err != nil {
		return err
	}

	if err := s.eventRepository.DeleteEvent(ctx, eventID); err != nil {
		log.Err(err).Str("event_id", eventID.String()).Msg("event deletion ended with error")
		return fmt.Errorf("event deletion ended with error: %w", err)
	}

	return nil
}

func (s *eventService) checkLotOwnership(ctx context.Context, producerID, lotID uuid.UUID) error {
	lot, err := s.lotRepository.FindLotByID(ctx, lotID)
	if err != nil {
		return err
	}

	if lot.ProducerID != producerID {
		return ErrAccessDenied
	}

	return nil
}

func (s *eventService) ownedEvent(ctx context.Context, producerID, eventID uuid.UUID) (models.Event, error) {
	event, err := s.eventRepository.FindEventByID(ctx, eventID)
	if err != nil {
		return models.Event{}, err
	}

	if err := s.checkLotOwnership(ctx, producerID, event.LotID); err != nil {
		return models.Event{}, err
	}

	return event, nil
}
