package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/models"
)

// producerService is the concrete implementation of ProducerService.
type producerService struct {
	producerRepository store.ProducerRepository
	logger             *logger.Logger
}

// NewProducerService constructs a ProducerService backed by the given
// repository.
func NewProducerService(producerRepository store.ProducerRepository, logger *logger.Logger) ProducerService {
	return &producerService{
		producerRepository: producerRepository,
		logger:             logger,
	}
}

// ListProducers returns a page of producers matching the filter.
func (s *producerService) ListProducers(ctx context.Context, filter models.ProducerFilter) ([]models.Producer, error) {
	log := logger.FromContext(ctx)

	producers, err := s.producerRepository.ListProducers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("producer listing ended with error")
		return nil, fmt.Errorf("producer listing ended with error: %w", err)
	}

	return producers, nil
}

// GetProducer returns the producer with the given identifier.
func (s *producerService) GetProducer(ctx context.Context, id uuid.UUID) (models.Producer, error) {
	log := logger.FromContext(ctx)

	producer, err := s.producerRepository.FindProducerByID(ctx, id)
	if err != nil {
		log.Err(err).Str("producer_id", id.String()).Msg("producer lookup ended with error")
		return models.Producer{}, err
	}

	return producer, nil
}

// UpdateProducer applies a partial profile update (including activation
// state and lifecycle status changes).
func (s *producerService) UpdateProducer(ctx context.Context, id uuid.UUID, update models.ProducerUpdate) (models.Producer, error) {
	log := logger.FromContext(ctx)

	updated, err := s.producerRepository.UpdateProducer(ctx, id, update)
	if err != nil {
		log.Err(err).Str("producer_id", id.String()).Msg("producer update ended with error")
		return models.Producer{}, err
	}

	return updated, nil
}

// DeleteProducer removes a producer account. This is an administrative
// operation; the auth core itself never hard-deletes principals.
func (s *producerService) DeleteProducer(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.producerRepository.DeleteProducer(ctx, id); err != nil {
		log.Err(err).Str("producer_id", id.String()).Msg("producer deletion ended with error")
		return err
	}

	return nil
}
