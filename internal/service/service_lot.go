package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/models"
)

// lotService is the concrete implementation of LotService.
type lotService struct {
	lotRepository store.LotRepository
	logger        *logger.Logger
}

// NewLotService constructs a LotService backed by the given repository.
func NewLotService(lotRepository store.LotRepository, logger *logger.Logger) LotService {
	return &lotService{
		lotRepository: lotRepository,
		logger:        logger,
	}
}

// CreateLot registers a new harvest batch owned by producerID. The lot code
// is generated server-side and is the public traceability handle printed on
// labels.
func (s *lotService) CreateLot(ctx context.Context, producerID uuid.UUID, request models.CreateLotRequest) (models.Lot, error) {
	log := logger.FromContext(ctx)

	if request.ProductName == "" || request.CropType == "" || request.UnitOfMeasure == "" {
		log.Error().Msg("invalid lot data provided")
		return models.Lot{}, ErrInvalidDataProvided
	}

	lot := models.Lot{
		ProducerID:            producerID,
		LotCode:               newLotCode(),
		ProductName:           request.ProductName,
		CropType:              request.CropType,
		EstimatedQuantity:     request.EstimatedQuantity,
		UnitOfMeasure:         request.UnitOfMeasure,
		EstimatedHarvestDate:  request.EstimatedHarvestDate,
		AdditionalDescription: request.AdditionalDescription,
		LocationCoordinates:   request.LocationCoordinates,
	}

	created, err := s.lotRepository.CreateLot(ctx, lot)
	if err != nil {
		log.Err(err).Msg("lot creation ended with error")
		return models.Lot{}, fmt.Errorf("lot creation ended with error: %w", err)
	}

	return created, nil
}

// GetLot returns the lot with the given ID, provided producerID owns it.
func (s *lotService) GetLot(ctx context.Context, producerID, lotID uuid.UUID) (models.Lot, error) {
	return s.ownedLot(ctx, producerID, lotID)
}

// ListLots returns a page of the producer's lots matching the filter.
func (s *lotService) ListLots(ctx context.Context, filter models.LotFilter) ([]models.Lot, error) {
	log := logger.FromContext(ctx)

	lots, err := s.lotRepository.ListLots(ctx, filter)
	if err != nil {
		log.Err(err).Msg("lot listing ended with error")
		return nil, fmt.Errorf("lot listing ended with error: %w", err)
	}

	return lots, nil
}

// UpdateLot applies a partial update to an owned lot.
func (s *lotService) UpdateLot(ctx context.Context, producerID, lotID uuid.UUID, update models.LotUpdate) (models.Lot, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ownedLot(ctx, producerID, lotID); err != nil {
		return models.Lot{}, err
	}

	updated, err := s.lotRepository.UpdateLot(ctx, lotID, update)
	if err != nil {
		log.Err(err).Str("lot_id", lotID.String()).Msg("lot update ended with error")
		return models.Lot{}, fmt.Errorf("lot update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteLot removes an owned lot and, through the schema's cascade, its
// event history.
func (s *lotService) DeleteLot(ctx context.Context, producerID, lotID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedLot(ctx, producerID, lotID); err != nil {
		return err
	}

	if err := s.lotRepository.DeleteLot(ctx, lotID); err != nil {
		log.Err(err).Str("lot_id", lotID.String()).Msg("lot deletion ended with error")
		return fmt.Errorf("lot deletion ended with error: %w", err)
	}

	return nil
}

// ownedLot fetches a lot and verifies producerID owns it, returning
// ErrAccessDenied otherwise.
func (s *lotService) ownedLot(ctx context.Context, producerID, lotID uuid.UUID) (models.Lot, error) {
	lot, err := s.lotRepository.FindLotByID(ctx, lotID)
	if err != nil {
		return models.Lot{}, err
	}

	if lot.ProducerID != producerID {
		return models.Lot{}, ErrAccessDenied
	}

	return lot, nil
}

// newLotCode generates a short, human-readable traceability code.
func newLotCode() string {
	return "LOT-" + strings.ToUpper(uuid.NewString()[:8])
}
