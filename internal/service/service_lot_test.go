package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLotRepository implements store.LotRepository for unit tests.
type mockLotRepository struct {
	createLotFn   func(ctx context.Context, lot models.Lot) (models.Lot, error)
	findLotByIDFn func(ctx context.Context, id uuid.UUID) (models.Lot, error)
	listLotsFn    func(ctx context.Context, filter models.LotFilter) ([]models.Lot, error)
	updateLotFn   func(ctx context.Context, id uuid.UUID, update models.LotUpdate) (models.Lot, error)
	deleteLotFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLotRepository) CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error) {
	return m.createLotFn(ctx, lot)
}

func (m *mockLotRepository) FindLotByID(ctx context.Context, id uuid.UUID) (models.Lot, error) {
	return m.findLotByIDFn(ctx, id)
}

func (m *mockLotRepository) ListLots(ctx context.Context, filter models.LotFilter) ([]models.Lot, error) {
	return m.listLotsFn(ctx, filter)
}

func (m *mockLotRepository) UpdateLot(ctx context.Context, id uuid.UUID, update models.LotUpdate) (models.Lot, error) {
	return m.updateLotFn(ctx, id, update)
}

func (m *mockLotRepository) DeleteLot(ctx context.Context, id uuid.UUID) error {
	return m.deleteLotFn(ctx, id)
}

func TestCreateLot_GeneratesLotCode(t *testing.T) {
	producerID := uuid.New()
	repo := &mockLotRepository{
		createLotFn: func(_ context.Context, lot models.Lot) (models.Lot, error) {
			lot.ID = uuid.New()
			lot.CurrentStatus = models.LotStatusRegistered
			return lot, nil
		},
	}
	svc := NewLotService(repo, logger.Nop())

	created, err := svc.CreateLot(context.Background(), producerID, models.CreateLotRequest{
		ProductName:          "Café arábica",
		CropType:             models.CropTypeGrain,
		EstimatedQuantity:    500,
		UnitOfMeasure:        "kg",
		EstimatedHarvestDate: time.Now().AddDate(0, 3, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, producerID, created.ProducerID)
	assert.True(t, strings.HasPrefix(created.LotCode, "LOT-"), "lot code %q must carry the LOT- prefix", created.LotCode)
	assert.Len(t, created.LotCode, len("LOT-")+8)
	assert.Equal(t, models.LotStatusRegistered, created.CurrentStatus)
}

func TestCreateLot_InvalidData(t *testing.T) {
	svc := NewLotService(&mockLotRepository{}, logger.Nop())

	_, err := svc.CreateLot(context.Background(), uuid.New(), models.CreateLotRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetLot_OwnershipEnforced(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	lotID := uuid.New()

	repo := &mockLotRepository{
		findLotByIDFn: func(_ context.Context, id uuid.UUID) (models.Lot, error) {
			return models.Lot{ID: id, ProducerID: owner}, nil
		},
	}
	svc := NewLotService(repo, logger.Nop())

	lot, err := svc.GetLot(context.Background(), owner, lotID)
	require.NoError(t, err)
	assert.Equal(t, lotID, lot.ID)

	_, err = svc.GetLot(context.Background(), intruder, lotID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteLot_NotFound(t *testing.T) {
	repo := &mockLotRepository{
		findLotByIDFn: func(_ context.Context, _ uuid.UUID) (models.Lot, error) {
			return models.Lot{}, store.ErrLotNotFound
		},
	}
	svc := NewLotService(repo, logger.Nop())

	err := svc.DeleteLot(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrLotNotFound)
}
