package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/models"
)

// lotRepository is the PostgreSQL-backed implementation of [LotRepository].
type lotRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLotRepository constructs a [LotRepository] backed by the provided
// database connection and logger.
func NewLotRepository(db *DB, logger *logger.Logger) LotRepository {
	logger.Debug().Msg("creating lot repository")
	return &lotRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLot persists a new lot and returns it with server-assigned fields
// (ID, default status, timestamps).
func (r *lotRepository) CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error) {
	log := logger.FromContext(ctx)

	locX, locY := pointArgs(lot.LocationCoordinates)
	row := r.db.QueryRowContext(ctx, createLot,
		lot.ProducerID, lot.LotCode, lot.ProductName, lot.CropType,
		lot.EstimatedQuantity, lot.UnitOfMeasure, lot.EstimatedHarvestDate,
		lot.AdditionalDescription, locX, locY,
	)

	created, err := scanLot(row)
	if err != nil {
		log.Err(err).Str("func", "*lotRepository.CreateLot").Msg("error creating lot")
		return models.Lot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindLotByID retrieves the lot with the given identifier.
//
// Returns [ErrLotNotFound] when no record matches.
func (r *lotRepository) FindLotByID(ctx context.Context, id uuid.UUID) (models.Lot, error) {
	log := logger.FromContext(ctx)

	found, err := scanLot(r.db.QueryRowContext(ctx, findLotByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Lot{}, ErrLotNotFound
		}

		log.Err(err).Str("func", "*lotRepository.FindLotByID").Msg("error searching lot by id")
		return models.Lot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListLots returns a page of lots matching the filter, newest first. The
// producer ID is always applied; the remaining filter fields become WHERE
// clauses only when set.
func (r *lotRepository) ListLots(ctx context.Context, filter models.LotFilter) ([]models.Lot, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(lotColumns).
		From(models.Lot{}.TableName()).
		Where(sq.Eq{"producer_id": filter.ProducerID}).
		OrderBy("created_at DESC")

	if filter.ProductName != "" {
		builder = builder.Where(sq.ILike{"product_name": "%" + filter.ProductName + "%"})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"current_status": filter.Status})
	}
	if filter.CropType != "" {
		builder = builder.Where(sq.Eq{"crop_type": filter.CropType})
	}

	builder = paginate(builder, filter.Page, filter.PerPage)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*lotRepository.ListLots").Msg("error listing lots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lots := make([]models.Lot, 0, filter.PerPage)
	for rows.Next() {
		l, scanErr := scanLot(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		lots = append(lots, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lots, nil
}

// UpdateLot applies the non-nil fields of update to the lot with the given
// identifier and returns the updated record.
//
// Returns [ErrLotNotFound] when no record matches.
func (r *lotRepository) UpdateLot(ctx context.Context, id uuid.UUID, update models.LotUpdate) (models.Lot, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.Lot{}.TableName()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + lotColumns)

	if update.ProductName != nil {
		builder = builder.Set("product_name", *update.ProductName)
	}
	if update.CropType != nil {
		builder = builder.Set("crop_type", *update.CropType)
	}
	if update.EstimatedQuantity != nil {
		builder = builder.Set("estimated_quantity", *update.EstimatedQuantity)
	}
	if update.UnitOfMeasure != nil {
		builder = builder.Set("unit_of_measure", *update.UnitOfMeasure)
	}
	if update.EstimatedHarvestDate != nil {
		builder = builder.Set("estimated_harvest_date", *update.EstimatedHarvestDate)
	}
	if update.ActualHarvestDate != nil {
		builder = builder.Set("actual_harvest_date", *update.ActualHarvestDate)
	}
	if update.CurrentStatus != nil {
		builder = builder.Set("current_status", *update.CurrentStatus)
	}
	if update.AdditionalDescription != nil {
		builder = builder.Set("additional_description", *update.AdditionalDescription)
	}
	if update.LocationCoordinates != nil {
		builder = builder.
			Set("location_x", update.LocationCoordinates.X).
			Set("location_y", update.LocationCoordinates.Y)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Lot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanLot(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Lot{}, ErrLotNotFound
		}

		log.Err(err).Str("func", "*lotRepository.UpdateLot").Msg("error updating lot")
		return models.Lot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteLot removes the lot with the given identifier.
//
// Returns [ErrLotNotFound] when no record matches.
func (r *lotRepository) DeleteLot(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLot, id)
	if err != nil {
		log.Err(err).Str("func", "*lotRepository.DeleteLot").Msg("error deleting lot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrLotNotFound
	}

	return nil
}
