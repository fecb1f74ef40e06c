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

// eventRepository is the PostgreSQL-backed implementation of
// [EventRepository].
type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by the provided
// database connection and logger.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEvent persists a new traceability event and returns it with
// server-assigned fields (ID, created_at).
func (r *eventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	coordX, coordY := pointArgs(event.Coordinates)
	row := r.db.QueryRowContext(ctx, createEvent,
		event.LotID, event.EventType, event.Description, event.EventLocation,
		coordX, coordY, []byte(event.Metadata),
	)

	created, err := scanEvent(row)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.CreateEvent").Msg("error creating event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindEventByID retrieves the event with the given identifier.
//
// Returns [ErrEventNotFound] when no record matches.
func (r *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (models.Event, error) {
	log := logger.FromContext(ctx)

	found, err := scanEvent(r.db.QueryRowContext(ctx, findEventByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrEventNotFound
		}

		log.Err(err).Str("func", "*eventRepository.FindEventByID").Msg("error searching event by id")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListEventsByLot returns every event attached to the given lot in
// chronological order. An event log is the lot's full history; it is not
// paginated.
func (r *eventRepository) ListEventsByLot(ctx context.Context, lotID uuid.UUID) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listEventsByLot, lotID)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEventsByLot").Msg("error listing events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, 16)
	for rows.Next() {
		e, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// UpdateEvent applies the non-nil fields of update to the event with the
// given identifier and returns the updated record.
//
// Returns [ErrEventNotFound] when no record matches.
func (r *eventRepository) UpdateEvent(ctx context.Context, id uuid.UUID, update models.EventUpdate) (models.Event, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.Event{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + eventColumns)

	changed := false
	if update.EventType != nil {
		builder = builder.Set("event_type", *update.EventType)
		changed = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		changed = true
	}
	if update.EventLocation != nil {
		builder = builder.Set("event_location", *update.EventLocation)
		changed = true
	}
	if update.Coordinates != nil {
		builder = builder.
			Set("coordinates_x", update.Coordinates.X).
			Set("coordinates_y", update.Coordinates.Y)
		changed = true
	}
	if update.Metadata != nil {
		builder = builder.Set("metadata", []byte(update.Metadata))
		changed = true
	}

	if !changed {
		return models.Event{}, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrEventNotFound
		}

		log.Err(err).Str("func", "*eventRepository.UpdateEvent").Msg("error updating event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteEvent removes the event with the given identifier.
//
// Returns [ErrEventNotFound] when no record matches.
func (r *eventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEvent, id)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.DeleteEvent").Msg("error deleting event")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}
