package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/models"
)

// producerRepository is the PostgreSQL-backed implementation of
// [ProducerRepository]. It handles producer account creation and lookup
// against the "producers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type producerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProducerRepository constructs a [ProducerRepository] backed by the
// provided database connection and logger.
func NewProducerRepository(db *DB, logger *logger.Logger) ProducerRepository {
	logger.Debug().Msg("creating producer repository")
	return &producerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProducer persists a new producer record and returns the fully
// populated [models.Producer] with server-assigned fields (ID, timestamps,
// defaults for the active flag and status).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists]. The
//     email uniqueness constraint in the database is the authoritative
//     guard against duplicate registrations; there is no application-level
//     existence pre-check to race with.
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *producerRepository) CreateProducer(ctx context.Context, producer models.Producer) (models.Producer, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProducer,
		producer.FullName, producer.Email, producer.PasswordHash,
		producer.FarmName, producer.Phone, producer.LanguagePreference,
	)

	created, err := scanProducer(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Err(err).Str("func", "*producerRepository.CreateProducer").Msg("email uniqueness constraint violated")
			return models.Producer{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*producerRepository.CreateProducer").Msg("error creating producer")
		return models.Producer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindProducerByEmail retrieves the producer whose email exactly matches
// the given value (case-sensitive, as stored).
//
// Returns [ErrProducerNotFound] when no record matches.
func (r *producerRepository) FindProducerByEmail(ctx context.Context, email string) (models.Producer, error) {
	log := logger.FromContext(ctx)

	found, err := scanProducer(r.db.QueryRowContext(ctx, findProducerByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Producer{}, ErrProducerNotFound
		}

		log.Err(err).Str("func", "*producerRepository.FindProducerByEmail").Msg("error searching producer by email")
		return models.Producer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// FindProducerByID retrieves the producer with the given identifier.
//
// Returns [ErrProducerNotFound] when no record matches.
func (r *producerRepository) FindProducerByID(ctx context.Context, id uuid.UUID) (models.Producer, error) {
	log := logger.FromContext(ctx)

	found, err := scanProducer(r.db.QueryRowContext(ctx, findProducerByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Producer{}, ErrProducerNotFound
		}

		log.Err(err).Str("func", "*producerRepository.FindProducerByID").Msg("error searching producer by id")
		return models.Producer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListProducers returns a page of producers matching the filter, ordered by
// creation time. The query is built dynamically so only the provided filter
// fields become WHERE clauses.
func (r *producerRepository) ListProducers(ctx context.Context, filter models.ProducerFilter) ([]models.Producer, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(producerColumns).
		From(models.Producer{}.TableName()).
		OrderBy("created_at")

	if filter.Search != "" {
		builder = builder.Where(sq.Or{
			sq.ILike{"full_name": "%" + filter.Search + "%"},
			sq.ILike{"email": "%" + filter.Search + "%"},
		})
	}
	if filter.IsActive != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.IsActive})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	builder = paginate(builder, filter.Page, filter.PerPage)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*producerRepository.ListProducers").Msg("error listing producers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	producers := make([]models.Producer, 0, filter.PerPage)
	for rows.Next() {
		p, scanErr := scanProducer(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		producers = append(producers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return producers, nil
}

// UpdateProducer applies the non-nil fields of update to the producer with
// the given identifier and returns the updated record.
//
// Returns [ErrProducerNotFound] when no record matches.
func (r *producerRepository) UpdateProducer(ctx context.Context, id uuid.UUID, update models.ProducerUpdate) (models.Producer, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.Producer{}.TableName()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + producerColumns)

	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
	}
	if update.FarmName != nil {
		builder = builder.Set("farm_name", *update.FarmName)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.LanguagePreference != nil {
		builder = builder.Set("language_preference", *update.LanguagePreference)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Producer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProducer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Producer{}, ErrProducerNotFound
		}

		log.Err(err).Str("func", "*producerRepository.UpdateProducer").Msg("error updating producer")
		return models.Producer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteProducer removes the producer with the given identifier.
//
// Returns [ErrProducerNotFound] when no record matches.
func (r *producerRepository) DeleteProducer(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProducer, id)
	if err != nil {
		log.Err(err).Str("func", "*producerRepository.DeleteProducer").Msg("error deleting producer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProducerNotFound
	}

	return nil
}

// paginate applies LIMIT/OFFSET pagination to a select builder, defaulting
// to the first page of ten records when the filter leaves them unset.
func paginate(builder sq.SelectBuilder, page, perPage int64) sq.SelectBuilder {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	return builder.Limit(uint64(perPage)).Offset(uint64((page - 1) * perPage))
}
