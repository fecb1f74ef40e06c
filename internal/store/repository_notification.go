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

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNotification persists a new notification (unread) and returns it
// with server-assigned fields.
func (r *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification,
		notification.ProducerID, notification.Title, notification.Message,
		notification.NotificationType, []byte(notification.Metadata),
	)

	created, err := scanNotification(row)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.CreateNotification").Msg("error creating notification")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindNotificationByID retrieves the notification with the given
// identifier.
//
// Returns [ErrNotificationNotFound] when no record matches.
func (r *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (models.Notification, error) {
	log := logger.FromContext(ctx)

	found, err := scanNotification(r.db.QueryRowContext(ctx, findNotificationByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, ErrNotificationNotFound
		}

		log.Err(err).Str("func", "*notificationRepository.FindNotificationByID").Msg("error searching notification by id")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListNotificationsByProducer returns a page of the producer's
// notifications, newest first.
func (r *notificationRepository) ListNotificationsByProducer(ctx context.Context, producerID uuid.UUID, page, perPage int64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	builder := paginate(
		psql.Select(notificationColumns).
			From(models.Notification{}.TableName()).
			Where(sq.Eq{"producer_id": producerID}).
			OrderBy("created_at DESC"),
		page, perPage,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotificationsByProducer").Msg("error listing notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, perPage)
	for rows.Next() {
		n, scanErr := scanNotification(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// UpdateNotification applies the non-nil fields of update to the
// notification with the given identifier and returns the updated record.
//
// Returns [ErrNotificationNotFound] when no record matches.
func (r *notificationRepository) UpdateNotification(ctx context.Context, id uuid.UUID, update models.NotificationUpdate) (models.Notification, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.Notification{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + notificationColumns)

	changed := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.Message != nil {
		builder = builder.Set("message", *update.Message)
		changed = true
	}
	if update.NotificationType != nil {
		builder = builder.Set("notification_type", *update.NotificationType)
		changed = true
	}
	if update.IsRead != nil {
		builder = builder.Set("is_read", *update.IsRead)
		changed = true
	}
	if update.Metadata != nil {
		builder = builder.Set("metadata", []byte(update.Metadata))
		changed = true
	}

	if !changed {
		return models.Notification{}, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Notification{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNotification(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, ErrNotificationNotFound
		}

		log.Err(err).Str("func", "*notificationRepository.UpdateNotification").Msg("error updating notification")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteNotification removes the notification with the given identifier.
//
// Returns [ErrNotificationNotFound] when no record matches.
func (r *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNotification, id)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.DeleteNotification").Msg("error deleting notification")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead flips the is_read flag on every unread notification of the
// given producer. Marking zero rows is not an error.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, producerID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, markAllNotificationsRead, producerID); err != nil {
		log.Err(err).Str("func", "*notificationRepository.MarkAllAsRead").Msg("error marking notifications as read")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
