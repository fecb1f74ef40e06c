package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/models"
)

// notificationService is the concrete implementation of
// NotificationService. Notifications are strictly scoped to their
// recipient: every read or mutation verifies the caller is the addressee.
type notificationService struct {
	notificationRepository store.NotificationRepository
	logger                 *logger.Logger
}

// NewNotificationService constructs a NotificationService backed by the
// given repository.
func NewNotificationService(notificationRepository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

// CreateNotification stores a new unread notification addressed to the
// calling producer.
func (s *notificationService) CreateNotification(ctx context.Context, producerID uuid.UUID, request models.CreateNotificationRequest) (models.Notification, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" || request.Message == "" {
		log.Error().Msg("invalid notification data provided")
		return models.Notification{}, ErrInvalidDataProvided
	}

	created, err := s.notificationRepository.CreateNotification(ctx, models.Notification{
		ProducerID:       producerID,
		Title:            request.Title,
		Message:          request.Message,
		NotificationType: request.NotificationType,
		Metadata:         request.Metadata,
	})
	if err != nil {
		log.Err(err).Msg("notification creation ended with error")
		return models.Notification{}, fmt.Errorf("notification creation ended with error: %w", err)
	}

	return created, nil
}

// GetNotification returns a single owned notification.
func (s *notificationService) GetNotification(ctx context.Context, producerID, notificationID uuid.UUID) (models.Notification, error) {
	return s.ownedNotification(ctx, producerID, notificationID)
}

// ListNotifications returns a page of the producer's notifications, newest
// first.
func (s *notificationService) ListNotifications(ctx context.Context, producerID uuid.UUID, page, perPage int64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	notifications, err := s.notificationRepository.ListNotificationsByProducer(ctx, producerID, page, perPage)
	if err != nil {
		log.Err(err).Msg("notification listing ended with error")
		return nil, fmt.Errorf("notification listing ended with error: %w", err)
	}

	return notifications, nil
}

// UpdateNotification applies a partial update to an owned notification.
func (s *notificationService) UpdateNotification(ctx context.Context, producerID, notificationID uuid.UUID, update models.NotificationUpdate) (models.Notification, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ownedNotification(ctx, producerID, notificationID); err != nil {
		return models.Notification{}, err
	}

	updated, err := s.notificationRepository.UpdateNotification(ctx, notificationID, update)
	if err != nil {
		log.Err(err).Str("notification_id", notificationID.String()).Msg("notification update ended with error")
		return models.Notification{}, fmt.Errorf("notification update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNotification removes an owned notification.
func (s *notificationService) DeleteNotification(ctx context.Context, producerID, notificationID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedNotification(ctx, producerID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepository.DeleteNotification(ctx, notificationID); err != nil {
		log.Err(err).Str("notification_id", notificationID.String()).Msg("notification deletion ended with error")
		return fmt.Errorf("notification deletion ended with error: %w", err)
	}

	return nil
}

// MarkAsRead flips the read flag on a single owned notification.
func (s *notificationService) MarkAsRead(ctx context.Context, producerID, notificationID uuid.UUID) (models.Notification, error) {
	isRead := true
	return s.UpdateNotification(ctx, producerID, notificationID, models.NotificationUpdate{IsRead: &isRead})
}

// MarkAllAsRead flips the read flag on every unread notification addressed
// to the producer.
func (s *notificationService) MarkAllAsRead(ctx context.Context, producerID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.notificationRepository.MarkAllAsRead(ctx, producerID); err != nil {
		log.Err(err).Msg("marking notifications as read ended with error")
		return fmt.Errorf("marking notifications as read ended with error: %w", err)
	}

	return nil
}

func (s *notificationService) ownedNotification(ctx context.Context, producerID, notificationID uuid.UUID) (models.Notification, error) {
	notification, err := s.notificationRepository.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return models.Notification{}, err
	}

	if notification.ProducerID != producerID {
		return models.Notification{}, ErrAccessDenied
	}

	return notification, nil
}
