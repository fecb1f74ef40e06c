package http

import (
	"encoding/json"
	"net/http"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
)

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	var request models.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notification, err := h.services.NotificationService.CreateNotification(ctx, producer.ID, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, notification, http.StatusCreated)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	producer, _ := utils.ProducerFromContext(ctx)

	page, perPage := pageParams(r)

	notifications, err := h.services.NotificationService.ListNotifications(ctx, producer.ID, page, perPage)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NotificationList{
		Notifications: notifications,
		ListMeta: models.ListMeta{
			Page:    page,
			PerPage: perPage,
			Total:   int64(len(notifications)),
		},
	}, http.StatusOK)
}

func (h *Handler) getNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	notificationID, err := uuidParam(r, "notificationID")
	if err != nil {
		log.Err(err).Msg("invalid notification id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	notification, err := h.services.NotificationService.GetNotification(ctx, producer.ID, notificationID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, notification, http.StatusOK)
}

func (h *Handler) updateNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	notificationID, err := uuidParam(r, "notificationID")
	if err != nil {
		log.Err(err).Msg("invalid notification id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	var update models.NotificationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notification, err := h.services.NotificationService.UpdateNotification(ctx, producer.ID, notificationID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, notification, http.StatusOK)
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	notificationID, err := uuidParam(r, "notificationID")
	if err != nil {
		log.Err(err).Msg("invalid notification id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	if err := h.services.NotificationService.DeleteNotification(ctx, producer.ID, notificationID); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	notificationID, err := uuidParam(r, "notificationID")
	if err != nil {
		log.Err(err).Msg("invalid notification id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	notification, err := h.services.NotificationService.MarkAsRead(ctx, producer.ID, notificationID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, notification, http.StatusOK)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	producer, _ := utils.ProducerFromContext(ctx)

	if err := h.services.NotificationService.MarkAllAsRead(ctx, producer.ID); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "All notifications marked as read"}, http.StatusOK)
}
