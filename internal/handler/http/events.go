package http

import (
	"encoding/json"
	"net/http"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
)

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	lotID, err := uuidParam(r, "lotID")
	if err != nil {
		log.Err(err).Msg("invalid lot id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	var request models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	event, err := h.services.EventService.CreateEvent(ctx, producer.ID, lotID, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusCreated)
}

// listLotEvents returns the lot's full history in chronological order,
// unpaginated: a traceability trail is only useful whole.
func (h *Handler) listLotEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	lotID, err := uuidParam(r, "lotID")
	if err != nil {
		log.Err(err).Msg("invalid lot id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	events, err := h.services.EventService.ListLotEvents(ctx, producer.ID, lotID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		log.Err(err).Msg("invalid event id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	event, err := h.services.EventService.GetEvent(ctx, producer.ID, eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		log.Err(err).Msg("invalid event id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	var update models.EventUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	event, err := h.services.EventService.UpdateEvent(ctx, producer.ID, eventID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		log.Err(err).Msg("invalid event id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	if err := h.services.EventService.DeleteEvent(ctx, producer.ID, eventID); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
