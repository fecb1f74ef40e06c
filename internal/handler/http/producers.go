package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
)

func (h *Handler) listProducers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	filter := models.ProducerFilter{
		Search: query.Get("search"),
		Status: models.ProducerStatus(query.Get("status")),
	}
	if raw := query.Get("is_active"); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &isActive
		}
	}
	filter.Page, filter.PerPage = pageParams(r)

	producers, err := h.services.ProducerService.ListProducers(ctx, filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProducerList{
		Producers: producers,
		ListMeta: models.ListMeta{
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   int64(len(producers)),
		},
	}, http.StatusOK)
}

func (h *Handler) getProducer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "producerID")
	if err != nil {
		log.Err(err).Msg("invalid producer id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	producer, err := h.services.ProducerService.GetProducer(ctx, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, producer, http.StatusOK)
}

func (h *Handler) updateProducer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "producerID")
	if err != nil {
		log.Err(err).Msg("invalid producer id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	var update models.ProducerUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	producer, err := h.services.ProducerService.UpdateProducer(ctx, id, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, producer, http.StatusOK)
}

func (h *Handler) deleteProducer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "producerID")
	if err != nil {
		log.Err(err).Msg("invalid producer id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	if err := h.services.ProducerService.DeleteProducer(ctx, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
