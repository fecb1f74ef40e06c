package http

import (
	"encoding/json"
	"net/http"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
)

func (h *Handler) createLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	var request models.CreateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	lot, err := h.services.LotService.CreateLot(ctx, producer.ID, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, lot, http.StatusCreated)
}

// listLots always scopes the query to the authenticated producer; there is
// no cross-producer listing.
func (h *Handler) listLots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	producer, _ := utils.ProducerFromContext(ctx)

	query := r.URL.Query()
	filter := models.LotFilter{
		ProducerID:  producer.ID,
		ProductName: query.Get("product_name"),
		Status:      models.LotStatus(query.Get("status")),
		CropType:    models.CropType(query.Get("crop_type")),
	}
	filter.Page, filter.PerPage = pageParams(r)

	lots, err := h.services.LotService.ListLots(ctx, filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LotList{
		Lots: lots,
		ListMeta: models.ListMeta{
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   int64(len(lots)),
		},
	}, http.StatusOK)
}

func (h *Handler) getLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	lotID, err := uuidParam(r, "lotID")
	if err != nil {
		log.Err(err).Msg("invalid lot id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	lot, err := h.services.LotService.GetLot(ctx, producer.ID, lotID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, lot, http.StatusOK)
}

func (h *Handler) updateLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	lotID, err := uuidParam(r, "lotID")
	if err != nil {
		log.Err(err).Msg("invalid lot id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	var update models.LotUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	lot, err := h.services.LotService.UpdateLot(ctx, producer.ID, lotID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, lot, http.StatusOK)
}

func (h *Handler) deleteLot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	producer, _ := utils.ProducerFromContext(ctx)

	lotID, err := uuidParam(r, "lotID")
	if err != nil {
		log.Err(err).Msg("invalid lot id")
		utils.WriteError(w, "Invalid identifier", http.StatusBadRequest)
		return
	}

	if err := h.services.LotService.DeleteLot(ctx, producer.ID, lotID); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
