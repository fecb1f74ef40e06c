package http

import (
	"encoding/json"
	"net/http"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/utils"
	"github.com/kairos-agro/kairos-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterProducerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	producer, err := h.services.AuthService.RegisterProducer(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("producer_id", producer.ID.String()).Msg("producer successfully registered")

	token, err := h.services.AuthService.CreateToken(ctx, producer)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenScheme,
		ExpiresIn:   token.ExpiresIn,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	producer, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("producer_id", producer.ID.String()).Msg("producer successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, producer)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenScheme,
		ExpiresIn:   token.ExpiresIn,
	}, http.StatusOK)
}

// logout acknowledges the client dropping its token. Tokens are stateless
// and carry their own expiry, so there is no revocation list to update:
// the credential keeps working until exp regardless of this call.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.ClaimsFromContext(r.Context())
	if ok {
		log.Debug().Str("sub", claims.Subject).Msg("producer logged out")
	}

	utils.WriteJSON(w, map[string]string{"message": "Logged out successfully"}, http.StatusOK)
}

// me returns the live principal resolved by the authProducer gate.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	producer, ok := utils.ProducerFromContext(r.Context())
	if !ok {
		log.Error().Msg("no producer in request context")
		utils.WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, producer, http.StatusOK)
}
