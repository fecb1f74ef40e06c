package http

import (
	"errors"
	"net/http"

	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/service"
	"github.com/kairos-agro/kairos-server/internal/store"
	"github.com/kairos-agro/kairos-server/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrAccountInactive:     http.StatusForbidden,
	service.ErrAccessDenied:        http.StatusForbidden,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	utils.ErrTokenExpired:            http.StatusUnauthorized,
	utils.ErrTokenMalformed:          http.StatusUnauthorized,
	utils.ErrUnexpectedSigningMethod: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:   http.StatusBadRequest,
	store.ErrProducerNotFound:     http.StatusNotFound,
	store.ErrLotNotFound:          http.StatusNotFound,
	store.ErrEventNotFound:        http.StatusNotFound,
	store.ErrNotificationNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "Invalid data provided",
	service.ErrInvalidCredentials:  "Invalid credentials",
	service.ErrAccountInactive:     "Producer account is inactive",
	service.ErrAccessDenied:        "Access denied",

	utils.ErrTokenExpired:            "Token expired",
	utils.ErrTokenMalformed:          "Invalid token",
	utils.ErrUnexpectedSigningMethod: "Invalid token",

	store.ErrEmailAlreadyExists:   "Email already exists",
	store.ErrProducerNotFound:     "Producer not found",
	store.ErrLotNotFound:          "Lot not found",
	store.ErrEventNotFound:        "Event not found",
	store.ErrNotificationNotFound: "Notification not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for err. Unmapped errors
// are internal; their cause is logged out-of-band and never serialized.
func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Internal server error"
}

// respondError logs the full error chain and writes the mapped status with
// the standard {"error": <message>} body.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)

	log.Err(err).Int("status", status).Msg(message)
	utils.WriteError(w, message, status)
}
