package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the token-only gate: the claims are trusted as-is, no
	// store round-trip
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
	})

	// routes behind the principal-resolving gate: the producer is re-fetched
	// on every request so deactivation takes effect immediately
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.authProducer)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/producers", h.listProducers)
		r.Get("/api/producers/{producerID}", h.getProducer)
		r.Put("/api/producers/{producerID}", h.updateProducer)
		r.Delete("/api/producers/{producerID}", h.deleteProducer)

		r.Post("/api/lots", h.createLot)
		r.Get("/api/lots", h.listLots)
		r.Get("/api/lots/{lotID}", h.getLot)
		r.Put("/api/lots/{lotID}", h.updateLot)
		r.Delete("/api/lots/{lotID}", h.deleteLot)

		r.Post("/api/lots/{lotID}/events", h.createEvent)
		r.Get("/api/lots/{lotID}/events", h.listLotEvents)
		r.Get("/api/events/{eventID}", h.getEvent)
		r.Put("/api/events/{eventID}", h.updateEvent)
		r.Delete("/api/events/{eventID}", h.deleteEvent)

		r.Post("/api/notifications", h.createNotification)
		r.Get("/api/notifications", h.listNotifications)
		r.Post("/api/notifications/read-all", h.markAllNotificationsRead)
		r.Get("/api/notifications/{notificationID}", h.getNotification)
		r.Put("/api/notifications/{notificationID}", h.updateNotification)
		r.Delete("/api/notifications/{notificationID}", h.deleteNotification)
		r.Post("/api/notifications/{notificationID}/read", h.markNotificationRead)
	})

	return router
}
