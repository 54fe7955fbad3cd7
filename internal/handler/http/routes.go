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
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/", h.health)
		r.Get("/api/health", h.health)
		r.Post("/api/auth/login", h.adminLogin)
		r.Post("/api/users/signup", h.signup)
		r.Post("/api/users/login", h.userLogin)
		r.Post("/api/users/validate", h.validate)
		r.Get("/api/users/get-details-by-device-id", h.getDetailsByDeviceID)
	})

	// admin console routes
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)

		r.Get("/api/auth/verify", h.verifyAdmin)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/count", h.countUsers)
		r.Get("/api/users/{userID}", h.getUser)
		r.Delete("/api/users/{userID}", h.deleteUser)
		r.Patch("/api/users/{userID}/status", h.setStatus)
		r.Post("/api/users/{userID}/device-id", h.addDeviceID)
		r.Delete("/api/users/{userID}/device-id", h.removeDeviceID)
		r.Post("/api/users/{userID}/ble-id", h.addBleID)
		r.Delete("/api/users/{userID}/ble-id", h.removeBleID)
		r.Patch("/api/users/{userID}/reset-password", h.resetPassword)
		r.Patch("/api/users/{userID}/reset-secret-code", h.resetSecretCode)

		r.Get("/api/devices", h.listDeviceBindings)
		r.Get("/api/ble-usage", h.listBleUsage)
		r.Get("/api/login-history", h.listLoginHistory)
	})

	return router
}
