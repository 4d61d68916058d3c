package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.indexPage)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes for any logged-in user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/search", h.search)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.adminOnly)

		r.Get("/admin", h.adminPage)

		r.Get("/api/admin/users", h.listUsers)
		r.Post("/api/admin/users", h.createUser)
		r.Delete("/api/admin/users/{username}", h.deleteUser)
		r.Post("/api/admin/users/{username}/password", h.resetPassword)

		r.Get("/api/admin/logs", h.listLogs)
		r.Get("/api/admin/logs/export", h.exportLogs)
		r.Get("/api/admin/logs/stats", h.logStats)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
