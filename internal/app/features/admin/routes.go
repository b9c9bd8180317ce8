// internal/app/features/admin/routes.go
package admin

import (
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin console (typically under "/admin"). Sign-in and
// sign-out are mounted separately.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Open: the console asks once whether it has a session.
	r.Get("/session", h.ServeSession)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)

		pr.Get("/listings", h.ServeListings)
		pr.Get("/listings/{id}", h.ServeListing)
		pr.Post("/listings/{id}/approve", h.HandleApprove)
		pr.Post("/listings/{id}/reject", h.HandleReject)
		pr.Post("/listings/{id}/reopen", h.HandleReopen)
		pr.Delete("/listings/{id}", h.HandleDelete)

		pr.Get("/stats", h.ServeStats)
		pr.Get("/activity", h.ServeActivity)
		pr.Get("/messages", h.ServeMessages)
		pr.Get("/export", h.ServeExport)
	})

	return r
}
