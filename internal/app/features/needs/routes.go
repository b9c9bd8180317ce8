// internal/app/features/needs/routes.go
package needs

import "github.com/go-chi/chi/v5"

// Routes mounts the needs board (typically under "/needs").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleSubmit)
	return r
}
