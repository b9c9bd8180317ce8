// internal/app/features/listings/routes.go
package listings

import "github.com/go-chi/chi/v5"

// Routes mounts the public catalog (typically under "/listings").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)

	// Sell / register submission; always lands in the moderation queue.
	r.Post("/", h.HandleSubmit)

	return r
}
