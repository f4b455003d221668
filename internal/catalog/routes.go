package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListWeeks)
	return r
}
