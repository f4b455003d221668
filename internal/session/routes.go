package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-quiz/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.Start)
	r.Get("/", h.Get)
	r.Delete("/", h.Discard)
	r.Post("/answer", h.Answer)
	r.Post("/next", h.Next)
	r.Post("/previous", h.Previous)
	r.Get("/result", h.Result)
	r.Get("/review", h.Review)
	return r
}
