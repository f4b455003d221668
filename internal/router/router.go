package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/auth"
	"github.com/saulo-duarte/chronos-quiz/internal/catalog"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	_ "github.com/saulo-duarte/chronos-quiz/internal/docs"
	"github.com/saulo-duarte/chronos-quiz/internal/middlewares"
	"github.com/saulo-duarte/chronos-quiz/internal/session"
)

type RouterConfig struct {
	AuthHandler    *auth.Handler
	CatalogHandler *catalog.Handler
	SessionHandler *session.Handler
	AIQuizHandler  *aiquiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/guest", cfg.AuthHandler.Guest)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Mount("/weeks", catalog.Routes(cfg.CatalogHandler))
	r.Mount("/session", session.Routes(cfg.SessionHandler))
	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	return r
}
