package middlewares

import (
	"net/http"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

const (
	allowHeaders = "Content-Type, Authorization, Accept, Origin, X-Requested-With, X-Request-Id"
	allowMethods = "GET, POST, DELETE, OPTIONS"
)

// Cors allows the listed origins; "*" allows any origin. Credentials are only
// advertised for explicitly listed origins.
func Cors(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			continue
		}
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()

			switch {
			case origin != "" && allowed[origin]:
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			case wildcard:
				h.Set("Access-Control-Allow-Origin", "*")
			}
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Allow-Methods", allowMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func CorsMiddleware(next http.Handler) http.Handler {
	return Cors(config.Current.CorsOrigins)(next)
}
