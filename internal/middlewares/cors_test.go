package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/chronos-quiz/internal/middlewares"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCors(t *testing.T) {
	t.Run("ListedOrigin", func(t *testing.T) {
		h := middlewares.Cors([]string{"https://quiz.example.com"})(ok)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://quiz.example.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://quiz.example.com" {
			t.Errorf("allow origin = %q", got)
		}
		if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("credentials should be allowed for a listed origin")
		}
	})

	t.Run("UnlistedOrigin", func(t *testing.T) {
		h := middlewares.Cors([]string{"https://quiz.example.com"})(ok)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("unexpected allow origin %q", got)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("request should still reach the handler, got %d", rec.Code)
		}
	})

	t.Run("Wildcard", func(t *testing.T) {
		h := middlewares.Cors([]string{"*"})(ok)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("allow origin = %q, want *", got)
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		h := middlewares.Cors([]string{"*"})(ok)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/session", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("preflight got %d, want 204", rec.Code)
		}
	})
}
