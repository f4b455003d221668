package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

const (
	guestTokenTTL = 24 * time.Hour
	maxNameLength = 40
	defaultName   = "Guest"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type GuestRequest struct {
	Name string `json:"name"`
}

type GuestResponse struct {
	Token     string    `json:"token"`
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

func guestName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return defaultName
	}
	if r := []rune(name); len(r) > maxNameLength {
		name = string(r[:maxNameLength])
	}
	return name
}

// Guest godoc
// @Summary      Issue a guest player token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      GuestRequest  false  "display name"
// @Success      201   {object}  GuestResponse
// @Router       /auth/guest [post]
func (h *Handler) Guest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GuestRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.WithError(err).Warn("Invalid guest login body")
			config.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	claims := newClaims(uuid.NewString(), RoleGuest, guestName(req.Name), guestTokenTTL)
	token, err := sign(claims)
	if err != nil {
		log.WithError(err).Error("Failed to sign guest token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  claims.ExpiresAt.Time,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	log.WithField("player_id", claims.UserID).Info("Guest player created")
	config.JSON(w, http.StatusCreated, GuestResponse{
		Token:     token,
		PlayerID:  claims.UserID,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
