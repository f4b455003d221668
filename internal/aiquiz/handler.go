package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary      Generate practice questions with Gemini
// @Tags         ai-quiz
// @Accept       json
// @Produce      json
// @Param        body  body      QuestionRequest  true  "topic, difficulty and count"
// @Success      201   {object}  QuestionResponse
// @Failure      400   {object}  map[string]string
// @Router       /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingTopic):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrProviderUnavailable):
			config.Error(w, http.StatusServiceUnavailable, err.Error())
		default:
			log.WithError(err).Error("Failed to generate questions")
			config.Error(w, http.StatusBadGateway, "failed to generate questions")
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}
