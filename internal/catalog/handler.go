package catalog

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type Handler struct {
	service CatalogService
}

func NewHandler(s CatalogService) *Handler {
	return &Handler{service: s}
}

// ListWeeks godoc
// @Summary      List the weeks available for weekly practice
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  Catalog
// @Failure      503  {object}  map[string]string
// @Router       /weeks [get]
func (h *Handler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, quiz.ErrNoQuestionBank) {
			config.Error(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Failed to list weeks")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, c)
}
