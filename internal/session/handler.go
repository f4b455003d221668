package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/chronos-quiz/internal/auth"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type Handler struct {
	service SessionService
}

func NewHandler(s SessionService) *Handler {
	return &Handler{service: s}
}

func playerID(r *http.Request) (string, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

// writeError maps session errors to HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrNoActiveSession):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrSessionFinished), errors.Is(err, ErrSessionInProgress):
		config.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrWeekRequired),
		errors.Is(err, ErrMissingPlayer),
		errors.Is(err, quiz.ErrInvalidWeekIndex),
		errors.Is(err, quiz.ErrInvalidOptionIndex),
		errors.Is(err, quiz.ErrInvalidMode),
		errors.Is(err, quiz.ErrEmptyQuestionSet):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quiz.ErrNoQuestionBank):
		log.WithError(err).Error("Question bank unavailable")
		config.Error(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.WithError(err).Error("Unexpected session error")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// Start godoc
// @Summary      Start a quiz session
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      StartRequest  true  "mode and week"
// @Success      201   {object}  SnapshotDTO
// @Failure      400   {object}  map[string]string
// @Router       /session [post]
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	player, ok := playerID(r)
	if !ok {
		log.Warn("Unauthenticated player tried to start a session")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid start session body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.service.Start(r.Context(), player, req.Mode, req.Week)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, ToSnapshotDTO(snap))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snap, err := h.service.Snapshot(r.Context(), player)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ToSnapshotDTO(snap))
}

// Answer godoc
// @Summary      Select an option for the current question
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerRequest  true  "option index"
// @Success      200   {object}  AnswerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /session/answer [post]
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == nil {
		log.WithError(err).Warn("Invalid answer body")
		config.Error(w, http.StatusBadRequest, "option is required")
		return
	}

	fb, snap, err := h.service.Answer(r.Context(), player, *req.Option)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, AnswerResponse{Feedback: fb, Session: ToSnapshotDTO(snap)})
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snap, err := h.service.Advance(r.Context(), player)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ToSnapshotDTO(snap))
}

func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snap, err := h.service.Retreat(r.Context(), player)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ToSnapshotDTO(snap))
}

// Result godoc
// @Summary      Score, percentage and grade of the current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  quiz.Result
// @Failure      404  {object}  map[string]string
// @Router       /session/result [get]
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	res, err := h.service.Result(r.Context(), player)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rows, err := h.service.Review(r.Context(), player)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	player, ok := playerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Discard(r.Context(), player); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
