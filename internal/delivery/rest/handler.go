package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hammoud/theory-exam/internal/domain/entities"
	"github.com/hammoud/theory-exam/internal/service"
	"github.com/hammoud/theory-exam/internal/storage"
)

var ErrBadRequest = errors.New("bad request")

// Handler serves attempts to browser clients. Attempts are keyed by a random
// UUID handed out on creation.
type Handler struct {
	logger         *zap.Logger
	examService    ExamService
	contactService ContactService
	attempts       AttemptStore
}

func NewHandler(logger *zap.Logger, examService ExamService, contactService ContactService, attempts AttemptStore) *Handler {
	return &Handler{
		logger:         logger,
		examService:    examService,
		contactService: contactService,
		attempts:       attempts,
	}
}

// attemptResponse carries the current question while the attempt runs and
// the result once it is finished.
type attemptResponse struct {
	ID       string                 `json:"id"`
	Finished bool                   `json:"finished"`
	Question *entities.QuestionView `json:"question,omitempty"`
	Result   *entities.Result       `json:"result,omitempty"`
}

type selectRequest struct {
	Index *int `json:"index"`
}

type contactResponse struct {
	School string `json:"school"`
	Phone  string `json:"phone"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateAttempt handles POST /api/attempts.
func (h *Handler) CreateAttempt(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.examService.Start(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	id := uuid.NewString()
	h.attempts.Store(attemptKey(id), attempt)
	h.logger.Info("attempt started",
		zap.String("attempt_id", id),
		zap.Int("questions", attempt.Total()),
	)

	h.respondAttempt(w, http.StatusCreated, id, attempt)
}

// GetAttempt handles GET /api/attempts/{attemptID}.
func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, ok := attemptID(r)
	if !ok {
		h.respondError(w, storage.ErrAttemptNotFound)
		return
	}

	attempt, found := h.attempts.Get(attemptKey(id))
	if !found {
		h.respondError(w, storage.ErrAttemptNotFound)
		return
	}

	h.respondAttempt(w, http.StatusOK, id, attempt)
}

// Select handles POST /api/attempts/{attemptID}/select with {"index": n}.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
		h.respondError(w, ErrBadRequest)
		return
	}

	idx := *req.Index
	h.transition(w, r, func(a entities.Attempt) (entities.Attempt, error) {
		return service.Select(a, idx)
	})
}

// Confirm handles POST /api/attempts/{attemptID}/confirm.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, service.Confirm)
}

// Advance handles POST /api/attempts/{attemptID}/advance.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, service.Advance)
}

// Restart handles POST /api/attempts/{attemptID}/restart. The id is kept and
// the attempt behind it is replaced by a fresh sample.
func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	id, ok := attemptID(r)
	if !ok {
		h.respondError(w, storage.ErrAttemptNotFound)
		return
	}
	if _, found := h.attempts.Get(attemptKey(id)); !found {
		h.respondError(w, storage.ErrAttemptNotFound)
		return
	}

	attempt, err := h.examService.Start(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.attempts.Store(attemptKey(id), attempt)
	h.logger.Info("attempt restarted", zap.String("attempt_id", id))

	h.respondAttempt(w, http.StatusOK, id, attempt)
}

// Contact handles GET /api/contact.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, contactResponse{
		School: h.contactService.School(),
		Phone:  h.contactService.Phone(r.Context()),
	})
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(entities.Attempt) (entities.Attempt, error)) {
	id, ok := attemptID(r)
	if !ok {
		h.respondError(w, storage.ErrAttemptNotFound)
		return
	}

	attempt, err := h.attempts.Update(attemptKey(id), fn)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if attempt.Finished {
		h.logger.Info("attempt finished",
			zap.String("attempt_id", id),
			zap.Int("score", attempt.Score),
		)
	}

	h.respondAttempt(w, http.StatusOK, id, attempt)
}

func (h *Handler) respondAttempt(w http.ResponseWriter, status int, id string, attempt entities.Attempt) {
	resp := attemptResponse{ID: id, Finished: attempt.Finished}

	if attempt.Finished {
		res, err := h.examService.Result(attempt)
		if err != nil {
			h.respondError(w, err)
			return
		}
		resp.Result = &res
	} else {
		view, err := service.Present(attempt)
		if err != nil {
			h.respondError(w, err)
			return
		}
		resp.Question = &view
	}

	writeJSON(w, status, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidChoice):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoSelection),
		errors.Is(err, service.ErrAlreadyLocked),
		errors.Is(err, service.ErrNotLocked),
		errors.Is(err, service.ErrAttemptFinished):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyAttempt):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// attemptID reads the attempt id from the URL. Anything that is not a UUID
// cannot name an attempt.
func attemptID(r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func attemptKey(id string) string {
	return "web:" + id
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
