package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/dvukovic/trainlog/internal/middleware"
	"github.com/dvukovic/trainlog/internal/telemetry/metrics"
	"github.com/dvukovic/trainlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Update(ctx context.Context, workout Workout) error
	Delete(ctx context.Context, id int64, userID string) error
	ListForUser(ctx context.Context, userID string, limit int) ([]Workout, error)
	ListForExercise(ctx context.Context, userID, exerciseName string) ([]Workout, error)
}

type Handler struct {
	repo     workoutsRepo
	logger   *Logger
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	directory routinesDirectory,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		logger:   NewLogger(repo),
		analyzer: NewAnalyzer(repo, directory),
		metrics:  metricsManager,
	}
}

type logSessionRequest struct {
	Entries []SessionEntry `json:"entries"`
}

func (h *Handler) HandleLogSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req logSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("log session, unmarshal json params: %s", err)
		http.Error(w, "log session failed", http.StatusBadRequest)
		return
	}
	if len(req.Entries) == 0 {
		http.Error(w, "no entries", http.StatusBadRequest)
		return
	}

	result, err := h.logger.LogSession(r.Context(), userID, req.Entries)
	if err != nil {
		log.Errorf("log session: %s", err)
		http.Error(w, "log session failed", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterSetsLogged.Add(float64(result.SetsLogged))

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("log session, marshal response: %s", err)
		http.Error(w, "log session failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := DefaultListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	workouts, err := h.repo.ListForUser(r.Context(), userID, limit)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(struct {
		Workouts []Workout `json:"workouts"`
		Total    int       `json:"total"`
	}{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("list workouts, marshal response: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	history, err := h.analyzer.History(r.Context(), userID)
	if err != nil {
		log.Errorf("workouts history: %s", err)
		http.Error(w, "history failed", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("workouts history, marshal response: %s", err)
		http.Error(w, "history failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := h.analyzer.Stats(r.Context(), userID)
	if err != nil {
		log.Errorf("workouts stats: %s", err)
		http.Error(w, "stats failed", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("workouts stats, marshal response: %s", err)
		http.Error(w, "stats failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (h *Handler) HandleExerciseStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseName := vars["name"]
	if exerciseName == "" {
		http.Error(w, "missing exercise name", http.StatusBadRequest)
		return
	}

	stats, err := h.analyzer.ExerciseStats(r.Context(), userID, exerciseName)
	if err != nil {
		log.Errorf("exercise stats for [%s]: %s", exerciseName, err)
		http.Error(w, "exercise stats failed", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("exercise stats, marshal response: %s", err)
		http.Error(w, "exercise stats failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

type updateWorkoutRequest struct {
	ID     int64    `json:"id"`
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
	Notes  string   `json:"notes"`
	Effort string   `json:"effort"`
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req updateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	if req.ID == 0 || req.Reps == nil || *req.Reps < 1 {
		http.Error(w, "invalid workout update", http.StatusBadRequest)
		return
	}
	if req.Effort != "" && !Effort(req.Effort).IsValid() {
		http.Error(w, "invalid effort level", http.StatusBadRequest)
		return
	}

	err := h.repo.Update(r.Context(), Workout{
		ID:     req.ID,
		UserID: userID,
		Reps:   req.Reps,
		Weight: req.Weight,
		Notes:  req.Notes,
		Effort: req.Effort,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout %d: %s", req.ID, err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.JSON, fmt.Sprintf(`{"updated":%d}`, req.ID), http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %d: %s", id, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.JSON, fmt.Sprintf(`{"deleted":%d}`, id), http.StatusOK)
}
