package routines

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routinesService interface {
	CreateRoutine(ctx context.Context, userID string, params NewRoutineParams) (*Routine, error)
	Routines(ctx context.Context, userID string) ([]Routine, error)
	DeleteRoutine(ctx context.Context, userID string, id int64) error
	AddExercise(ctx context.Context, userID string, routineID int64, params NewExerciseParams) (*Exercise, bool, error)
	Exercises(ctx context.Context, userID string, routineID int64) ([]Exercise, error)
}

type Handler struct {
	service routinesService
	metrics *metrics.Manager
}

func NewHandler(service routinesService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params NewRoutineParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Warnf("create routine, unmarshal json params: %s", err)
		http.Error(w, "add routine failed", http.StatusBadRequest)
		return
	}

	routine, err := h.service.CreateRoutine(r.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoutineNameEmpty), errors.Is(err, ErrInvalidWeekday):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDayAlreadyScheduled):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("create routine: %s", err)
			http.Error(w, "add routine failed", http.StatusInternalServerError)
		}
		return
	}

	h.metrics.CounterRoutinesCreated.Inc()

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("create routine, marshal response: %s", err)
		http.Error(w, "add routine failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routineJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	routines, err := h.service.Routines(r.Context(), userID)
	if err != nil {
		log.Errorf("list routines: %s", err)
		http.Error(w, "list routines failed", http.StatusInternalServerError)
		return
	}

	routinesJson, err := json.Marshal(routines)
	if err != nil {
		log.Errorf("list routines, marshal response: %s", err)
		http.Error(w, "list routines failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routinesJson)
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
		http.Error(w, "invalid routine id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteRoutine(r.Context(), userID, id); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete routine %d: %s", id, err)
		http.Error(w, "delete routine failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.JSON, fmt.Sprintf(`{"deleted":%d}`, id), http.StatusOK)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	routineID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid routine id", http.StatusBadRequest)
		return
	}

	var params NewExerciseParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Warnf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	exercise, created, err := h.service.AddExercise(r.Context(), userID, routineID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrExerciseNameEmpty),
			errors.Is(err, ErrInvalidMuscle),
			errors.Is(err, ErrInvalidSetsCount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrRoutineNotFound):
			http.Error(w, "routine not found", http.StatusNotFound)
		default:
			log.Errorf("add exercise to routine %d: %s", routineID, err)
			http.Error(w, "add exercise failed", http.StatusInternalServerError)
		}
		return
	}

	respBytes, err := json.Marshal(struct {
		Exercise *Exercise `json:"exercise"`
		Created  bool      `json:"created"`
	}{
		Exercise: exercise,
		Created:  created,
	})
	if err != nil {
		log.Errorf("add exercise, marshal response: %s", err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	routineID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid routine id", http.StatusBadRequest)
		return
	}

	exercises, err := h.service.Exercises(r.Context(), userID, routineID)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("list exercises for routine %d: %s", routineID, err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("list exercises, marshal response: %s", err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}
