package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dvukovic/trainlog/internal/telemetry/tracing"
	"github.com/dvukovic/trainlog/pkg"
)

var (
	ErrRoutineNameEmpty  = errors.New("routine name must not be empty")
	ErrExerciseNameEmpty = errors.New("exercise name must not be empty")
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrInvalidMuscle     = errors.New("invalid muscle group")
	ErrInvalidSetsCount  = errors.New("sets count must be positive")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routines_test

type routinesRepo interface {
	Add(ctx context.Context, routine Routine) (*Routine, error)
	Get(ctx context.Context, id int64) (*Routine, error)
	ListForUser(ctx context.Context, userID string) ([]Routine, error)
	Delete(ctx context.Context, id int64, userID string) error
	AddExercise(ctx context.Context, exercise Exercise) (*Exercise, error)
	ListExercises(ctx context.Context, routineID int64) ([]Exercise, error)
	GetExerciseByName(ctx context.Context, routineID int64, name string) (*Exercise, error)
}

// Service enforces the routine planning rules on top of the repo:
// one routine per weekday per user, and exercise names kept
// normalized and unique within a routine.
type Service struct {
	repo routinesRepo

	// NowFunc can be swapped in tests for deterministic timestamps
	NowFunc func() time.Time
}

func NewService(repo routinesRepo) *Service {
	return &Service{
		repo:    repo,
		NowFunc: time.Now,
	}
}

type NewRoutineParams struct {
	Name        string `json:"name"`
	DayName     string `json:"dayName"`
	Description string `json:"description"`
}

func (s *Service) CreateRoutine(ctx context.Context, userID string, params NewRoutineParams) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.service.createRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := pkg.NormalizeName(params.Name)
	if name == "" {
		return nil, ErrRoutineNameEmpty
	}
	dayName := Weekday(params.DayName)
	if !dayName.IsValid() {
		return nil, ErrInvalidWeekday
	}

	// pre-read check, the unique index covers the races
	existing, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	for _, routine := range existing {
		if routine.DayName == dayName {
			return nil, ErrDayAlreadyScheduled
		}
	}

	routine, err := s.repo.Add(ctx, Routine{
		UserID:      userID,
		Name:        name,
		DayName:     dayName,
		Description: params.Description,
		CreatedAt:   s.NowFunc(),
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("user %s scheduled routine [%s] on %s", userID, routine.Name, routine.DayName)

	return routine, nil
}

func (s *Service) Routines(ctx context.Context, userID string) ([]Routine, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *Service) DeleteRoutine(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.service.deleteRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Delete(ctx, id, userID)
}

type NewExerciseParams struct {
	Name         string `json:"name"`
	TargetMuscle string `json:"targetMuscle"`
	Sets         int    `json:"sets"`
}

// AddExercise adds an exercise slot to a routine. The operation is
// idempotent on the normalized exercise name: adding an already
// planned exercise returns the existing slot with created == false.
func (s *Service) AddExercise(
	ctx context.Context,
	userID string,
	routineID int64,
	params NewExerciseParams,
) (_ *Exercise, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.service.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := pkg.NormalizeName(params.Name)
	if name == "" {
		return nil, false, ErrExerciseNameEmpty
	}
	targetMuscle := MuscleGroup(params.TargetMuscle)
	if !targetMuscle.IsValid() {
		return nil, false, ErrInvalidMuscle
	}
	if params.Sets <= 0 {
		return nil, false, ErrInvalidSetsCount
	}

	routine, err := s.repo.Get(ctx, routineID)
	if err != nil {
		return nil, false, err
	}
	if routine.UserID != userID {
		return nil, false, ErrRoutineNotFound
	}

	planned, err := s.repo.ListExercises(ctx, routineID)
	if err != nil {
		return nil, false, fmt.Errorf("list exercises: %w", err)
	}
	for i := range planned {
		if planned[i].Name == name {
			return &planned[i], false, nil
		}
	}

	exercise, err := s.repo.AddExercise(ctx, Exercise{
		RoutineID:    routineID,
		Name:         name,
		TargetMuscle: targetMuscle,
		Sets:         params.Sets,
		OrderNum:     len(planned) + 1,
		CreatedAt:    s.NowFunc(),
	})
	if errors.Is(err, ErrExerciseExists) {
		// lost the insert race, somebody planned it in the meantime
		existing, getErr := s.repo.GetExerciseByName(ctx, routineID, name)
		if getErr != nil {
			return nil, false, fmt.Errorf("get existing exercise: %w", getErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return exercise, true, nil
}

func (s *Service) Exercises(ctx context.Context, userID string, routineID int64) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routines.service.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine, err := s.repo.Get(ctx, routineID)
	if err != nil {
		return nil, err
	}
	if routine.UserID != userID {
		return nil, ErrRoutineNotFound
	}

	return s.repo.ListExercises(ctx, routineID)
}
