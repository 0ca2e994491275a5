package workouts

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dvukovic/trainlog/internal/telemetry/tracing"
	"github.com/dvukovic/trainlog/pkg"
)

type SetEntry struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Effort string  `json:"effort"`
}

type SessionEntry struct {
	RoutineID         *int64     `json:"routineId,omitempty"`
	RoutineExerciseID *int64     `json:"routineExerciseId,omitempty"`
	ExerciseName      string     `json:"exerciseName"`
	TargetMuscle      string     `json:"targetMuscle"`
	Notes             string     `json:"notes"`
	Sets              []SetEntry `json:"sets"`
}

type SessionResult struct {
	SetsLogged int `json:"setsLogged"`
	Exercises  int `json:"exercises"`
}

// Logger fans a logged session out into one workout row per
// completed set. Inserts are independent and best effort, a failed
// set does not abort the rest of the session.
type Logger struct {
	repo workoutsRepo

	// NowFunc can be swapped in tests for deterministic timestamps
	NowFunc func() time.Time
}

func NewLogger(repo workoutsRepo) *Logger {
	return &Logger{
		repo:    repo,
		NowFunc: time.Now,
	}
}

func (l *Logger) LogSession(ctx context.Context, userID string, entries []SessionEntry) (_ SessionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.logger.logSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	result := SessionResult{
		Exercises: len(entries),
	}

	now := l.NowFunc()
	for _, entry := range entries {
		exerciseName := pkg.NormalizeName(entry.ExerciseName)
		for _, set := range entry.Sets {
			if set.Reps < 1 {
				log.Warnf("log session, user %s, exercise [%s]: skipping set with reps %d", userID, exerciseName, set.Reps)
				continue
			}

			effort := Effort(set.Effort)
			if !effort.IsValid() {
				effort = DefaultEffort
			}

			date := now
			reps := set.Reps
			weight := set.Weight
			sets := 1
			workout := Workout{
				UserID:            userID,
				Date:              &date,
				RoutineID:         entry.RoutineID,
				RoutineExerciseID: entry.RoutineExerciseID,
				ExerciseName:      exerciseName,
				TargetMuscle:      entry.TargetMuscle,
				Sets:              &sets,
				Reps:              &reps,
				Weight:            &weight,
				Notes:             entry.Notes,
				Effort:            string(effort),
			}

			if _, err := l.repo.Add(ctx, workout); err != nil {
				log.Errorf("log session, user %s, exercise [%s]: persist set: %s", userID, exerciseName, err)
				continue
			}
			result.SetsLogged++
		}
	}

	log.Debugf("user %s logged %d sets from %d exercises", userID, result.SetsLogged, result.Exercises)

	return result, nil
}
