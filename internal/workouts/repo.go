package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dvukovic/trainlog/internal/telemetry/tracing"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// DefaultListLimit caps unbounded workout list reads.
const DefaultListLimit = 1000

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts
				(user_id, date, routine_id, routine_exercise_id, exercise_name,
				target_muscle, sets, reps, weight, notes, effort_level)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;`,
		workout.UserID, workout.Date, workout.RoutineID, workout.RoutineExerciseID,
		workout.ExerciseName, workout.TargetMuscle, workout.Sets, workout.Reps,
		workout.Weight, workout.Notes, workout.Effort,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int64("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts
			SET reps = $1, weight = $2, notes = $3, effort_level = $4
			WHERE id = $5 AND user_id = $6;`,
		workout.Reps, workout.Weight, workout.Notes, workout.Effort,
		workout.ID, workout.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// ListForUser returns the newest rows first, id breaking the tie for
// rows logged within the same timestamp.
func (r *Repo) ListForUser(ctx context.Context, userID string, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, routine_id, routine_exercise_id, exercise_name,
				target_muscle, sets, reps, weight, notes, effort_level
			FROM workouts
			WHERE user_id = $1
			ORDER BY date DESC NULLS LAST, id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2workouts(rows)
}

func (r *Repo) ListForExercise(ctx context.Context, userID, exerciseName string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", exerciseName))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, routine_id, routine_exercise_id, exercise_name,
				target_muscle, sets, reps, weight, notes, effort_level
			FROM workouts
			WHERE user_id = $1 AND exercise_name = $2
			ORDER BY date DESC NULLS LAST, id DESC;`,
		userID, exerciseName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2workouts(rows)
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	workouts := make([]Workout, 0)
	for rows.Next() {
		var workout Workout
		var exerciseName, targetMuscle, notes, effort *string
		if err := rows.Scan(
			&workout.ID, &workout.UserID, &workout.Date,
			&workout.RoutineID, &workout.RoutineExerciseID,
			&exerciseName, &targetMuscle, &workout.Sets,
			&workout.Reps, &workout.Weight, &notes, &effort,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if exerciseName != nil {
			workout.ExerciseName = *exerciseName
		}
		if targetMuscle != nil {
			workout.TargetMuscle = *targetMuscle
		}
		if notes != nil {
			workout.Notes = *notes
		}
		if effort != nil {
			workout.Effort = *effort
		}
		workouts = append(workouts, workout)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
