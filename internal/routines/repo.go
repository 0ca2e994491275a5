package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dvukovic/trainlog/internal/telemetry/tracing"
	"github.com/dvukovic/trainlog/pkg"
)

var (
	ErrRoutineNotFound     = errors.New("routine not found")
	ErrDayAlreadyScheduled = errors.New("a routine is already scheduled for that day")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseExists      = errors.New("exercise already in routine")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO routines
				(user_id, name, day_name, description, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		routine.UserID, routine.Name, routine.DayName, routine.Description, routine.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDayAlreadyScheduled
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDayAlreadyScheduled
		}
		return nil, err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil && pkg.IsUniqueViolationError(err) {
			return nil, ErrDayAlreadyScheduled
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int64("routine.id", id))

	routine.ID = id
	return &routine, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, day_name, description, created_at
			FROM routines
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines, err := r.rows2routines(rows)
	if err != nil {
		return nil, err
	}
	if len(routines) == 0 {
		return nil, ErrRoutineNotFound
	}

	return &routines[0], nil
}

// ListForUser returns the user routines ordered by day name, then by
// id for routines created before the day uniqueness constraint.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, day_name, description, created_at
			FROM routines
			WHERE user_id = $1
			ORDER BY day_name ASC, id ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2routines(rows)
}

func (r *Repo) Delete(ctx context.Context, id int64, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM routines WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO routine_exercises
				(routine_id, exercise_name, target_muscle, sets, order_num, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		exercise.RoutineID, exercise.Name, exercise.TargetMuscle, exercise.Sets, exercise.OrderNum, exercise.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, ErrExerciseExists
			}
			return nil, err
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int64("exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

// ListExercises returns the routine exercises in their planned order,
// id breaking ties between equal order numbers.
func (r *Repo) ListExercises(ctx context.Context, routineID int64) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("routine.id", routineID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, routine_id, exercise_name, target_muscle, sets, order_num, created_at
			FROM routine_exercises
			WHERE routine_id = $1
			ORDER BY order_num ASC, id ASC;`,
		routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2exercises(rows)
}

func (r *Repo) GetExerciseByName(ctx context.Context, routineID int64, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.getExerciseByName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, routine_id, exercise_name, target_muscle, sets, order_num, created_at
			FROM routine_exercises
			WHERE routine_id = $1 AND exercise_name = $2;`,
		routineID, name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

func (r *Repo) rows2routines(rows pgx.Rows) ([]Routine, error) {
	routines := make([]Routine, 0)
	for rows.Next() {
		var routine Routine
		var dayName string
		if err := rows.Scan(
			&routine.ID, &routine.UserID, &routine.Name,
			&dayName, &routine.Description, &routine.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		routine.DayName = Weekday(dayName)
		routines = append(routines, routine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var exercise Exercise
		var targetMuscle string
		if err := rows.Scan(
			&exercise.ID, &exercise.RoutineID, &exercise.Name,
			&targetMuscle, &exercise.Sets, &exercise.OrderNum, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercise.TargetMuscle = MuscleGroup(targetMuscle)
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
