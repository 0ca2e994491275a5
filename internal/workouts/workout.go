package workouts

import "time"

type Effort string

const (
	EffortEasy   Effort = "Easy"
	EffortMedium Effort = "Medium"
	EffortHard   Effort = "Hard"

	// DefaultEffort is assumed when a set comes in without a label
	DefaultEffort = EffortMedium
)

func Efforts() []Effort {
	return []Effort{EffortEasy, EffortMedium, EffortHard}
}

func (e Effort) IsValid() bool {
	switch e {
	case EffortEasy, EffortMedium, EffortHard:
		return true
	}
	return false
}

// Workout is one persisted completed set. Most columns are nullable
// so legacy and malformed rows can still be read back, the aggregators
// filter them out instead of failing.
type Workout struct {
	ID                int64       `json:"id"`
	UserID            string      `json:"userId"`
	Date              *time.Time  `json:"date,omitempty"`
	RoutineID         *int64      `json:"routineId,omitempty"`
	RoutineExerciseID *int64      `json:"routineExerciseId,omitempty"`
	ExerciseName      string      `json:"exerciseName"`
	TargetMuscle      string      `json:"targetMuscle"`
	Sets              *int        `json:"sets,omitempty"`
	Reps              *int        `json:"reps,omitempty"`
	Weight            *float64    `json:"weight,omitempty"`
	Notes             string      `json:"notes"`
	Effort            string      `json:"effort"`
}

// wellFormed tells whether the row counts as a real logged set.
// Rows missing reps or a timestamp are legacy noise.
func (w *Workout) wellFormed() bool {
	return w.Reps != nil && w.Date != nil
}
