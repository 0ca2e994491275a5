package routines

import "time"

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays returns all schedulable days, Monday first.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

type MuscleGroup string

const (
	Chest     MuscleGroup = "Chest"
	Back      MuscleGroup = "Back"
	Shoulders MuscleGroup = "Shoulders"
	Biceps    MuscleGroup = "Biceps"
	Triceps   MuscleGroup = "Triceps"
	Legs      MuscleGroup = "Legs"
	Abs       MuscleGroup = "Abs"
	Glutes    MuscleGroup = "Glutes"
	Calves    MuscleGroup = "Calves"
	Forearms  MuscleGroup = "Forearms"
)

func MuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		Chest, Back, Shoulders, Biceps, Triceps,
		Legs, Abs, Glutes, Calves, Forearms,
	}
}

func (m MuscleGroup) IsValid() bool {
	switch m {
	case Chest, Back, Shoulders, Biceps, Triceps, Legs, Abs, Glutes, Calves, Forearms:
		return true
	}
	return false
}

// Routine is a named workout plan scheduled on a weekday.
// A user can have at most one routine per weekday.
type Routine struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	DayName     Weekday   `json:"dayName"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Exercise is a planned exercise slot inside a routine. Name is
// stored normalized, per-routine unique.
type Exercise struct {
	ID           int64       `json:"id"`
	RoutineID    int64       `json:"routineId"`
	Name         string      `json:"name"`
	TargetMuscle MuscleGroup `json:"targetMuscle"`
	Sets         int         `json:"sets"`
	OrderNum     int         `json:"orderNum"`
	CreatedAt    time.Time   `json:"createdAt"`
}
