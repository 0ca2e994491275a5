package workouts

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dvukovic/trainlog/internal/routines"
	"github.com/dvukovic/trainlog/internal/telemetry/tracing"
	"github.com/dvukovic/trainlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type routinesDirectory interface {
	ListForUser(ctx context.Context, userID string) ([]routines.Routine, error)
	ListExercises(ctx context.Context, routineID int64) ([]routines.Exercise, error)
}

const (
	noWeightMarker = "no weight"
	maxNotesLength = 20
)

type HistorySet struct {
	ID     int64  `json:"id"`
	Num    int    `json:"num"`
	Reps   int    `json:"reps"`
	Weight string `json:"weight"`
	Effort string `json:"effort"`
	Notes  string `json:"notes"`
}

type HistoryExercise struct {
	Label string       `json:"label"`
	Sets  []HistorySet `json:"sets"`
}

type HistoryDay struct {
	Date      string            `json:"date"`
	Exercises []HistoryExercise `json:"exercises"`
}

type RoutineHistory struct {
	RoutineID   int64            `json:"routineId"`
	RoutineName string           `json:"routineName"`
	DayName     routines.Weekday `json:"dayName"`
	Days        []HistoryDay     `json:"days"`
}

type History struct {
	Routines []RoutineHistory `json:"routines"`
}

type Stats struct {
	TotalWorkouts      int            `json:"totalWorkouts"`
	TotalSets          int            `json:"totalSets"`
	TotalReps          int            `json:"totalReps"`
	TotalVolume        float64        `json:"totalVolume"`
	TotalVolumeDisplay string         `json:"totalVolumeDisplay"`
	ByMuscleGroup      map[string]int `json:"byMuscleGroup"`
	ByEffortLevel      map[string]int `json:"byEffortLevel"`
}

type ExerciseStats struct {
	Exercise      string  `json:"exercise"`
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalSets     int     `json:"totalSets"`
	TotalReps     int     `json:"totalReps"`
	MaxWeight     float64 `json:"maxWeight"`
	AvgWeight     float64 `json:"avgWeight"`
}

// Analyzer builds the history and statistics views over the raw
// workout rows. Malformed rows (no reps or no timestamp) are
// silently dropped instead of failing the whole view.
type Analyzer struct {
	repo      workoutsRepo
	directory routinesDirectory
}

func NewAnalyzer(repo workoutsRepo, directory routinesDirectory) *Analyzer {
	return &Analyzer{
		repo:      repo,
		directory: directory,
	}
}

// History groups the user workout rows routine by routine, then by
// calendar day (newest first), then by exercise. Rows logged outside
// any routine are not part of the grouped view.
func (a *Analyzer) History(ctx context.Context, userID string) (_ *History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.analyzer.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := a.repo.ListForUser(ctx, userID, DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	userRoutines, err := a.directory.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	exercisesByRoutine := make(map[int64][]routines.Exercise, len(userRoutines))
	for _, routine := range userRoutines {
		exercises, err := a.directory.ListExercises(ctx, routine.ID)
		if err != nil {
			return nil, fmt.Errorf("list exercises for routine %d: %w", routine.ID, err)
		}
		exercisesByRoutine[routine.ID] = exercises
	}

	return buildHistory(rows, userRoutines, exercisesByRoutine), nil
}

func (a *Analyzer) Stats(ctx context.Context, userID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.analyzer.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := a.repo.ListForUser(ctx, userID, DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return computeStats(rows), nil
}

func (a *Analyzer) ExerciseStats(ctx context.Context, userID, exerciseName string) (_ *ExerciseStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.analyzer.exerciseStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := pkg.NormalizeName(exerciseName)
	rows, err := a.repo.ListForExercise(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("list workouts for exercise: %w", err)
	}

	return computeExerciseStats(name, rows), nil
}

// exerciseKey is the tagged grouping identity of a history row:
// newer rows key by the routine exercise id, legacy rows fall back
// to the raw exercise name.
type exerciseKey struct {
	byID   int64
	byName string
}

func keyForRow(row *Workout) exerciseKey {
	if row.RoutineExerciseID != nil {
		return exerciseKey{byID: *row.RoutineExerciseID}
	}
	return exerciseKey{byName: row.ExerciseName}
}

func buildHistory(
	rows []Workout,
	userRoutines []routines.Routine,
	exercisesByRoutine map[int64][]routines.Exercise,
) *History {
	exerciseNamesByID := map[int64]string{}
	for _, exercises := range exercisesByRoutine {
		for _, exercise := range exercises {
			exerciseNamesByID[exercise.ID] = exercise.Name
		}
	}

	// routine id -> date -> exercise key -> set rows
	grouped := map[int64]map[string]map[exerciseKey][]HistorySet{}
	// keep first-seen orderings, maps alone would scramble them
	dayOrder := map[int64][]string{}
	exerciseOrder := map[int64]map[string][]exerciseKey{}
	labels := map[exerciseKey]string{}

	for i := range rows {
		row := &rows[i]
		if !row.wellFormed() {
			continue
		}
		if row.RoutineID == nil {
			continue
		}

		routineID := *row.RoutineID
		date := row.Date.Format("2006-01-02")
		key := keyForRow(row)

		if grouped[routineID] == nil {
			grouped[routineID] = map[string]map[exerciseKey][]HistorySet{}
			dayOrder[routineID] = nil
			exerciseOrder[routineID] = map[string][]exerciseKey{}
		}
		if grouped[routineID][date] == nil {
			grouped[routineID][date] = map[exerciseKey][]HistorySet{}
			dayOrder[routineID] = append(dayOrder[routineID], date)
		}
		if _, seen := grouped[routineID][date][key]; !seen {
			exerciseOrder[routineID][date] = append(exerciseOrder[routineID][date], key)
		}

		if _, ok := labels[key]; !ok {
			labelName := row.ExerciseName
			if row.RoutineExerciseID != nil {
				if stored, ok := exerciseNamesByID[*row.RoutineExerciseID]; ok {
					labelName = stored
				}
			}
			labels[key] = pkg.DisplayName(labelName)
		}

		sets := grouped[routineID][date][key]
		grouped[routineID][date][key] = append(sets, HistorySet{
			ID:     row.ID,
			Num:    len(sets) + 1,
			Reps:   *row.Reps,
			Weight: weightLabel(row.Weight),
			Effort: row.Effort,
			Notes:  truncateNotes(row.Notes),
		})
	}

	history := &History{Routines: make([]RoutineHistory, 0, len(grouped))}
	for _, routine := range userRoutines {
		days, ok := grouped[routine.ID]
		if !ok {
			continue
		}

		dates := dayOrder[routine.ID]
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))

		routineHistory := RoutineHistory{
			RoutineID:   routine.ID,
			RoutineName: pkg.DisplayName(routine.Name),
			DayName:     routine.DayName,
			Days:        make([]HistoryDay, 0, len(days)),
		}
		for _, date := range dates {
			day := HistoryDay{Date: date}
			for _, key := range exerciseOrder[routine.ID][date] {
				day.Exercises = append(day.Exercises, HistoryExercise{
					Label: labels[key],
					Sets:  days[date][key],
				})
			}
			routineHistory.Days = append(routineHistory.Days, day)
		}

		history.Routines = append(history.Routines, routineHistory)
	}

	return history
}

func computeStats(rows []Workout) *Stats {
	stats := &Stats{
		ByMuscleGroup: map[string]int{},
		ByEffortLevel: map[string]int{},
	}

	for i := range rows {
		row := &rows[i]
		if !row.wellFormed() {
			continue
		}

		sets := intOrZero(row.Sets)
		reps := intOrZero(row.Reps)
		weight := floatOrZero(row.Weight)

		stats.TotalWorkouts++
		stats.TotalSets += sets
		stats.TotalReps += sets * reps
		stats.TotalVolume += float64(sets*reps) * weight

		if row.TargetMuscle != "" {
			stats.ByMuscleGroup[row.TargetMuscle]++
		}
		if row.Effort != "" {
			stats.ByEffortLevel[row.Effort]++
		}
	}

	stats.TotalVolumeDisplay = message.NewPrinter(language.English).Sprintf("%.0f", stats.TotalVolume)

	return stats
}

func computeExerciseStats(name string, rows []Workout) *ExerciseStats {
	stats := &ExerciseStats{Exercise: name}

	var weightSum float64
	var weighed int
	for i := range rows {
		row := &rows[i]
		if !row.wellFormed() {
			continue
		}

		sets := intOrZero(row.Sets)
		stats.TotalWorkouts++
		stats.TotalSets += sets
		stats.TotalReps += sets * intOrZero(row.Reps)

		if row.Weight != nil {
			weightSum += *row.Weight
			weighed++
			if *row.Weight > stats.MaxWeight {
				stats.MaxWeight = *row.Weight
			}
		}
	}

	if weighed > 0 {
		stats.AvgWeight = weightSum / float64(weighed)
	}

	return stats
}

func weightLabel(weight *float64) string {
	if weight == nil || *weight == 0 {
		return noWeightMarker
	}
	return strconv.FormatFloat(*weight, 'f', -1, 64)
}

func truncateNotes(notes string) string {
	runes := []rune(notes)
	if len(runes) <= maxNotesLength {
		return notes
	}
	return string(runes[:maxNotesLength]) + "..."
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
