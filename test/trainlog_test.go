package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/dvukovic/trainlog/internal/routines"
	"github.com/dvukovic/trainlog/internal/workouts"
)

func (s *IntegrationTestSuite) TestTrainlogFlow() {
	ctx := context.Background()
	t := s.T()

	// no account, no login
	status, _ := doRequest(ctx, t, "POST", "/a/login", "", map[string]string{
		"username": testUsername,
		"password": testPassword,
	})
	require.Equal(t, http.StatusBadRequest, status)

	doRegister(ctx, t)

	// username taken now
	status, respBytes := doRequest(ctx, t, "POST", "/a/register", "", map[string]string{
		"email":           "other@trainlog.app",
		"username":        testUsername,
		"password":        testPassword,
		"confirmPassword": testPassword,
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, string(respBytes), "taken")

	token := doLogin(ctx, t)

	// protected endpoint without a token
	status, _ = doRequest(ctx, t, "GET", "/routines", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	// create a routine
	status, respBytes = doRequest(ctx, t, "POST", "/routines", token, routines.NewRoutineParams{
		Name:        "Push  DAY",
		DayName:     "Monday",
		Description: "chest and triceps",
	})
	require.Equal(t, http.StatusCreated, status)

	var routine routines.Routine
	require.NoError(t, json.Unmarshal(respBytes, &routine))
	require.Equal(t, "push day", routine.Name)
	require.NotZero(t, routine.ID)

	// second routine on the same day is refused
	status, _ = doRequest(ctx, t, "POST", "/routines", token, routines.NewRoutineParams{
		Name:    "leg day",
		DayName: "Monday",
	})
	require.Equal(t, http.StatusConflict, status)

	// plan two exercises
	benchID := s.addExercise(ctx, token, routine.ID, "Bench Press", "Chest", 3, true)
	squatID := s.addExercise(ctx, token, routine.ID, "Squat", "Legs", 3, true)

	// adding an already planned exercise is a no-op returning the existing slot
	benchAgainID := s.addExercise(ctx, token, routine.ID, " bench   PRESS ", "Chest", 5, false)
	require.Equal(t, benchID, benchAgainID)

	status, respBytes = doRequest(ctx, t, "GET", fmt.Sprintf("/routines/%d/exercises", routine.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	var planned []routines.Exercise
	require.NoError(t, json.Unmarshal(respBytes, &planned))
	require.Len(t, planned, 2)

	// log a session: 2 exercises, 3 sets each
	status, respBytes = doRequest(ctx, t, "POST", "/workouts/session", token, map[string]any{
		"entries": []map[string]any{
			{
				"routineId":         routine.ID,
				"routineExerciseId": benchID,
				"exerciseName":      "bench press",
				"targetMuscle":      "Chest",
				"notes":             "felt strong today, maybe too strong",
				"sets": []map[string]any{
					{"reps": 10, "weight": 60, "effort": "Medium"},
					{"reps": 8, "weight": 70, "effort": "Hard"},
					{"reps": 6, "weight": 75, "effort": "Hard"},
				},
			},
			{
				"routineId":         routine.ID,
				"routineExerciseId": squatID,
				"exerciseName":      "squat",
				"targetMuscle":      "Legs",
				"sets": []map[string]any{
					{"reps": 12, "weight": 80, "effort": "Easy"},
					{"reps": 10, "weight": 90, "effort": "Medium"},
					{"reps": 8, "weight": 100, "effort": "Hard"},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, status)

	var logged workouts.SessionResult
	require.NoError(t, json.Unmarshal(respBytes, &logged))
	require.Equal(t, 6, logged.SetsLogged)
	require.Equal(t, 2, logged.Exercises)

	// history groups the whole session under one routine and one day
	status, respBytes = doRequest(ctx, t, "GET", "/workouts/history", token, nil)
	require.Equal(t, http.StatusOK, status)

	var history workouts.History
	require.NoError(t, json.Unmarshal(respBytes, &history))
	require.Len(t, history.Routines, 1)
	require.Equal(t, routine.ID, history.Routines[0].RoutineID)
	require.Len(t, history.Routines[0].Days, 1)

	// rows read back newest first, so the squat sets logged last
	// come out as the first exercise bucket
	day := history.Routines[0].Days[0]
	require.Len(t, day.Exercises, 2)
	require.Equal(t, "Squat", day.Exercises[0].Label)
	require.Equal(t, "Bench Press", day.Exercises[1].Label)
	require.Len(t, day.Exercises[0].Sets, 3)
	require.Len(t, day.Exercises[1].Sets, 3)
	require.Equal(t, "felt strong today, m...", day.Exercises[1].Sets[0].Notes)

	// statistics over the logged session
	status, respBytes = doRequest(ctx, t, "GET", "/workouts/stats", token, nil)
	require.Equal(t, http.StatusOK, status)

	var stats workouts.Stats
	require.NoError(t, json.Unmarshal(respBytes, &stats))
	require.Equal(t, 6, stats.TotalWorkouts)
	require.Equal(t, 6, stats.TotalSets)
	require.Equal(t, 54, stats.TotalReps)
	// 10*60 + 8*70 + 6*75 + 12*80 + 10*90 + 8*100 = 4270
	require.Equal(t, 4270.0, stats.TotalVolume)
	require.Equal(t, "4,270", stats.TotalVolumeDisplay)
	require.Equal(t, map[string]int{"Chest": 3, "Legs": 3}, stats.ByMuscleGroup)

	// per exercise stats
	status, respBytes = doRequest(ctx, t, "GET", "/workouts/stats/exercise/squat", token, nil)
	require.Equal(t, http.StatusOK, status)

	var squatStats workouts.ExerciseStats
	require.NoError(t, json.Unmarshal(respBytes, &squatStats))
	require.Equal(t, 3, squatStats.TotalWorkouts)
	require.Equal(t, 100.0, squatStats.MaxWeight)

	// delete one logged set and it stops counting
	deleteID := day.Exercises[1].Sets[0].ID
	status, _ = doRequest(ctx, t, "DELETE", fmt.Sprintf("/workouts/%d", deleteID), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, respBytes = doRequest(ctx, t, "GET", "/workouts/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(respBytes, &stats))
	require.Equal(t, 5, stats.TotalWorkouts)

	// logout kills the session; the login checker cache can hold the
	// token for up to a minute, so only the logout result is asserted
	status, _ = doRequest(ctx, t, "GET", "/a/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doRequest(ctx, t, "GET", "/a/logout", token, nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) addExercise(
	ctx context.Context,
	token string,
	routineID int64,
	name, muscle string,
	sets int,
	expectCreated bool,
) int64 {
	t := s.T()

	expectedStatus := http.StatusOK
	if expectCreated {
		expectedStatus = http.StatusCreated
	}

	status, respBytes := doRequest(ctx, t, "POST",
		fmt.Sprintf("/routines/%d/exercises", routineID), token,
		routines.NewExerciseParams{
			Name:         name,
			TargetMuscle: muscle,
			Sets:         sets,
		},
	)
	require.Equal(t, expectedStatus, status, string(respBytes))

	var resp struct {
		Exercise routines.Exercise `json:"exercise"`
		Created  bool              `json:"created"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &resp))
	require.Equal(t, expectCreated, resp.Created)

	return resp.Exercise.ID
}
