package services

import (
	"testing"

	"github.com/matheuarenivas/Hygieia/models"

	"github.com/stretchr/testify/require"
)

func TestToggleGoalSelectsAndDeselects(t *testing.T) {
	out, err := ToggleGoal(nil, GoalSleepTracking)
	require.NoError(t, err)
	require.Equal(t, []string{GoalSleepTracking}, out)

	out, err = ToggleGoal(out, GoalSleepTracking)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestToggleGoalWeightExclusivity(t *testing.T) {
	out, err := ToggleGoal([]string{GoalWeightLoss}, GoalWeightGain)
	require.NoError(t, err)
	require.Equal(t, []string{GoalWeightGain}, out)

	out, err = ToggleGoal([]string{GoalWeightGain, GoalSleepTracking}, GoalWeightLoss)
	require.NoError(t, err)
	require.Equal(t, []string{GoalSleepTracking, GoalWeightLoss}, out)
}

func TestToggleGoalIndependentTags(t *testing.T) {
	out, err := ToggleGoal([]string{GoalCalorieManagement}, GoalSleepTracking)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{GoalCalorieManagement, GoalSleepTracking}, out)
}

func TestToggleGoalUnknownTag(t *testing.T) {
	selected := []string{GoalWeightLoss}
	out, err := ToggleGoal(selected, "run_marathon")
	require.ErrorIs(t, err, ErrUnknownGoal)
	require.Equal(t, selected, out)
}

func TestParseGoals(t *testing.T) {
	require.Empty(t, ParseGoals(""))
	require.Empty(t, ParseGoals("   "))
	require.Equal(t,
		[]string{GoalWeightLoss, GoalSleepTracking},
		ParseGoals(" weight_loss , sleep_tracking "))
}

func TestToggleUserGoalPersists(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	user.FitnessGoals = GoalWeightLoss
	require.NoError(t, db.Save(&user).Error)

	goals, err := ToggleUserGoal(user.ID, GoalWeightGain)
	require.NoError(t, err)
	require.Equal(t, []string{GoalWeightGain}, goals)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.Equal(t, GoalWeightGain, reloaded.FitnessGoals)
}
