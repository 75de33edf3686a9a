// services/goal_service.go
package services

import (
	"errors"
	"strings"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"
)

// Goal tags offered during onboarding.
const (
	GoalWeightGain        = "weight_gain" // shown as "Muscle gain"
	GoalWeightLoss        = "weight_loss"
	GoalCalorieManagement = "calorie_management"
	GoalSleepTracking     = "sleep_tracking"
)

var GoalCatalog = []string{GoalWeightGain, GoalWeightLoss, GoalCalorieManagement, GoalSleepTracking}

// weight_gain and weight_loss can never be selected together; picking one
// evicts the other. All other tags toggle independently.
var goalConflicts = map[string]string{
	GoalWeightGain: GoalWeightLoss,
	GoalWeightLoss: GoalWeightGain,
}

var ErrUnknownGoal = errors.New("unknown goal tag")

func validGoal(tag string) bool {
	for _, g := range GoalCatalog {
		if g == tag {
			return true
		}
	}
	return false
}

// ToggleGoal applies one tap on a goal card to the current selection.
// Pure; the caller persists the result.
func ToggleGoal(selected []string, tag string) ([]string, error) {
	if !validGoal(tag) {
		return selected, ErrUnknownGoal
	}

	out := make([]string, 0, len(selected)+1)
	found := false
	conflict := goalConflicts[tag]
	for _, g := range selected {
		if g == tag {
			found = true
			continue
		}
		if conflict != "" && g == conflict {
			continue
		}
		out = append(out, g)
	}
	if !found {
		out = append(out, tag)
	}
	return out, nil
}

// ParseGoals splits the comma-joined column on the user row.
func ParseGoals(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// ToggleUserGoal toggles a tag on the stored profile and returns the new
// selection.
func ToggleUserGoal(userID uint, tag string) ([]string, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	goals, err := ToggleGoal(ParseGoals(user.FitnessGoals), tag)
	if err != nil {
		return nil, err
	}

	user.FitnessGoals = strings.Join(goals, ",")
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
