package domain

import "time"

// NutritionGoals are the user's daily targets for each tracked nutrient.
type NutritionGoals struct {
	Calories float64 `json:"dailyCalorieGoal"`
	Protein  float64 `json:"dailyProteinGoal"`
	Carbs    float64 `json:"dailyCarbGoal"`
	Fat      float64 `json:"dailyFatGoal"`
}

// DefaultGoals returns the fallback targets used when a profile has no
// explicit goals set.
func DefaultGoals() NutritionGoals {
	return NutritionGoals{Calories: 2000, Protein: 150, Carbs: 250, Fat: 67}
}

// UserProfile is an account record: identity, goals, and preferences.
// Email is unique across the user directory.
type UserProfile struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	PasswordHash       string         `json:"passwordHash,omitempty"`
	DietaryPreferences []string       `json:"dietaryPreferences"`
	Goals              NutritionGoals `json:"goals"`
	CreatedAt          time.Time      `json:"createdAt"`
}
