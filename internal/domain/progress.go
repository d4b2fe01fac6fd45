package domain

// GoalProgress is one nutrient's standing against its daily target.
type GoalProgress struct {
	Nutrient string  `json:"nutrient"`
	Unit     string  `json:"unit"`
	Current  float64 `json:"current"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// ProgressAgainst compares an intake against daily goals, one entry per
// tracked nutrient. Percent is uncapped; a zero goal yields zero percent.
func ProgressAgainst(intake Nutrients, goals NutritionGoals) []GoalProgress {
	entry := func(name, unit string, current, goal float64) GoalProgress {
		p := GoalProgress{Nutrient: name, Unit: unit, Current: current, Goal: goal}
		if goal > 0 {
			p.Percent = current / goal * 100
		}
		return p
	}
	return []GoalProgress{
		entry("Calories", "kcal", intake.Calories, goals.Calories),
		entry("Protein", "g", intake.Protein, goals.Protein),
		entry("Carbs", "g", intake.Carbs, goals.Carbs),
		entry("Fat", "g", intake.Fat, goals.Fat),
	}
}
