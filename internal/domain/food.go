// Package domain contains the core business entities and interfaces.
package domain

// Food is a catalog entry describing nutrient density per unit of a
// consumable item. Foods are immutable once seeded.
type Food struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CaloriesPerUnit float64 `json:"caloriesPerUnit"`
	ProteinPerUnit  float64 `json:"proteinPerUnit"`
	CarbsPerUnit    float64 `json:"carbsPerUnit"`
	FatPerUnit      float64 `json:"fatPerUnit"`
	Unit            string  `json:"unit"` // e.g. "g", "ml", "piece"
}

// Nutrients holds the four tracked nutrient amounts.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the elementwise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// NutrientsFor returns the nutrient amounts for the given quantity of f,
// scaled from its per-unit values.
func (f Food) NutrientsFor(quantity float64) Nutrients {
	return Nutrients{
		Calories: f.CaloriesPerUnit * quantity,
		Protein:  f.ProteinPerUnit * quantity,
		Carbs:    f.CarbsPerUnit * quantity,
		Fat:      f.FatPerUnit * quantity,
	}
}

// MealLine is a quantified reference to a Food within a Meal. The embedded
// nutrient amounts are a snapshot scaled from the food's per-unit values at
// the time the line was built; they are never recomputed retroactively.
type MealLine struct {
	Food     Food    `json:"food"`
	Quantity float64 `json:"quantity"`
	Nutrients
}

// SumLines returns the elementwise sum of the lines' nutrient amounts.
// Every mutation of a meal's lines derives its totals through this one
// function so the totals invariant holds at every call site.
func SumLines(lines []MealLine) Nutrients {
	var total Nutrients
	for _, l := range lines {
		total = total.Add(l.Nutrients)
	}
	return total
}
