package domain

import "time"

// MealType is the fixed category of a logged meal.
type MealType string

// The four meal categories.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists all valid categories in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Valid reports whether t is one of the four meal categories.
func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Meal is a logged eating event. Totals always equal the elementwise sum
// over Foods; Date attributes the meal to a calendar day while CreatedAt is
// only used for ordering and display.
type Meal struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Name      string     `json:"name"`
	Type      MealType   `json:"type"`
	Foods     []MealLine `json:"foods"`
	Totals    Nutrients  `json:"totals"`
	Date      time.Time  `json:"date"`
	CreatedAt time.Time  `json:"createdAt"`
}

// DailyIntake is the derived aggregate of all meals attributed to one
// calendar date. It is computed on demand and never persisted.
type DailyIntake struct {
	Date   time.Time `json:"date"`
	Meals  []Meal    `json:"meals"`
	Totals Nutrients `json:"totals"`
}

// SameLocalDay reports whether a and b fall on the same calendar day in
// local time. Timestamp equality is irrelevant; only the local date counts.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
