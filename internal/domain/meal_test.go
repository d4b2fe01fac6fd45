package domain

import (
	"testing"
	"time"
)

func TestMealTypeValid(t *testing.T) {
	tests := []struct {
		in   MealType
		want bool
	}{
		{Breakfast, true},
		{Lunch, true},
		{Dinner, true},
		{Snack, true},
		{MealType("brunch"), false},
		{MealType(""), false},
	}
	for _, tc := range tests {
		if got := tc.in.Valid(); got != tc.want {
			t.Errorf("Valid(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestSameLocalDay(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different hour", base, base.Add(10 * time.Hour), true},
		{"midnight boundary", base, base.Add(15 * time.Hour), false},
		{"previous day", base, base.AddDate(0, 0, -1), false},
		{"same day next year", base, base.AddDate(1, 0, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameLocalDay(tc.a, tc.b); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestProgressAgainst(t *testing.T) {
	intake := Nutrients{Calories: 1000, Protein: 75, Carbs: 125, Fat: 0}
	goals := NutritionGoals{Calories: 2000, Protein: 150, Carbs: 250, Fat: 0}

	progress := ProgressAgainst(intake, goals)
	if len(progress) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(progress))
	}
	for _, p := range progress[:3] {
		if !almostEqual(p.Percent, 50) {
			t.Errorf("%s: expected 50%%, got %v", p.Nutrient, p.Percent)
		}
	}
	if progress[3].Percent != 0 {
		t.Errorf("zero goal should yield zero percent, got %v", progress[3].Percent)
	}
}
