// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"nutritrack/internal/domain"
)

// LineInput references a catalog food by ID with a quantity in that food's
// unit. The service derives the line's nutrient amounts from the catalog.
type LineInput struct {
	FoodID   string
	Quantity float64
}

// MealUpdate carries the fields of a meal to change. Nil fields are left
// untouched. Setting Lines rebuilds the food lines and recomputes totals.
type MealUpdate struct {
	Name  *string
	Type  *domain.MealType
	Date  *time.Time
	Lines []LineInput
}

// MealService owns the logged meals and the food catalog. The in-memory
// state is the source of truth for the running session; every mutation is
// written through to the record store best-effort.
type MealService struct {
	store domain.RecordStore
	log   *zap.Logger

	mu    sync.Mutex
	meals []domain.Meal
	foods []domain.Food
}

// NewMealService creates a MealService rehydrated from the meal record.
// An absent record is not an error; the store starts empty.
func NewMealService(ctx context.Context, store domain.RecordStore, log *zap.Logger) (*MealService, error) {
	s := &MealService{store: store, log: log}

	var rec domain.MealRecord
	ok, err := store.Load(ctx, domain.MealRecordName, &rec)
	if err != nil {
		return nil, fmt.Errorf("rehydrate meal record: %w", err)
	}
	if ok {
		s.meals = rec.Meals
		s.foods = rec.Foods
	}
	return s, nil
}

// InitializeFoods seeds the food catalog exactly once. Calling it when the
// catalog is already non-empty is a no-op.
func (s *MealService) InitializeFoods(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.foods) > 0 {
		return
	}
	s.foods = seedFoods()
	s.log.Info("food catalog seeded", zap.Int("count", len(s.foods)))
	s.persistLocked(ctx)
}

// Foods returns a copy of the food catalog.
func (s *MealService) Foods() []domain.Food {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Food, len(s.foods))
	copy(out, s.foods)
	return out
}

// FoodByID looks up a catalog entry.
func (s *MealService) FoodByID(id string) (domain.Food, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foodByIDLocked(id)
}

func (s *MealService) foodByIDLocked(id string) (domain.Food, bool) {
	for _, f := range s.foods {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Food{}, false
}

// buildLinesLocked resolves line inputs against the catalog and derives
// each line's nutrient snapshot from the food's per-unit values.
func (s *MealService) buildLinesLocked(inputs []LineInput) ([]domain.MealLine, error) {
	lines := make([]domain.MealLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: food %q quantity %v", domain.ErrInvalidQuantity, in.FoodID, in.Quantity)
		}
		food, ok := s.foodByIDLocked(in.FoodID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrFoodNotFound, in.FoodID)
		}
		lines = append(lines, domain.MealLine{
			Food:      food,
			Quantity:  in.Quantity,
			Nutrients: food.NutrientsFor(in.Quantity),
		})
	}
	return lines, nil
}

// AddMeal validates and logs a new meal, with totals derived from its
// lines, and writes the meal record through.
func (s *MealService) AddMeal(ctx context.Context, userID, name string, mealType domain.MealType, date time.Time, lines []LineInput) (*domain.Meal, error) {
	if name == "" {
		return nil, domain.ErrEmptyMealName
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoFoodLines
	}
	if !mealType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMealType, mealType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	built, err := s.buildLinesLocked(lines)
	if err != nil {
		return nil, err
	}

	meal := domain.Meal{
		ID:        newID(),
		UserID:    userID,
		Name:      name,
		Type:      mealType,
		Foods:     built,
		Totals:    domain.SumLines(built),
		Date:      date,
		CreatedAt: time.Now(),
	}
	s.meals = append(s.meals, meal)
	s.persistLocked(ctx)

	out := meal
	return &out, nil
}

// UpdateMeal merges the given fields into an existing meal. When lines
// change, totals are recomputed before the meal becomes observable or is
// persisted; lines and totals never disagree.
func (s *MealService) UpdateMeal(ctx context.Context, id string, upd MealUpdate) (*domain.Meal, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, domain.ErrEmptyMealName
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMealType, *upd.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.meals {
		if s.meals[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", domain.ErrMealNotFound, id)
	}

	meal := s.meals[idx]
	if upd.Name != nil {
		meal.Name = *upd.Name
	}
	if upd.Type != nil {
		meal.Type = *upd.Type
	}
	if upd.Date != nil {
		meal.Date = *upd.Date
	}
	if upd.Lines != nil {
		if len(upd.Lines) == 0 {
			return nil, domain.ErrNoFoodLines
		}
		built, err := s.buildLinesLocked(upd.Lines)
		if err != nil {
			return nil, err
		}
		meal.Foods = built
		meal.Totals = domain.SumLines(built)
	}

	s.meals[idx] = meal
	s.persistLocked(ctx)

	out := meal
	return &out, nil
}

// DeleteMeal removes the meal with the given ID. Deleting an unknown ID is
// a no-op, not an error.
func (s *MealService) DeleteMeal(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meals {
		if s.meals[i].ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// Meals returns a copy of all logged meals in insertion order.
func (s *MealService) Meals() []domain.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// MealsOnDate returns the meals attributed to the same local calendar day
// as date.
func (s *MealService) MealsOnDate(date time.Time) []domain.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Meal
	for _, m := range s.meals {
		if domain.SameLocalDay(m.Date, date) {
			out = append(out, m)
		}
	}
	return out
}

// DailyIntake aggregates the meals attributed to date. Dates with no meals
// yield an all-zero total.
func (s *MealService) DailyIntake(date time.Time) domain.DailyIntake {
	meals := s.MealsOnDate(date)
	var totals domain.Nutrients
	for _, m := range meals {
		totals = totals.Add(m.Totals)
	}
	return domain.DailyIntake{Date: date, Meals: meals, Totals: totals}
}

// WeeklyIntakes returns the daily intakes for the 7 consecutive days ending
// at endDate, oldest first. Each entry is computed independently.
func (s *MealService) WeeklyIntakes(endDate time.Time) []domain.DailyIntake {
	intakes := make([]domain.DailyIntake, 0, 7)
	for i := 6; i >= 0; i-- {
		intakes = append(intakes, s.DailyIntake(endDate.AddDate(0, 0, -i)))
	}
	return intakes
}

// persistLocked writes the meal record through to durable storage. Writes
// are best-effort: a failure is logged and the in-memory mutation stands.
func (s *MealService) persistLocked(ctx context.Context) {
	rec := domain.MealRecord{Meals: s.meals, Foods: s.foods}
	if err := s.store.Save(ctx, domain.MealRecordName, rec); err != nil {
		s.log.Warn("meal record write failed", zap.Error(err))
	}
}
