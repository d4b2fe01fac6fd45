package domain

import "errors"

// Sentinel errors surfaced by the stores. Validation and not-found
// conditions are explicit failure signals; persistence failures are not
// errors from the caller's point of view (they are logged and the
// in-memory state remains authoritative).
var (
	ErrMealNotFound    = errors.New("meal not found")
	ErrFoodNotFound    = errors.New("food not found")
	ErrEmptyMealName   = errors.New("meal name is required")
	ErrNoFoodLines     = errors.New("meal must contain at least one food line")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidMealType = errors.New("unknown meal type")
)
