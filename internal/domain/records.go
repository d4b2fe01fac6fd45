package domain

import "context"

// Durable state is laid out as independent named records, one serialized
// structure per name. The names double as storage keys across backends.
const (
	MealRecordName          = "nutrition-meals"
	UserDirectoryRecordName = "nutrition-users"
	SessionRecordName       = "nutrition-auth"
	NotificationRecordName  = "nutrition-notifications"
)

// MealRecord is the durable form of the meal store: the logged meals plus
// the food catalog.
type MealRecord struct {
	Meals []Meal `json:"meals"`
	Foods []Food `json:"foods"`
}

// UserDirectoryRecord is the durable local user directory.
type UserDirectoryRecord struct {
	Users []UserProfile `json:"users"`
}

// SessionRecord is the durable active session. CurrentUser is nil when
// signed out.
type SessionRecord struct {
	CurrentUser *UserProfile `json:"currentUser,omitempty"`
}

// RecordStore is the port for durable record persistence. Load unmarshals
// the named record into out and reports whether it existed; absence is not
// an error. Save serializes v under name, replacing any previous value.
type RecordStore interface {
	Load(ctx context.Context, name string, out any) (bool, error)
	Save(ctx context.Context, name string, v any) error
}
