package domain

import "context"

// NotificationSettings configure per-meal-type logging reminders. Times are
// local "HH:MM" strings.
type NotificationSettings struct {
	Enabled       map[MealType]bool   `json:"perMealType"`
	ReminderTimes map[MealType]string `json:"reminderTimes"`
}

// Notifier is the port for delivering a user-visible alert.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
