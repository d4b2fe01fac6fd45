package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/domain"
)

// mockNotifier collects notifications for testing.
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockNotifier) Notify(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func TestDueMealTypes(t *testing.T) {
	now := time.Date(2026, 5, 10, 8, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		settings domain.NotificationSettings
		want     int
	}{
		{"no settings", domain.NotificationSettings{}, 0},
		{
			"enabled and matching",
			domain.NotificationSettings{
				Enabled:       map[domain.MealType]bool{domain.Breakfast: true},
				ReminderTimes: map[domain.MealType]string{domain.Breakfast: "08:30"},
			},
			1,
		},
		{
			"disabled type does not fire",
			domain.NotificationSettings{
				Enabled:       map[domain.MealType]bool{domain.Breakfast: false},
				ReminderTimes: map[domain.MealType]string{domain.Breakfast: "08:30"},
			},
			0,
		},
		{
			"enabled but different time",
			domain.NotificationSettings{
				Enabled:       map[domain.MealType]bool{domain.Breakfast: true},
				ReminderTimes: map[domain.MealType]string{domain.Breakfast: "12:00"},
			},
			0,
		},
		{
			"two types due at once",
			domain.NotificationSettings{
				Enabled: map[domain.MealType]bool{domain.Breakfast: true, domain.Snack: true},
				ReminderTimes: map[domain.MealType]string{
					domain.Breakfast: "08:30",
					domain.Snack:     "08:30",
				},
			},
			2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DueMealTypes(tc.settings, now); len(got) != tc.want {
				t.Errorf("expected %d due types, got %v", tc.want, got)
			}
		})
	}
}

func TestTickDeduplicatesWithinMinute(t *testing.T) {
	notifier := &mockNotifier{}
	s := New(memory.New(), notifier, zap.NewNop())

	now := time.Date(2026, 5, 10, 12, 15, 0, 0, time.Local)
	s.settings = domain.NotificationSettings{
		Enabled:       map[domain.MealType]bool{domain.Lunch: true},
		ReminderTimes: map[domain.MealType]string{domain.Lunch: "12:15"},
	}

	s.tick(context.Background(), now)
	s.tick(context.Background(), now.Add(10*time.Second))
	if got := notifier.count(); got != 1 {
		t.Fatalf("expected 1 notification within the minute, got %d", got)
	}

	// The next day's occurrence of the same HH:MM fires again.
	s.tick(context.Background(), now.AddDate(0, 0, 1))
	if got := notifier.count(); got != 2 {
		t.Fatalf("expected 2 notifications across days, got %d", got)
	}
}

func TestTickMessage(t *testing.T) {
	notifier := &mockNotifier{}
	s := New(memory.New(), notifier, zap.NewNop())

	now := time.Date(2026, 5, 10, 19, 0, 0, 0, time.Local)
	s.settings = domain.NotificationSettings{
		Enabled:       map[domain.MealType]bool{domain.Dinner: true},
		ReminderTimes: map[domain.MealType]string{domain.Dinner: "19:00"},
	}

	s.tick(context.Background(), now)
	if got := notifier.count(); got != 1 {
		t.Fatalf("expected 1 notification, got %d", got)
	}
	if notifier.messages[0] != "Don't forget to log your dinner!" {
		t.Errorf("unexpected message: %q", notifier.messages[0])
	}
}

func TestSchedulerStartStop(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	// Settings for the current and the following minute, so the test is
	// immune to a minute rollover while it runs.
	now := time.Now()
	settings := domain.NotificationSettings{
		Enabled: map[domain.MealType]bool{domain.Breakfast: true, domain.Lunch: true},
		ReminderTimes: map[domain.MealType]string{
			domain.Breakfast: now.In(time.Local).Format("15:04"),
			domain.Lunch:     now.Add(time.Minute).In(time.Local).Format("15:04"),
		},
	}
	if err := store.Save(ctx, domain.NotificationRecordName, settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	notifier := &mockNotifier{}
	s := New(store, notifier, zap.NewNop(), WithTickInterval(10*time.Millisecond))

	s.Start(ctx)
	defer s.Stop()

	deadline := time.After(5 * time.Second)
	for notifier.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected a reminder to fire")
		case <-time.After(10 * time.Millisecond):
		}
	}

	s.Stop()
	// Stop again is a no-op.
	s.Stop()
}
