// Package reminder implements the background meal-reminder scheduler. It
// polls the notification-settings record and fires a user-visible alert
// when the local time matches a configured reminder time for an enabled
// meal type. It only reads configuration and never writes to the stores.
package reminder

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"nutritrack/internal/domain"
)

// Option configures the scheduler.
type Option func(*Scheduler)

// WithTickInterval sets how often the scheduler checks reminder times.
func WithTickInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.tickInterval = d
	}
}

// WithSettingsFile watches the given file for writes and reloads the
// cached settings on change, instead of re-reading storage every tick.
func WithSettingsFile(path string) Option {
	return func(s *Scheduler) {
		s.settingsFile = path
	}
}

// Scheduler runs in the background and delivers meal logging reminders.
type Scheduler struct {
	store    domain.RecordStore
	notifier domain.Notifier
	log      *zap.Logger

	tickInterval time.Duration
	settingsFile string

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc

	settingsMu sync.RWMutex
	settings   domain.NotificationSettings

	// lastFired de-duplicates alerts to one per meal type per minute.
	lastFired map[domain.MealType]string
}

// New creates a reminder scheduler with the given dependencies and options.
func New(store domain.RecordStore, notifier domain.Notifier, log *zap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:        store,
		notifier:     notifier,
		log:          log,
		tickInterval: time.Minute,
		lastFired:    make(map[domain.MealType]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the background loop. Non-blocking.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("reminder scheduler already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	s.reloadSettings(childCtx)
	go s.loop(childCtx)
	if s.settingsFile != "" {
		go s.watchSettings(childCtx)
	}

	s.log.Info("reminder scheduler started", zap.Duration("tick", s.tickInterval))
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cancel()
	s.running = false
	s.log.Info("reminder scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Without a watched file the settings record is re-read on
			// every tick so edits are still picked up.
			if s.settingsFile == "" {
				s.reloadSettings(ctx)
			}
			s.tick(ctx, time.Now())
		}
	}
}

// tick fires at most one alert per due meal type per minute.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	s.settingsMu.RLock()
	settings := s.settings
	s.settingsMu.RUnlock()

	minute := now.In(time.Local).Format("2006-01-02 15:04")
	for _, mealType := range DueMealTypes(settings, now) {
		if s.lastFired[mealType] == minute {
			continue
		}
		s.lastFired[mealType] = minute

		msg := fmt.Sprintf("Don't forget to log your %s!", mealType)
		if err := s.notifier.Notify(ctx, msg); err != nil {
			s.log.Error("reminder delivery failed", zap.String("mealType", string(mealType)), zap.Error(err))
		}
	}
}

// DueMealTypes returns the enabled meal types whose reminder time matches
// now's local HH:MM, in display order.
func DueMealTypes(settings domain.NotificationSettings, now time.Time) []domain.MealType {
	hhmm := now.In(time.Local).Format("15:04")

	var due []domain.MealType
	for _, t := range domain.MealTypes {
		if settings.Enabled[t] && settings.ReminderTimes[t] == hhmm {
			due = append(due, t)
		}
	}
	return due
}

// reloadSettings refreshes the cached settings from the record store. An
// absent record disables all reminders.
func (s *Scheduler) reloadSettings(ctx context.Context) {
	var settings domain.NotificationSettings
	ok, err := s.store.Load(ctx, domain.NotificationRecordName, &settings)
	if err != nil {
		s.log.Warn("notification settings read failed", zap.Error(err))
		return
	}
	if !ok {
		settings = domain.NotificationSettings{}
	}

	s.settingsMu.Lock()
	s.settings = settings
	s.settingsMu.Unlock()
}

// watchSettings reloads the cached settings whenever the backing file is
// written.
func (s *Scheduler) watchSettings(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.log.Error("settings watcher setup failed", zap.Error(err))
		return
	}
	defer watcher.Close()

	// Watch the directory: editors and atomic renames replace the file,
	// which would silently drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(s.settingsFile)); err != nil {
		s.log.Error("settings watcher add failed", zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.settingsFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				s.log.Debug("notification settings changed", zap.String("file", event.Name))
				s.reloadSettings(ctx)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Error("settings watcher error", zap.Error(err))
		}
	}
}
