package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"nutritrack/internal/domain"
)

// RegisterInput is the data needed to create a profile. Password is hashed
// before it is stored; the plaintext never leaves this call.
type RegisterInput struct {
	Name               string
	Email              string
	Password           string
	DietaryPreferences []string
	Goals              domain.NutritionGoals
}

// ProfileUpdate carries the profile fields to change. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name               *string
	Email              *string
	DietaryPreferences *[]string
	Goals              *domain.NutritionGoals
}

// AccountService owns the local user directory and the active session.
// Session state lives on the service, never in a package global, with a
// defined lifecycle: rehydrate-or-signed-out on construction, set on
// login/register, cleared on logout.
type AccountService struct {
	store domain.RecordStore
	log   *zap.Logger

	mu      sync.Mutex
	users   []domain.UserProfile
	current *domain.UserProfile
}

// NewAccountService creates an AccountService rehydrated from the user
// directory and session records. Absent records mean an empty directory and
// a signed-out session.
func NewAccountService(ctx context.Context, store domain.RecordStore, log *zap.Logger) (*AccountService, error) {
	s := &AccountService{store: store, log: log}

	var dir domain.UserDirectoryRecord
	if ok, err := store.Load(ctx, domain.UserDirectoryRecordName, &dir); err != nil {
		return nil, fmt.Errorf("rehydrate user directory: %w", err)
	} else if ok {
		s.users = dir.Users
	}

	var sess domain.SessionRecord
	if ok, err := store.Load(ctx, domain.SessionRecordName, &sess); err != nil {
		return nil, fmt.Errorf("rehydrate session: %w", err)
	} else if ok {
		s.current = sess.CurrentUser
	}
	return s, nil
}

// Register creates a profile and signs it in. It reports false without
// creating anything when the email is already taken; the match is
// case-sensitive and exact.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			s.log.Info("registration rejected, email taken", zap.String("email", in.Email))
			return false
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("password hash failed", zap.Error(err))
		return false
	}

	profile := domain.UserProfile{
		ID:                 newID(),
		Name:               in.Name,
		Email:              in.Email,
		PasswordHash:       string(hash),
		DietaryPreferences: in.DietaryPreferences,
		Goals:              in.Goals,
		CreatedAt:          time.Now(),
	}
	s.users = append(s.users, profile)
	s.setSessionLocked(ctx, &profile)
	s.persistDirectoryLocked(ctx)
	return true
}

// Login verifies the credential for the profile with the given email and
// signs it in. It reports false when no such profile exists or the
// credential does not match.
func (s *AccountService) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(s.users[i].PasswordHash), []byte(password)); err != nil {
			return false
		}
		u := s.users[i]
		s.setSessionLocked(ctx, &u)
		return true
	}
	return false
}

// Logout clears the active session. Idempotent.
func (s *AccountService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSessionLocked(ctx, nil)
}

// CurrentUser returns a copy of the signed-in profile, or nil when signed
// out.
func (s *AccountService) CurrentUser() *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// UpdateProfile merges the given fields into the active profile and its
// directory entry. It is a silent no-op when signed out; the updated
// profile (or nil) is returned for display.
func (s *AccountService) UpdateProfile(ctx context.Context, upd ProfileUpdate) *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	merged := *s.current
	if upd.Name != nil {
		merged.Name = *upd.Name
	}
	if upd.Email != nil {
		merged.Email = *upd.Email
	}
	if upd.DietaryPreferences != nil {
		merged.DietaryPreferences = *upd.DietaryPreferences
	}
	if upd.Goals != nil {
		merged.Goals = *upd.Goals
	}

	for i := range s.users {
		if s.users[i].ID == merged.ID {
			s.users[i] = merged
			break
		}
	}
	s.setSessionLocked(ctx, &merged)
	s.persistDirectoryLocked(ctx)

	out := merged
	return &out
}

// setSessionLocked swaps the active session and writes the session record
// through best-effort.
func (s *AccountService) setSessionLocked(ctx context.Context, u *domain.UserProfile) {
	s.current = u
	rec := domain.SessionRecord{CurrentUser: u}
	if err := s.store.Save(ctx, domain.SessionRecordName, rec); err != nil {
		s.log.Warn("session record write failed", zap.Error(err))
	}
}

func (s *AccountService) persistDirectoryLocked(ctx context.Context) {
	rec := domain.UserDirectoryRecord{Users: s.users}
	if err := s.store.Save(ctx, domain.UserDirectoryRecordName, rec); err != nil {
		s.log.Warn("user directory write failed", zap.Error(err))
	}
}
