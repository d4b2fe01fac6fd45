package app_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

func newAccountService(t *testing.T, store domain.RecordStore) *app.AccountService {
	t.Helper()
	svc, err := app.NewAccountService(context.Background(), store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewAccountService: %v", err)
	}
	return svc
}

func registerInput(email string) app.RegisterInput {
	return app.RegisterInput{
		Name:               "Alex",
		Email:              email,
		Password:           "hunter2",
		DietaryPreferences: []string{"vegetarian"},
		Goals:              domain.DefaultGoals(),
	}
}

func TestRegister_SignsIn(t *testing.T) {
	svc := newAccountService(t, memory.New())
	ctx := context.Background()

	if !svc.Register(ctx, registerInput("alex@example.com")) {
		t.Fatal("expected registration to succeed")
	}

	user := svc.CurrentUser()
	if user == nil {
		t.Fatal("expected an active session after register")
	}
	if user.Email != "alex@example.com" || user.ID == "" || user.CreatedAt.IsZero() {
		t.Errorf("unexpected profile: %+v", user)
	}
	if user.PasswordHash == "hunter2" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := memory.New()
	svc := newAccountService(t, store)
	ctx := context.Background()

	if !svc.Register(ctx, registerInput("alex@example.com")) {
		t.Fatal("first registration must succeed")
	}
	if svc.Register(ctx, registerInput("alex@example.com")) {
		t.Fatal("second registration with same email must fail")
	}

	// The directory retains a single entry for that email.
	var dir domain.UserDirectoryRecord
	if ok, err := store.Load(ctx, domain.UserDirectoryRecordName, &dir); err != nil || !ok {
		t.Fatalf("load user directory: ok=%v err=%v", ok, err)
	}
	count := 0
	for _, u := range dir.Users {
		if u.Email == "alex@example.com" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 directory entry, got %d", count)
	}
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	svc := newAccountService(t, memory.New())
	ctx := context.Background()

	if !svc.Register(ctx, registerInput("alex@example.com")) {
		t.Fatal("first registration must succeed")
	}
	if !svc.Register(ctx, registerInput("Alex@example.com")) {
		t.Fatal("different-case email is a different email")
	}
}

func TestLogin(t *testing.T) {
	svc := newAccountService(t, memory.New())
	ctx := context.Background()

	svc.Register(ctx, registerInput("alex@example.com"))
	svc.Logout(ctx)
	if svc.CurrentUser() != nil {
		t.Fatal("expected signed-out state after logout")
	}

	if svc.Login(ctx, "alex@example.com", "wrong") {
		t.Error("wrong password must not sign in")
	}
	if svc.Login(ctx, "nobody@example.com", "hunter2") {
		t.Error("unknown email must not sign in")
	}
	if svc.CurrentUser() != nil {
		t.Fatal("failed logins must not create a session")
	}

	if !svc.Login(ctx, "alex@example.com", "hunter2") {
		t.Fatal("expected login to succeed")
	}
	if user := svc.CurrentUser(); user == nil || user.Email != "alex@example.com" {
		t.Errorf("unexpected session user: %+v", user)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	svc := newAccountService(t, memory.New())
	ctx := context.Background()

	svc.Logout(ctx)
	svc.Logout(ctx)
	if svc.CurrentUser() != nil {
		t.Fatal("expected signed-out state")
	}
}

func TestUpdateProfile_SignedOut(t *testing.T) {
	svc := newAccountService(t, memory.New())

	name := "Sam"
	if got := svc.UpdateProfile(context.Background(), app.ProfileUpdate{Name: &name}); got != nil {
		t.Fatalf("expected nil result when signed out, got %+v", got)
	}
}

func TestUpdateProfile_MergesAndPersists(t *testing.T) {
	store := memory.New()
	svc := newAccountService(t, store)
	ctx := context.Background()

	svc.Register(ctx, registerInput("alex@example.com"))

	goals := domain.NutritionGoals{Calories: 1800, Protein: 120, Carbs: 200, Fat: 60}
	name := "Alexandra"
	updated := svc.UpdateProfile(ctx, app.ProfileUpdate{Name: &name, Goals: &goals})
	if updated == nil {
		t.Fatal("expected updated profile")
	}
	if updated.Name != name || updated.Goals != goals {
		t.Errorf("fields not merged: %+v", updated)
	}
	if updated.Email != "alex@example.com" {
		t.Errorf("untouched fields must survive the merge, got email %q", updated.Email)
	}

	// Both the session slot and the directory entry carry the update.
	restarted := newAccountService(t, store)
	user := restarted.CurrentUser()
	if user == nil || user.Name != name || user.Goals != goals {
		t.Errorf("session record missing update: %+v", user)
	}

	restarted.Logout(ctx)
	if !restarted.Login(ctx, "alex@example.com", "hunter2") {
		t.Fatal("login after update must still work")
	}
	if u := restarted.CurrentUser(); u == nil || u.Goals != goals {
		t.Errorf("directory entry missing update: %+v", u)
	}
}

func TestSession_Rehydrates(t *testing.T) {
	store := memory.New()
	svc := newAccountService(t, store)
	ctx := context.Background()

	svc.Register(ctx, registerInput("alex@example.com"))

	restarted := newAccountService(t, store)
	user := restarted.CurrentUser()
	if user == nil || user.Email != "alex@example.com" {
		t.Fatalf("expected rehydrated session, got %+v", user)
	}

	// After a persisted logout the next start is signed out.
	restarted.Logout(ctx)
	again := newAccountService(t, store)
	if again.CurrentUser() != nil {
		t.Fatal("expected signed-out state after persisted logout")
	}
}
