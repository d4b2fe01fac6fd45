// NutriTrack — a local nutrition tracker.
//
// Usage:
//
//	nutritrack [-config file] <command> [flags]
//
// Commands: register, login, logout, whoami, foods, add-meal, update-meal,
// delete-meal, meals, today, week, set-goals, set-reminder, remind.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nutritrack/internal/adapter/file"
	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/adapter/postgres"
	"nutritrack/internal/app"
	"nutritrack/internal/config"
	"nutritrack/internal/domain"
	"nutritrack/internal/logger"
	"nutritrack/internal/reminder"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", env("NUTRITRACK_CONFIG", "nutritrack.yaml"), "path to the YAML config file")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("config: %v", err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fatal("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	store, settingsFile, closeStore, err := openStore(cfg)
	if err != nil {
		fatal("storage: %v", err)
	}
	defer closeStore()

	ctx := context.Background()
	meals, err := app.NewMealService(ctx, store, log)
	if err != nil {
		fatal("meal store: %v", err)
	}
	accounts, err := app.NewAccountService(ctx, store, log)
	if err != nil {
		fatal("account store: %v", err)
	}
	meals.InitializeFoods(ctx)

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "register":
		cmdRegister(ctx, accounts, args)
	case "login":
		cmdLogin(ctx, accounts, args)
	case "logout":
		accounts.Logout(ctx)
		fmt.Println("signed out")
	case "whoami":
		cmdWhoami(accounts)
	case "foods":
		renderFoods(meals.Foods())
	case "add-meal":
		cmdAddMeal(ctx, meals, accounts, args)
	case "update-meal":
		cmdUpdateMeal(ctx, meals, args)
	case "delete-meal":
		cmdDeleteMeal(ctx, meals, args)
	case "meals":
		cmdMeals(meals, args)
	case "today":
		renderDashboard(meals.DailyIntake(time.Now()), currentGoals(accounts))
	case "week":
		renderWeek(meals.WeeklyIntakes(time.Now()), currentGoals(accounts))
	case "set-goals":
		cmdSetGoals(ctx, accounts, args)
	case "set-reminder":
		cmdSetReminder(ctx, store, args)
	case "remind":
		cmdRemind(ctx, cfg, store, settingsFile, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: nutritrack [-config file] <command> [flags]

account:
  register      create a profile and sign in
  login         sign in with email and password
  logout        sign out
  whoami        show the signed-in profile
  set-goals     update daily nutrition goals

meals:
  foods         list the food catalog
  add-meal      log a meal (-line foodID:quantity, repeatable)
  update-meal   change a logged meal
  delete-meal   remove a logged meal
  meals         list meals for a date
  today         today's intake against goals
  week          the last 7 days

reminders:
  set-reminder  configure a meal logging reminder
  remind        run the reminder scheduler in the foreground`)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// openStore selects the record store backend. The settings file path is
// non-empty only for the file backend, where the reminder scheduler can
// watch it for edits.
func openStore(cfg *config.Config) (domain.RecordStore, string, func(), error) {
	switch cfg.Storage {
	case config.StorageFile:
		s, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, "", nil, err
		}
		return s, s.Path(domain.NotificationRecordName), func() {}, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.PostgresURL)
		if err != nil {
			return nil, "", nil, err
		}
		return db, "", func() { _ = db.Close() }, nil
	case config.StorageMemory:
		return memory.New(), "", func() {}, nil
	default:
		return nil, "", nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func mustSignIn(accounts *app.AccountService) *domain.UserProfile {
	user := accounts.CurrentUser()
	if user == nil {
		fatal("not signed in (use: nutritrack login)")
	}
	return user
}

func currentGoals(accounts *app.AccountService) domain.NutritionGoals {
	if user := accounts.CurrentUser(); user != nil && user.Goals != (domain.NutritionGoals{}) {
		return user.Goals
	}
	return domain.DefaultGoals()
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		fatal("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d
}

// lineFlags collects repeated -line foodID:quantity flags.
type lineFlags []app.LineInput

func (l *lineFlags) String() string { return fmt.Sprintf("%v", []app.LineInput(*l)) }

func (l *lineFlags) Set(s string) error {
	id, qty, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("want foodID:quantity, got %q", s)
	}
	q, err := strconv.ParseFloat(qty, 64)
	if err != nil {
		return fmt.Errorf("quantity %q: %w", qty, err)
	}
	*l = append(*l, app.LineInput{FoodID: id, Quantity: q})
	return nil
}

func cmdRegister(ctx context.Context, accounts *app.AccountService, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	prefs := fs.String("prefs", "", "comma-separated dietary preferences")
	goals := goalFlags(fs, domain.DefaultGoals())
	_ = fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		fatal("register needs -name, -email, and -password")
	}

	var preferences []string
	if *prefs != "" {
		preferences = strings.Split(*prefs, ",")
	}

	ok := accounts.Register(ctx, app.RegisterInput{
		Name:               *name,
		Email:              *email,
		Password:           *password,
		DietaryPreferences: preferences,
		Goals:              goals(),
	})
	if !ok {
		fatal("registration failed: email already in use")
	}
	fmt.Printf("welcome, %s\n", *name)
}

func cmdLogin(ctx context.Context, accounts *app.AccountService, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	if !accounts.Login(ctx, *email, *password) {
		fatal("login failed: unknown email or wrong password")
	}
	fmt.Printf("signed in as %s\n", *email)
}

func cmdWhoami(accounts *app.AccountService) {
	renderProfile(mustSignIn(accounts))
}

func cmdAddMeal(ctx context.Context, meals *app.MealService, accounts *app.AccountService, args []string) {
	fs := flag.NewFlagSet("add-meal", flag.ExitOnError)
	name := fs.String("name", "", "meal name")
	mealType := fs.String("type", string(domain.Breakfast), "breakfast|lunch|dinner|snack")
	date := fs.String("date", "", "day the meal belongs to (YYYY-MM-DD, default today)")
	var lines lineFlags
	fs.Var(&lines, "line", "foodID:quantity (repeatable)")
	_ = fs.Parse(args)

	user := mustSignIn(accounts)
	meal, err := meals.AddMeal(ctx, user.ID, *name, domain.MealType(*mealType), parseDate(*date), lines)
	if err != nil {
		fatal("add-meal: %v", err)
	}
	fmt.Printf("logged %q (%s)\n", meal.Name, meal.ID)
	renderMeal(*meal)
}

func cmdUpdateMeal(ctx context.Context, meals *app.MealService, args []string) {
	fs := flag.NewFlagSet("update-meal", flag.ExitOnError)
	id := fs.String("id", "", "meal id")
	name := fs.String("name", "", "new meal name")
	mealType := fs.String("type", "", "new meal type")
	date := fs.String("date", "", "new day (YYYY-MM-DD)")
	var lines lineFlags
	fs.Var(&lines, "line", "replacement line foodID:quantity (repeatable)")
	_ = fs.Parse(args)

	if *id == "" {
		fatal("update-meal needs -id")
	}

	var upd app.MealUpdate
	if *name != "" {
		upd.Name = name
	}
	if *mealType != "" {
		t := domain.MealType(*mealType)
		upd.Type = &t
	}
	if *date != "" {
		d := parseDate(*date)
		upd.Date = &d
	}
	if len(lines) > 0 {
		upd.Lines = lines
	}

	meal, err := meals.UpdateMeal(ctx, *id, upd)
	if err != nil {
		fatal("update-meal: %v", err)
	}
	fmt.Printf("updated %q\n", meal.Name)
	renderMeal(*meal)
}

func cmdDeleteMeal(ctx context.Context, meals *app.MealService, args []string) {
	fs := flag.NewFlagSet("delete-meal", flag.ExitOnError)
	id := fs.String("id", "", "meal id")
	_ = fs.Parse(args)

	if *id == "" {
		fatal("delete-meal needs -id")
	}
	meals.DeleteMeal(ctx, *id)
	fmt.Println("deleted")
}

func cmdMeals(meals *app.MealService, args []string) {
	fs := flag.NewFlagSet("meals", flag.ExitOnError)
	date := fs.String("date", "", "day to list (YYYY-MM-DD, default today)")
	_ = fs.Parse(args)

	day := parseDate(*date)
	list := meals.MealsOnDate(day)
	if len(list) == 0 {
		fmt.Printf("no meals on %s\n", day.Format("2006-01-02"))
		return
	}
	for _, m := range list {
		renderMeal(m)
	}
}

func cmdSetGoals(ctx context.Context, accounts *app.AccountService, args []string) {
	user := mustSignIn(accounts)

	fs := flag.NewFlagSet("set-goals", flag.ExitOnError)
	goals := goalFlags(fs, user.Goals)
	_ = fs.Parse(args)

	g := goals()
	updated := accounts.UpdateProfile(ctx, app.ProfileUpdate{Goals: &g})
	if updated == nil {
		fatal("not signed in")
	}
	renderProfile(updated)
}

// goalFlags registers the four goal flags with the given defaults and
// returns a function that reads them back after parsing.
func goalFlags(fs *flag.FlagSet, defaults domain.NutritionGoals) func() domain.NutritionGoals {
	calories := fs.Float64("calories", defaults.Calories, "daily calorie goal (kcal)")
	protein := fs.Float64("protein", defaults.Protein, "daily protein goal (g)")
	carbs := fs.Float64("carbs", defaults.Carbs, "daily carb goal (g)")
	fat := fs.Float64("fat", defaults.Fat, "daily fat goal (g)")
	return func() domain.NutritionGoals {
		return domain.NutritionGoals{Calories: *calories, Protein: *protein, Carbs: *carbs, Fat: *fat}
	}
}

func cmdSetReminder(ctx context.Context, store domain.RecordStore, args []string) {
	fs := flag.NewFlagSet("set-reminder", flag.ExitOnError)
	mealType := fs.String("type", "", "breakfast|lunch|dinner|snack")
	at := fs.String("time", "", "local reminder time (HH:MM)")
	off := fs.Bool("off", false, "disable the reminder for this meal type")
	_ = fs.Parse(args)

	t := domain.MealType(*mealType)
	if !t.Valid() {
		fatal("set-reminder needs -type breakfast|lunch|dinner|snack")
	}
	if !*off {
		if _, err := time.Parse("15:04", *at); err != nil {
			fatal("set-reminder needs -time HH:MM")
		}
	}

	var settings domain.NotificationSettings
	if _, err := store.Load(ctx, domain.NotificationRecordName, &settings); err != nil {
		fatal("load settings: %v", err)
	}
	if settings.Enabled == nil {
		settings.Enabled = make(map[domain.MealType]bool)
	}
	if settings.ReminderTimes == nil {
		settings.ReminderTimes = make(map[domain.MealType]string)
	}

	if *off {
		settings.Enabled[t] = false
		fmt.Printf("%s reminder off\n", t)
	} else {
		settings.Enabled[t] = true
		settings.ReminderTimes[t] = *at
		fmt.Printf("%s reminder at %s\n", t, *at)
	}

	if err := store.Save(ctx, domain.NotificationRecordName, settings); err != nil {
		fatal("save settings: %v", err)
	}
}

func cmdRemind(ctx context.Context, cfg *config.Config, store domain.RecordStore, settingsFile string, log *zap.Logger) {
	tick, err := cfg.TickInterval()
	if err != nil {
		fatal("%v", err)
	}

	opts := []reminder.Option{reminder.WithTickInterval(tick)}
	if settingsFile != "" {
		opts = append(opts, reminder.WithSettingsFile(settingsFile))
	}

	s := reminder.New(store, terminalNotifier{}, log, opts...)
	s.Start(ctx)
	defer s.Stop()

	fmt.Println("reminder scheduler running, ctrl-c to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
