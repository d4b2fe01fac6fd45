package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"nutritrack/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bbf7d0"))

	overStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)
)

// ── Rendering ────────────────────────────────────────────────────

func renderFoods(foods []domain.Food) {
	fmt.Println(titleStyle.Render("Food catalog"))
	for _, f := range foods {
		fmt.Printf("  %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("[%2s]", f.ID)),
			valueStyle.Render(fmt.Sprintf("%-28s", f.Name)),
			labelStyle.Render(fmt.Sprintf("%.2f kcal / %s  (P %.2f  C %.2f  F %.2f)",
				f.CaloriesPerUnit, f.Unit, f.ProteinPerUnit, f.CarbsPerUnit, f.FatPerUnit)),
		)
	}
}

func renderMeal(m domain.Meal) {
	fmt.Printf("%s %s %s\n",
		titleStyle.Render(m.Name),
		dimStyle.Render(string(m.Type)),
		dimStyle.Render(m.Date.Format("2006-01-02")),
	)
	fmt.Printf("  %s %s\n", labelStyle.Render("id:"), dimStyle.Render(m.ID))
	for _, line := range m.Foods {
		fmt.Printf("  %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-24s", fmt.Sprintf("%s ×%g%s", line.Food.Name, line.Quantity, line.Food.Unit))),
			labelStyle.Render(fmt.Sprintf("%.0f kcal", line.Calories)),
		)
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("total:"), valueStyle.Render(nutrientLine(m.Totals)))
}

func renderProfile(u *domain.UserProfile) {
	fmt.Println(titleStyle.Render(u.Name))
	fmt.Printf("  %s %s\n", labelStyle.Render("email:"), valueStyle.Render(u.Email))
	if len(u.DietaryPreferences) > 0 {
		fmt.Printf("  %s %s\n", labelStyle.Render("prefs:"), valueStyle.Render(strings.Join(u.DietaryPreferences, ", ")))
	}
	g := u.Goals
	if g == (domain.NutritionGoals{}) {
		g = domain.DefaultGoals()
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("goals:"),
		valueStyle.Render(fmt.Sprintf("%.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat",
			g.Calories, g.Protein, g.Carbs, g.Fat)))
}

func renderDashboard(intake domain.DailyIntake, goals domain.NutritionGoals) {
	fmt.Println(titleStyle.Render("Today — " + intake.Date.Format("Mon Jan 2")))
	if len(intake.Meals) == 0 {
		fmt.Println(dimStyle.Render("  nothing logged yet"))
	}
	for _, m := range intake.Meals {
		fmt.Printf("  %s %s %s\n",
			dimStyle.Render(string(m.Type)),
			valueStyle.Render(m.Name),
			labelStyle.Render(fmt.Sprintf("%.0f kcal", m.Totals.Calories)),
		)
	}
	fmt.Println()
	for _, p := range domain.ProgressAgainst(intake.Totals, goals) {
		fmt.Printf("  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-8s", p.Nutrient)),
			progressBar(p.Percent, 24),
			valueStyle.Render(fmt.Sprintf("%.0f / %.0f %s (%.0f%%)", p.Current, p.Goal, p.Unit, p.Percent)),
		)
	}
}

func renderWeek(intakes []domain.DailyIntake, goals domain.NutritionGoals) {
	fmt.Println(titleStyle.Render("Last 7 days"))
	for _, day := range intakes {
		pct := 0.0
		if goals.Calories > 0 {
			pct = day.Totals.Calories / goals.Calories * 100
		}
		fmt.Printf("  %s %s %s\n",
			labelStyle.Render(day.Date.Format("Mon 01-02")),
			progressBar(pct, 24),
			valueStyle.Render(fmt.Sprintf("%.0f kcal, %d meals", day.Totals.Calories, len(day.Meals))),
		)
	}
}

// progressBar renders a fixed-width bar; the filled part turns red past
// 100%.
func progressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	style := okStyle
	if percent > 100 {
		style = overStyle
	}
	return style.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

func nutrientLine(n domain.Nutrients) string {
	return fmt.Sprintf("%.0f kcal  P %.1fg  C %.1fg  F %.1fg", n.Calories, n.Protein, n.Carbs, n.Fat)
}

// terminalNotifier delivers reminders to the terminal the scheduler runs
// in.
type terminalNotifier struct{}

var _ domain.Notifier = terminalNotifier{}

func (terminalNotifier) Notify(_ context.Context, msg string) error {
	fmt.Printf("%s %s\n", dimStyle.Render(time.Now().Format("15:04")), urgentStyle.Render(msg))
	return nil
}
