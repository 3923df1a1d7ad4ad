// ABOUTME: CLI dashboard for today's wellness log.
// ABOUTME: Renders meals, activities, symptoms, moods, water, and weight in lipgloss boxes.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/store"
	"github.com/spf13/cobra"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(0, 1).
			Width(46)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t", "dashboard"},
	Short:   "Show today's dashboard",
	Long: `Show everything logged today with daily totals.

The session starts empty, so use --demo (or demo_data in the config) to see
a populated dashboard.

EXAMPLES:

  balance today --demo`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderToday(cmd.OutOrStdout(), repo, cfg.GetWaterGoal())
		return nil
	},
}

func renderToday(w io.Writer, r store.Repository, waterGoal int) {
	greeting := "Today"
	if name := r.Nickname(); name != "" {
		greeting = fmt.Sprintf("Today, %s", name)
	}
	fmt.Fprintln(w, titleStyle.Render(greeting))

	sections := []string{
		section("Nutrition", mealLines(r.TodaysMeals(), r.TodaysNutrition())),
		section("Activity", activityLines(r.TodaysActivities(), r.TodaysActivityTotals())),
		section("Symptoms", symptomLines(r.TodaysSymptoms())),
		section("Mood", moodLines(r.TodaysMoodEntries())),
		section("Water", []string{waterLine(r.WaterToday(), waterGoal)}),
		section("Weight", weightLines(r)),
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func section(title string, lines []string) string {
	if len(lines) == 0 {
		lines = []string{faintStyle.Render("Nothing logged yet")}
	}
	body := titleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return boxStyle.Render(body)
}

func mealLines(meals []models.Meal, totals models.NutritionTotals) []string {
	if len(meals) == 0 {
		return nil
	}
	lines := make([]string, 0, len(meals)+1)
	for _, m := range meals {
		lines = append(lines, fmt.Sprintf("%s  %s  %d kcal",
			padRight(m.Time, 8), padRight(truncate(m.Name, 20), 20), m.Calories))
	}
	lines = append(lines, faintStyle.Render(fmt.Sprintf("Total %d kcal · P %dg · C %dg · F %dg",
		totals.Calories, totals.Protein, totals.Carbs, totals.Fat)))
	return lines
}

func activityLines(activities []models.Activity, totals models.ActivityTotals) []string {
	if len(activities) == 0 {
		return nil
	}
	lines := make([]string, 0, len(activities)+1)
	for _, a := range activities {
		lines = append(lines, fmt.Sprintf("%s  %s  %d min  %d kcal",
			padRight(a.Time, 8), padRight(truncate(a.Name, 16), 16), a.Duration, a.Calories))
	}
	lines = append(lines, faintStyle.Render(fmt.Sprintf("Total %d min · %d kcal burned", totals.Minutes, totals.Calories)))
	return lines
}

func symptomLines(symptoms []models.Symptom) []string {
	lines := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		line := fmt.Sprintf("%s  %s  %s", padRight(s.Time, 8), padRight(truncate(s.Name, 16), 16), severityColor(s.Severity).Sprint(s.Severity))
		if s.Note != nil {
			line += faintStyle.Render(" (" + truncate(*s.Note, 20) + ")")
		}
		lines = append(lines, line)
	}
	return lines
}

func moodLines(entries []models.MoodEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %s %s (%d/5)", padRight(e.Time, 8), e.Emoji, e.Mood, e.Value))
	}
	return lines
}

func waterLine(glasses, goal int) string {
	pct := store.WaterProgress(glasses, goal)
	return fmt.Sprintf("%s %d/%d glasses", progressBar(pct, 20), glasses, goal)
}

func weightLines(r store.Repository) []string {
	weight, ok := r.CurrentWeight()
	if !ok {
		return nil
	}

	lines := []string{fmt.Sprintf("Current %.1f kg", weight)}
	if bmi, ok := r.BMI(); ok {
		category := r.BMICategory()
		lines = append(lines, fmt.Sprintf("BMI %.1f %s", bmi, categoryColor(category).Sprint(category)))
	}
	if goal, ok := r.WeightGoal(); ok {
		lines = append(lines, fmt.Sprintf("Goal %.1f → %.1f kg", goal.StartWeight, goal.TargetWeight))
		lines = append(lines, fmt.Sprintf("%s %.0f%%", progressBar(r.WeightProgress(), 20), r.WeightProgress()))
	}
	if ms := r.Milestones(); len(ms) > 0 {
		lines = append(lines, color.New(color.FgGreen).Sprintf("★ %s", ms[len(ms)-1].Message))
	}
	return lines
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeverityMild:
		return color.New(color.FgGreen)
	case models.SeverityModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// progressBar draws pct (0-100, clamped) as a bar of width cells.
func progressBar(pct float64, width int) string {
	pct = max(0, min(pct, 100))
	filled := int(pct / 100 * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// truncate shortens s to at most maxLen runes, ending in "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// padRight pads s with spaces to length terminal cells.
func padRight(s string, length int) string {
	w := lipgloss.Width(s)
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
