// ABOUTME: Export of the full wellness store as a single document.
// ABOUTME: Supports JSON (the share format), YAML, and Markdown reports.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/balance/internal/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// exportTimeLayout is ISO-8601 with milliseconds, e.g. 2025-01-31T08:30:00.000Z.
const exportTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// defaultExportNickname stands in for an unset nickname.
const defaultExportNickname = "User"

// ExportData is the full export document. Field names are a stable
// external contract.
type ExportData struct {
	ExportDate    string               `json:"exportDate" yaml:"exportDate"`
	Nickname      string               `json:"nickname" yaml:"nickname"`
	Profile       ExportProfile        `json:"profile" yaml:"profile"`
	WeightGoal    *models.WeightGoal   `json:"weightGoal" yaml:"weightGoal"`
	WeightEntries []models.WeightEntry `json:"weightEntries" yaml:"weightEntries"`
	Milestones    []models.Milestone   `json:"milestones" yaml:"milestones"`
	Meals         []models.Meal        `json:"meals" yaml:"meals"`
	Activities    []models.Activity    `json:"activities" yaml:"activities"`
	Symptoms      []models.Symptom     `json:"symptoms" yaml:"symptoms"`
	MoodEntries   []models.MoodEntry   `json:"moodEntries" yaml:"moodEntries"`
	Summary       ExportSummary        `json:"summary" yaml:"summary"`
}

// ExportProfile is the profile snapshot. Absent metrics are null.
type ExportProfile struct {
	Height        float64            `json:"height" yaml:"height"`
	CurrentWeight *float64           `json:"currentWeight" yaml:"currentWeight"`
	BMI           *float64           `json:"bmi" yaml:"bmi"`
	BMICategory   models.BMICategory `json:"bmiCategory" yaml:"bmiCategory"`
}

// ExportSummary holds per-collection counts and goal progress.
type ExportSummary struct {
	TotalMeals         int     `json:"totalMeals" yaml:"totalMeals"`
	TotalActivities    int     `json:"totalActivities" yaml:"totalActivities"`
	TotalSymptoms      int     `json:"totalSymptoms" yaml:"totalSymptoms"`
	TotalMoodEntries   int     `json:"totalMoodEntries" yaml:"totalMoodEntries"`
	TotalWeightEntries int     `json:"totalWeightEntries" yaml:"totalWeightEntries"`
	WeightProgress     float64 `json:"weightProgress" yaml:"weightProgress"`
}

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates an export format name. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "md"
	default:
		return "json"
	}
}

// ExportFileName returns the share file name for an export made at t,
// e.g. balance_day_export_2025-01-31.json.
func ExportFileName(t time.Time, f Format) string {
	return fmt.Sprintf("balance_day_export_%s.%s", t.UTC().Format(models.DateLayout), f.Extension())
}

// Export snapshots the store into an ExportData document.
func (s *Store) Export() *ExportData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nickname := s.nickname
	if nickname == "" {
		nickname = defaultExportNickname
	}

	profile := ExportProfile{
		Height:      s.height,
		BMICategory: s.bmiCategory(),
	}
	if w, ok := s.currentWeight(); ok {
		profile.CurrentWeight = &w
	}
	if bmi, ok := s.bmi(); ok {
		profile.BMI = &bmi
	}

	var goal *models.WeightGoal
	if s.goal != nil {
		g := *s.goal
		goal = &g
	}

	return &ExportData{
		ExportDate:    s.now().UTC().Format(exportTimeLayout),
		Nickname:      nickname,
		Profile:       profile,
		WeightGoal:    goal,
		WeightEntries: clone(s.weightEntries),
		Milestones:    clone(s.milestones),
		Meals:         clone(s.meals),
		Activities:    clone(s.activities),
		Symptoms:      clone(s.symptoms),
		MoodEntries:   clone(s.moodEntries),
		Summary: ExportSummary{
			TotalMeals:         len(s.meals),
			TotalActivities:    len(s.activities),
			TotalSymptoms:      len(s.symptoms),
			TotalMoodEntries:   len(s.moodEntries),
			TotalWeightEntries: len(s.weightEntries),
			WeightProgress:     s.weightProgress(),
		},
	}
}

// ExportJSON exports all data as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportYAML exports all data as YAML with the same keys as JSON.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := yaml.Marshal(s.Export())
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportMarkdown renders all data as a Markdown report.
func (s *Store) ExportMarkdown() string {
	return renderMarkdown(s.Export())
}

// Encode renders the store in the given format.
func (s *Store) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return s.ExportJSON()
	case FormatYAML:
		return s.ExportYAML()
	case FormatMarkdown:
		return []byte(s.ExportMarkdown()), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", f)
	}
}

// WriteExport writes an export file into dir and returns its path.
func (s *Store) WriteExport(dir string, f Format) (string, error) {
	data, err := s.Encode(f)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, ExportFileName(s.now(), f))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	s.logger.Info("data exported", zap.String("path", path), zap.String("format", string(f)))
	return path, nil
}

// ParseExport decodes a JSON export document.
func ParseExport(data []byte) (*ExportData, error) {
	var out ExportData
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal export: %w", err)
	}
	return &out, nil
}

//nolint:gocognit // one section per collection
func renderMarkdown(d *ExportData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Balance Export - %s\n\n", d.Nickname))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", d.ExportDate))

	sb.WriteString("## Profile\n\n")
	sb.WriteString(fmt.Sprintf("- Height: %.1f cm\n", d.Profile.Height))
	if d.Profile.CurrentWeight != nil {
		sb.WriteString(fmt.Sprintf("- Current weight: %.1f kg\n", *d.Profile.CurrentWeight))
	}
	if d.Profile.BMI != nil {
		sb.WriteString(fmt.Sprintf("- BMI: %.1f (%s)\n", *d.Profile.BMI, d.Profile.BMICategory))
	}
	if d.WeightGoal != nil {
		sb.WriteString(fmt.Sprintf("- Goal: %.1f kg → %.1f kg by %s (%.0f%%)\n",
			d.WeightGoal.StartWeight, d.WeightGoal.TargetWeight,
			d.WeightGoal.TargetDate, d.Summary.WeightProgress))
	}
	sb.WriteString("\n")

	if len(d.WeightEntries) > 0 {
		sb.WriteString("## Weight\n\n")
		sb.WriteString("| Date | Time | Weight | Notes |\n")
		sb.WriteString("|------|------|--------|-------|\n")
		for _, e := range d.WeightEntries {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.1f kg | %s |\n", e.Date, e.Time, e.Weight, deref(e.Note)))
		}
		sb.WriteString("\n")
	}

	if len(d.Milestones) > 0 {
		sb.WriteString("## Milestones\n\n")
		for _, m := range d.Milestones {
			sb.WriteString(fmt.Sprintf("- %s: %s (%.1f kg)\n", m.Date, m.Message, m.Weight))
		}
		sb.WriteString("\n")
	}

	if len(d.Meals) > 0 {
		sb.WriteString("## Meals\n\n")
		sb.WriteString("| Date | Time | Meal | kcal | P | C | F |\n")
		sb.WriteString("|------|------|------|------|---|---|---|\n")
		for _, m := range d.Meals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %dg | %dg | %dg |\n",
				m.Date, m.Time, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat))
		}
		sb.WriteString("\n")
	}

	if len(d.Activities) > 0 {
		sb.WriteString("## Activities\n\n")
		sb.WriteString("| Date | Time | Activity | Duration | kcal |\n")
		sb.WriteString("|------|------|----------|----------|------|\n")
		for _, a := range d.Activities {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d min | %d |\n",
				a.Date, a.Time, a.Name, a.Duration, a.Calories))
		}
		sb.WriteString("\n")
	}

	if len(d.Symptoms) > 0 {
		sb.WriteString("## Symptoms\n\n")
		sb.WriteString("| Date | Time | Symptom | Severity | Notes |\n")
		sb.WriteString("|------|------|---------|----------|-------|\n")
		for _, sym := range d.Symptoms {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				sym.Date, sym.Time, sym.Name, sym.Severity, deref(sym.Note)))
		}
		sb.WriteString("\n")
	}

	if len(d.MoodEntries) > 0 {
		sb.WriteString("## Mood\n\n")
		sb.WriteString("| Date | Time | Mood | Value | Notes |\n")
		sb.WriteString("|------|------|------|-------|-------|\n")
		for _, e := range d.MoodEntries {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s %s | %d/5 | %s |\n",
				e.Date, e.Time, e.Emoji, e.Mood, e.Value, deref(e.Note)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Meals: %d\n", d.Summary.TotalMeals))
	sb.WriteString(fmt.Sprintf("- Activities: %d\n", d.Summary.TotalActivities))
	sb.WriteString(fmt.Sprintf("- Symptoms: %d\n", d.Summary.TotalSymptoms))
	sb.WriteString(fmt.Sprintf("- Mood entries: %d\n", d.Summary.TotalMoodEntries))
	sb.WriteString(fmt.Sprintf("- Weight entries: %d\n", d.Summary.TotalWeightEntries))

	return sb.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
