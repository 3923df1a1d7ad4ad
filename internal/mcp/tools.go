// ABOUTME: MCP tool implementations for the balance store.
// ABOUTME: Logging, deleting, goals, profile, water, steps, and export.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/steps"
	"github.com/harperreed/balance/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_meal",
		Description: "Log a meal with calories and macronutrients",
	}, s.handleAddMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a meal by ID",
	}, s.handleDeleteMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_activity",
		Description: "Log an exercise session",
	}, s.handleAddActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_activity",
		Description: "Delete an activity by ID",
	}, s.handleDeleteActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_symptom",
		Description: "Log a symptom with severity mild, moderate, or severe",
	}, s.handleAddSymptom)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_symptom",
		Description: "Delete a symptom by ID",
	}, s.handleDeleteSymptom)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_mood",
		Description: "Log a mood: Great, Good, Okay, Low, or Bad",
	}, s.handleLogMood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_mood",
		Description: "Delete a mood entry by ID",
	}, s.handleDeleteMood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a weigh-in in kilograms; may unlock a milestone",
	}, s.handleLogWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_weight",
		Description: "Delete a weigh-in by ID",
	}, s.handleDeleteWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_weight_goal",
		Description: "Set the target weight; the start weight defaults to the current weight",
	}, s.handleSetWeightGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Update height (cm) and/or nickname",
	}, s.handleSetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_health_metrics",
		Description: "Get current weight, BMI, BMI category, and goal progress",
	}, s.handleGetHealthMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_today",
		Description: "List everything logged today with daily totals",
	}, s.handleListToday)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Add (positive) or remove (negative) glasses of water for today",
	}, s.handleLogWater)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_steps",
		Description: "Feed new steps into today's step count",
	}, s.handleRecordSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_steps",
		Description: "Get today's step count and goal progress",
	}, s.handleGetSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_steps",
		Description: "Reset the displayed step count to zero",
	}, s.handleResetSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_data",
		Description: "Export all data as json, yaml, or markdown, optionally to a file",
	}, s.handleExportData)
}

// Tool input/output types

type emptyInput struct{}

type idInput struct {
	ID string `json:"id" jsonschema:"the record ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type recordOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type addMealInput struct {
	Name     string `json:"name" jsonschema:"what was eaten"`
	Calories int    `json:"calories" jsonschema:"energy in kcal"`
	Protein  int    `json:"protein,omitempty" jsonschema:"protein in grams"`
	Carbs    int    `json:"carbs,omitempty" jsonschema:"carbohydrates in grams"`
	Fat      int    `json:"fat,omitempty" jsonschema:"fat in grams"`
	Time     string `json:"time,omitempty" jsonschema:"time of day such as 8:30 AM, defaults to now"`
}

type addActivityInput struct {
	Name            string `json:"name" jsonschema:"activity name such as Morning Run"`
	DurationMinutes int    `json:"duration_minutes" jsonschema:"duration in minutes"`
	Calories        int    `json:"calories,omitempty" jsonschema:"calories burned"`
	Time            string `json:"time,omitempty" jsonschema:"time of day, defaults to now"`
	Icon            string `json:"icon,omitempty" jsonschema:"iOS symbol name"`
	AndroidIcon     string `json:"android_icon,omitempty" jsonschema:"Android material icon name"`
}

type addSymptomInput struct {
	Name     string `json:"name" jsonschema:"symptom name such as Headache"`
	Severity string `json:"severity" jsonschema:"mild, moderate, or severe"`
	Note     string `json:"note,omitempty" jsonschema:"optional note"`
	Time     string `json:"time,omitempty" jsonschema:"time of day, defaults to now"`
}

type logMoodInput struct {
	Mood  string `json:"mood" jsonschema:"Great, Good, Okay, Low, Bad, or a custom label"`
	Value int    `json:"value,omitempty" jsonschema:"1 (bad) to 5 (great), required for custom labels"`
	Emoji string `json:"emoji,omitempty" jsonschema:"display emoji for custom labels"`
	Note  string `json:"note,omitempty" jsonschema:"optional note"`
}

type logWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"weight in kilograms"`
	Note   string  `json:"note,omitempty" jsonschema:"optional note"`
}

type weightOutput struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"`
	Milestone string  `json:"milestone,omitempty"`
	Message   string  `json:"message"`
}

type setWeightGoalInput struct {
	TargetWeight float64 `json:"target_weight" jsonschema:"target weight in kilograms"`
	StartWeight  float64 `json:"start_weight,omitempty" jsonschema:"baseline weight, defaults to the current weight"`
	TargetDate   string  `json:"target_date,omitempty" jsonschema:"target date YYYY-MM-DD"`
}

type setProfileInput struct {
	Height   *float64 `json:"height,omitempty" jsonschema:"height in centimeters"`
	Nickname *string  `json:"nickname,omitempty" jsonschema:"display name"`
}

type metricsOutput struct {
	Height         float64            `json:"height"`
	CurrentWeight  *float64           `json:"current_weight"`
	BMI            *float64           `json:"bmi"`
	BMICategory    string             `json:"bmi_category"`
	WeightProgress float64            `json:"weight_progress"`
	WeightGoal     *models.WeightGoal `json:"weight_goal"`
	Milestones     int                `json:"milestones"`
}

type logWaterInput struct {
	Glasses int `json:"glasses" jsonschema:"glasses to add (up to 20), negative to remove"`
}

type waterOutput struct {
	Glasses    int     `json:"glasses"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
}

type recordStepsInput struct {
	Steps int `json:"steps" jsonschema:"steps taken since the last update"`
}

type stepsOutput struct {
	Available  bool    `json:"available"`
	Steps      int     `json:"steps"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
	Remaining  int     `json:"remaining"`
}

type exportInput struct {
	Format    string `json:"format,omitempty" jsonschema:"json (default), yaml, or markdown"`
	Directory string `json:"directory,omitempty" jsonschema:"write a file here instead of returning the document"`
}

type exportOutput struct {
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddMeal(ctx context.Context, req *mcp.CallToolRequest, input addMealInput) (*mcp.CallToolResult, recordOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, recordOutput{}, errors.New("meal name is required")
	}
	if input.Calories < 0 || input.Protein < 0 || input.Carbs < 0 || input.Fat < 0 {
		return nil, recordOutput{}, errors.New("calories and macros must not be negative")
	}

	m := s.repo.AddMeal(store.MealInput{
		Name:     name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		Time:     input.Time,
	})

	return nil, recordOutput{
		ID:      m.ID,
		Message: fmt.Sprintf("Added meal %s: %d kcal (ID: %s)", m.Name, m.Calories, m.ID),
	}, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.repo.DeleteMeal(input.ID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted meal: %s", input.ID)}, nil
}

func (s *Server) handleAddActivity(ctx context.Context, req *mcp.CallToolRequest, input addActivityInput) (*mcp.CallToolResult, recordOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, recordOutput{}, errors.New("activity name is required")
	}
	if input.DurationMinutes < 0 || input.Calories < 0 {
		return nil, recordOutput{}, errors.New("duration and calories must not be negative")
	}

	a := s.repo.AddActivity(store.ActivityInput{
		Name:        name,
		Duration:    input.DurationMinutes,
		Calories:    input.Calories,
		Time:        input.Time,
		Icon:        input.Icon,
		AndroidIcon: input.AndroidIcon,
	})

	return nil, recordOutput{
		ID:      a.ID,
		Message: fmt.Sprintf("Added activity %s: %d min, %d kcal (ID: %s)", a.Name, a.Duration, a.Calories, a.ID),
	}, nil
}

func (s *Server) handleDeleteActivity(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.repo.DeleteActivity(input.ID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted activity: %s", input.ID)}, nil
}

func (s *Server) handleAddSymptom(ctx context.Context, req *mcp.CallToolRequest, input addSymptomInput) (*mcp.CallToolResult, recordOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, recordOutput{}, errors.New("symptom name is required")
	}
	severity, ok := models.ParseSeverity(input.Severity)
	if !ok {
		return nil, recordOutput{}, fmt.Errorf("unknown severity: %s (use mild, moderate, or severe)", input.Severity)
	}

	sym, err := s.repo.AddSymptom(store.SymptomInput{
		Name:     name,
		Severity: severity,
		Note:     models.StringPtr(strings.TrimSpace(input.Note)),
		Time:     input.Time,
	})
	if err != nil {
		return nil, recordOutput{}, err
	}

	return nil, recordOutput{
		ID:      sym.ID,
		Message: fmt.Sprintf("Added %s symptom %s (ID: %s)", sym.Severity, sym.Name, sym.ID),
	}, nil
}

func (s *Server) handleDeleteSymptom(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.repo.DeleteSymptom(input.ID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted symptom: %s", input.ID)}, nil
}

func (s *Server) handleLogMood(ctx context.Context, req *mcp.CallToolRequest, input logMoodInput) (*mcp.CallToolResult, recordOutput, error) {
	note := models.StringPtr(strings.TrimSpace(input.Note))

	var in store.MoodInput
	if preset, ok := models.LookupMood(input.Mood); ok {
		in = store.MoodInputFromPreset(preset, note)
	} else {
		label := strings.TrimSpace(input.Mood)
		if label == "" {
			return nil, recordOutput{}, errors.New("mood is required")
		}
		in = store.MoodInput{Mood: label, Emoji: input.Emoji, Value: input.Value, Note: note}
	}

	e, err := s.repo.AddMoodEntry(in)
	if err != nil {
		return nil, recordOutput{}, err
	}

	return nil, recordOutput{
		ID:      e.ID,
		Message: fmt.Sprintf("Logged mood %s %s (%d/5) (ID: %s)", e.Emoji, e.Mood, e.Value, e.ID),
	}, nil
}

func (s *Server) handleDeleteMood(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.repo.DeleteMoodEntry(input.ID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted mood entry: %s", input.ID)}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, weightOutput, error) {
	if input.Weight <= 0 {
		return nil, weightOutput{}, fmt.Errorf("weight must be positive, got %.2f", input.Weight)
	}

	e, milestone := s.repo.LogWeight(input.Weight, models.StringPtr(strings.TrimSpace(input.Note)))

	out := weightOutput{
		ID:      e.ID,
		Weight:  e.Weight,
		Message: fmt.Sprintf("Logged weight %.1f kg (ID: %s)", e.Weight, e.ID),
	}
	if milestone != nil {
		out.Milestone = milestone.Message
		out.Message += " - " + out.Milestone
	}
	return nil, out, nil
}

func (s *Server) handleDeleteWeight(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.repo.DeleteWeightEntry(input.ID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted weight entry: %s", input.ID)}, nil
}

func (s *Server) handleSetWeightGoal(ctx context.Context, req *mcp.CallToolRequest, input setWeightGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.TargetWeight <= 0 {
		return nil, simpleOutput{}, errors.New("target weight must be positive")
	}

	start := input.StartWeight
	if start <= 0 {
		current, ok := s.repo.CurrentWeight()
		if !ok {
			return nil, simpleOutput{}, errors.New("no weigh-ins yet: log a weight or pass start_weight")
		}
		start = current
	}

	if input.TargetDate != "" {
		if _, err := parseDate(input.TargetDate); err != nil {
			return nil, simpleOutput{}, err
		}
	}

	s.repo.SetWeightGoal(models.WeightGoal{
		TargetWeight: input.TargetWeight,
		StartWeight:  start,
		StartDate:    models.DayOf(s.now()),
		TargetDate:   input.TargetDate,
	})

	return nil, simpleOutput{
		Message: fmt.Sprintf("Goal set: %.1f kg → %.1f kg", start, input.TargetWeight),
	}, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Height == nil && input.Nickname == nil {
		return nil, simpleOutput{}, errors.New("nothing to update: pass height and/or nickname")
	}

	var changed []string
	if input.Height != nil {
		if *input.Height <= 0 {
			return nil, simpleOutput{}, errors.New("height must be positive")
		}
		s.repo.SetHeight(*input.Height)
		changed = append(changed, fmt.Sprintf("height %.1f cm", *input.Height))
	}
	if input.Nickname != nil {
		s.repo.SetNickname(strings.TrimSpace(*input.Nickname))
		changed = append(changed, fmt.Sprintf("nickname %q", strings.TrimSpace(*input.Nickname)))
	}

	return nil, simpleOutput{Message: "Updated " + strings.Join(changed, ", ")}, nil
}

func (s *Server) handleGetHealthMetrics(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, metricsOutput, error) {
	return nil, s.healthMetrics(), nil
}

func (s *Server) healthMetrics() metricsOutput {
	out := metricsOutput{
		Height:         s.repo.Height(),
		BMICategory:    string(s.repo.BMICategory()),
		WeightProgress: s.repo.WeightProgress(),
		Milestones:     len(s.repo.Milestones()),
	}
	if w, ok := s.repo.CurrentWeight(); ok {
		out.CurrentWeight = &w
	}
	if bmi, ok := s.repo.BMI(); ok {
		out.BMI = &bmi
	}
	if g, ok := s.repo.WeightGoal(); ok {
		out.WeightGoal = &g
	}
	return out
}

func (s *Server) handleListToday(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, todaySummary, error) {
	return nil, s.todaySummary(), nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, waterOutput, error) {
	if input.Glasses == 0 {
		return nil, waterOutput{}, errors.New("glasses must be non-zero")
	}
	if input.Glasses > store.MaxWaterGlasses || input.Glasses < -store.MaxWaterGlasses {
		return nil, waterOutput{}, fmt.Errorf("glasses must be between -%d and %d", store.MaxWaterGlasses, store.MaxWaterGlasses)
	}

	s.repo.AdjustWater(input.Glasses)
	return nil, s.water(), nil
}

func (s *Server) water() waterOutput {
	glasses := s.repo.WaterToday()
	return waterOutput{
		Glasses:    glasses,
		Goal:       s.opts.WaterGoal,
		Percentage: store.WaterProgress(glasses, s.opts.WaterGoal),
	}
}

func (s *Server) handleRecordSteps(ctx context.Context, req *mcp.CallToolRequest, input recordStepsInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Steps == 0 {
		return nil, simpleOutput{}, errors.New("steps must be non-zero")
	}
	snap := s.steps.Add(input.Steps)
	return nil, simpleOutput{Message: fmt.Sprintf("Recorded %d steps (%d today)", input.Steps, snap.Current)}, nil
}

func (s *Server) handleGetSteps(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, stepsOutput, error) {
	return nil, s.stepProgress(), nil
}

func (s *Server) stepProgress() stepsOutput {
	snap := s.steps.Snapshot()
	p := steps.Progress(snap.Current, s.opts.StepsGoal)
	return stepsOutput{
		Available:  snap.Available,
		Steps:      p.Steps,
		Goal:       p.Goal,
		Percentage: p.Percentage,
		Remaining:  p.Remaining,
	}
}

func (s *Server) handleResetSteps(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.steps.Reset()
	return nil, simpleOutput{Message: "Step count reset"}, nil
}

func (s *Server) handleExportData(ctx context.Context, req *mcp.CallToolRequest, input exportInput) (*mcp.CallToolResult, exportOutput, error) {
	format, err := store.ParseFormat(input.Format)
	if err != nil {
		return nil, exportOutput{}, err
	}

	if input.Directory != "" {
		path, err := s.repo.WriteExport(input.Directory, format)
		if err != nil {
			return nil, exportOutput{}, fmt.Errorf("export failed: %w", err)
		}
		return nil, exportOutput{Path: path, Message: fmt.Sprintf("Exported to %s", path)}, nil
	}

	data, err := s.repo.Encode(format)
	if err != nil {
		return nil, exportOutput{}, fmt.Errorf("export failed: %w", err)
	}

	return nil, exportOutput{Content: string(data), Message: fmt.Sprintf("Exported %s (%d bytes)", format, len(data))}, nil
}
