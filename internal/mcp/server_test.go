// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer creates a server over a fresh in-memory store.
func setupTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	st := store.New()
	server, err := NewServer(st, Options{})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	t.Cleanup(server.Close)

	return server, st
}

func TestNewServer(t *testing.T) {
	server, _ := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
	if server.opts.StepsGoal != 10000 {
		t.Errorf("StepsGoal = %d, want 10000", server.opts.StepsGoal)
	}
	if server.opts.WaterGoal != store.DefaultWaterGoal {
		t.Errorf("WaterGoal = %d, want %d", server.opts.WaterGoal, store.DefaultWaterGoal)
	}
}

func TestHandleAddMeal(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     addMealInput
		wantErr   bool
		errSubstr string
	}{
		{
			name:  "valid meal",
			input: addMealInput{Name: "Oatmeal", Calories: 320, Protein: 12, Carbs: 54, Fat: 6},
		},
		{
			name:  "valid meal with time",
			input: addMealInput{Name: "Salad", Calories: 450, Time: "12:30 PM"},
		},
		{
			name:      "empty name",
			input:     addMealInput{Name: "   ", Calories: 100},
			wantErr:   true,
			errSubstr: "name is required",
		},
		{
			name:      "negative calories",
			input:     addMealInput{Name: "Toast", Calories: -5},
			wantErr:   true,
			errSubstr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleAddMeal(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Error %q should contain %q", err.Error(), tt.errSubstr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if output.ID == "" {
				t.Error("Expected non-empty ID")
			}
			if !strings.Contains(output.Message, tt.input.Name) {
				t.Errorf("Message %q should mention %q", output.Message, tt.input.Name)
			}
		})
	}

	if got := len(st.Meals()); got != 2 {
		t.Errorf("stored meals = %d, want 2", got)
	}
}

func TestHandleDeleteMeal(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	_, added, err := server.handleAddMeal(ctx, &mcp.CallToolRequest{}, addMealInput{Name: "Soup", Calories: 200})
	require.NoError(t, err)

	_, _, err = server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, idInput{ID: added.ID})
	require.NoError(t, err)
	assert.Empty(t, st.Meals())

	// Unknown ids are a silent no-op.
	_, _, err = server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, idInput{ID: "missing"})
	assert.NoError(t, err)
}

func TestHandleAddActivity(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleAddActivity(ctx, &mcp.CallToolRequest{}, addActivityInput{
		Name:            "Morning Run",
		DurationMinutes: 30,
		Calories:        280,
		Icon:            "figure.run",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.ID)

	totals := st.TodaysActivityTotals()
	assert.Equal(t, 30, totals.Minutes)
	assert.Equal(t, 280, totals.Calories)

	_, _, err = server.handleAddActivity(ctx, &mcp.CallToolRequest{}, addActivityInput{Name: "Walk", DurationMinutes: -1})
	assert.Error(t, err)

	_, _, err = server.handleDeleteActivity(ctx, &mcp.CallToolRequest{}, idInput{ID: output.ID})
	require.NoError(t, err)
	assert.Empty(t, st.Activities())
}

func TestHandleAddSymptom(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   addSymptomInput
		wantErr bool
	}{
		{name: "mild", input: addSymptomInput{Name: "Headache", Severity: "mild"}},
		{name: "severe with note", input: addSymptomInput{Name: "Nausea", Severity: "Severe", Note: "after lunch"}},
		{name: "unknown severity", input: addSymptomInput{Name: "Cough", Severity: "extreme"}, wantErr: true},
		{name: "missing name", input: addSymptomInput{Severity: "mild"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleAddSymptom(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, output.ID)
		})
	}

	symptoms := st.Symptoms()
	require.Len(t, symptoms, 2)
	require.NotNil(t, symptoms[1].Note)
	assert.Equal(t, "after lunch", *symptoms[1].Note)
	assert.Nil(t, symptoms[0].Note)

	_, _, err := server.handleDeleteSymptom(ctx, &mcp.CallToolRequest{}, idInput{ID: symptoms[0].ID})
	require.NoError(t, err)
	assert.Len(t, st.Symptoms(), 1)
}

func TestHandleLogMood(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logMoodInput
		wantValue int
		wantEmoji string
		wantErr   bool
	}{
		{name: "preset", input: logMoodInput{Mood: "Great"}, wantValue: 5, wantEmoji: "😊"},
		{name: "preset any case", input: logMoodInput{Mood: "low"}, wantValue: 2, wantEmoji: "😔"},
		{name: "custom label", input: logMoodInput{Mood: "Calm", Value: 4, Emoji: "😌"}, wantValue: 4, wantEmoji: "😌"},
		{name: "custom out of range", input: logMoodInput{Mood: "Ecstatic", Value: 9}, wantErr: true},
		{name: "empty", input: logMoodInput{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogMood(ctx, &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			entries := st.MoodEntries()
			last := entries[len(entries)-1]
			assert.Equal(t, output.ID, last.ID)
			assert.Equal(t, tt.wantValue, last.Value)
			assert.Equal(t, tt.wantEmoji, last.Emoji)
		})
	}

	_, _, err := server.handleDeleteMood(ctx, &mcp.CallToolRequest{}, idInput{ID: st.MoodEntries()[0].ID})
	require.NoError(t, err)
	assert.Len(t, st.MoodEntries(), 2)
}

func TestHandleLogWeightMilestone(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleSetWeightGoal(ctx, &mcp.CallToolRequest{}, setWeightGoalInput{
		TargetWeight: 70,
		StartWeight:  80,
	})
	require.NoError(t, err)

	_, output, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{Weight: 79.6})
	require.NoError(t, err)
	assert.Empty(t, output.Milestone, "0.4 kg lost is not a milestone")

	_, output, err = server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{Weight: 79})
	require.NoError(t, err)
	assert.Equal(t, "Down 1.0 kg from start!", output.Milestone)
	assert.Contains(t, output.Message, output.Milestone)
	assert.Len(t, st.Milestones(), 1)

	_, _, err = server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{Weight: 0})
	assert.Error(t, err)
}

func TestHandleLogWeightConcurrent(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()
	st.SetWeightGoal(models.WeightGoal{StartWeight: 100, TargetWeight: 50})

	var wg sync.WaitGroup
	results := make([]weightOutput, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, out, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{Weight: float64(60 + i)})
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	byWeight := make(map[float64]string)
	for _, m := range st.Milestones() {
		byWeight[m.Weight] = m.Message
	}
	for _, out := range results {
		assert.Equal(t, byWeight[out.Weight], out.Milestone, "weight %.0f", out.Weight)
	}
}

func TestHandleSetWeightGoal(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	// No weigh-ins and no explicit start weight.
	_, _, err := server.handleSetWeightGoal(ctx, &mcp.CallToolRequest{}, setWeightGoalInput{TargetWeight: 70})
	require.Error(t, err)

	st.AddWeightEntry(82, nil)
	_, _, err = server.handleSetWeightGoal(ctx, &mcp.CallToolRequest{}, setWeightGoalInput{
		TargetWeight: 75,
		TargetDate:   "2025-06-01",
	})
	require.NoError(t, err)

	goal, ok := st.WeightGoal()
	require.True(t, ok)
	assert.Equal(t, 82.0, goal.StartWeight)
	assert.Equal(t, 75.0, goal.TargetWeight)
	assert.Equal(t, "2025-06-01", goal.TargetDate)

	_, _, err = server.handleSetWeightGoal(ctx, &mcp.CallToolRequest{}, setWeightGoalInput{
		TargetWeight: 75,
		TargetDate:   "June 1st",
	})
	assert.Error(t, err)
}

func TestHandleSetProfileAndMetrics(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{})
	assert.Error(t, err)

	height := 180.0
	nickname := " Sam "
	_, _, err = server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{Height: &height, Nickname: &nickname})
	require.NoError(t, err)
	assert.Equal(t, 180.0, st.Height())
	assert.Equal(t, "Sam", st.Nickname())

	_, metrics, err := server.handleGetHealthMetrics(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.Nil(t, metrics.CurrentWeight)
	assert.Nil(t, metrics.BMI)
	assert.Equal(t, 0.0, metrics.WeightProgress)

	st.AddWeightEntry(85, nil)
	_, metrics, err = server.handleGetHealthMetrics(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	require.NotNil(t, metrics.BMI)
	assert.InDelta(t, 26.23, *metrics.BMI, 0.01)
	assert.Equal(t, "Overweight", metrics.BMICategory)

	bad := -1.0
	_, _, err = server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{Height: &bad})
	assert.Error(t, err)
}

func TestHandleLogWater(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{Glasses: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, output.Glasses)
	assert.InDelta(t, 37.5, output.Percentage, 0.001)

	_, output, err = server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{Glasses: -5})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Glasses, "water never goes negative")

	_, _, err = server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{})
	assert.Error(t, err)
}

func TestHandleLogWaterBounds(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		glasses int
		wantErr bool
		want    int
	}{
		{name: "huge add", glasses: 20_000_000, wantErr: true},
		{name: "huge remove", glasses: -20_000_000, wantErr: true},
		{name: "max add", glasses: store.MaxWaterGlasses, want: store.MaxWaterGlasses},
		{name: "max remove", glasses: -store.MaxWaterGlasses, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{Glasses: tt.glasses})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Glasses)
			assert.Equal(t, tt.want, st.WaterToday())
		})
	}
}

func TestHandleSteps(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleRecordSteps(ctx, &mcp.CallToolRequest{}, recordStepsInput{Steps: 2500})
	require.NoError(t, err)

	_, out, err := server.handleGetSteps(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.True(t, out.Available)
	assert.Equal(t, 10000, out.Goal)
	assert.InDelta(t, 25.0, out.Percentage, 0.001)
	assert.Equal(t, 7500, out.Remaining)

	_, _, err = server.handleResetSteps(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	_, out, err = server.handleGetSteps(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Steps)

	_, _, err = server.handleRecordSteps(ctx, &mcp.CallToolRequest{}, recordStepsInput{})
	assert.Error(t, err)
}

func TestHandleRecordStepsVisibleImmediately(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	for i := 1; i <= 500; i++ {
		_, _, err := server.handleRecordSteps(ctx, &mcp.CallToolRequest{}, recordStepsInput{Steps: 10})
		require.NoError(t, err)

		_, out, err := server.handleGetSteps(ctx, &mcp.CallToolRequest{}, emptyInput{})
		require.NoError(t, err)
		require.Equal(t, i*10, out.Steps)
	}
}

func TestHandleListToday(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	_, empty, err := server.handleListToday(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Meals)
	assert.Empty(t, empty.Meals)

	st.AddMeal(store.MealInput{Name: "Eggs", Calories: 150, Protein: 12})
	st.AddMeal(store.MealInput{Name: "Toast", Calories: 100, Carbs: 18})

	_, today, err := server.handleListToday(ctx, &mcp.CallToolRequest{}, emptyInput{})
	require.NoError(t, err)
	assert.Len(t, today.Meals, 2)
	assert.Equal(t, 250, today.Nutrition.Calories)
	assert.Equal(t, 12, today.Nutrition.Protein)
	assert.Equal(t, 18, today.Nutrition.Carbs)
}

func TestHandleExportData(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()
	st.AddMeal(store.MealInput{Name: "Eggs", Calories: 150})

	t.Run("inline json", func(t *testing.T) {
		_, out, err := server.handleExportData(ctx, &mcp.CallToolRequest{}, exportInput{})
		require.NoError(t, err)

		doc, err := store.ParseExport([]byte(out.Content))
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Summary.TotalMeals)
		assert.Equal(t, "User", doc.Nickname)
	})

	t.Run("inline markdown", func(t *testing.T) {
		_, out, err := server.handleExportData(ctx, &mcp.CallToolRequest{}, exportInput{Format: "md"})
		require.NoError(t, err)
		assert.Contains(t, out.Content, "Eggs")
	})

	t.Run("to directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports")
		_, out, err := server.handleExportData(ctx, &mcp.CallToolRequest{}, exportInput{Format: "yaml", Directory: dir})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filepath.Base(out.Path), "balance_day_export_"))
		assert.Equal(t, ".yaml", filepath.Ext(out.Path))

		_, err = os.Stat(out.Path)
		assert.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := server.handleExportData(ctx, &mcp.CallToolRequest{}, exportInput{Format: "csv"})
		assert.Error(t, err)
	})
}

func TestHandleTodayResource(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()
	st.AddWater()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "balance://today", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var got todaySummary
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
	assert.Equal(t, 1, got.Water.Glasses)
	assert.NotNil(t, got.Symptoms)
}

func TestHandleProfileResource(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()
	st.SetNickname("Ari")
	st.AddWeightEntry(70, nil)

	result, err := server.handleProfileResource(ctx, &mcp.ReadResourceRequest{})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
	assert.Equal(t, "Ari", got["nickname"])
	assert.Equal(t, 70.0, got["current_weight"])
	assert.Equal(t, []any{}, got["milestone_list"])
}

func TestHandleExportResource(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleExportResource(ctx, &mcp.ReadResourceRequest{})
	require.NoError(t, err)

	doc, err := store.ParseExport([]byte(result.Contents[0].Text))
	require.NoError(t, err)
	assert.Nil(t, doc.WeightGoal)
	assert.Empty(t, doc.WeightEntries)
}
