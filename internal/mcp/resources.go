// ABOUTME: MCP resource implementations for the balance store.
// ABOUTME: Provides balance://today, balance://profile, and balance://export resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/balance/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// balance://today - everything logged today plus daily totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "balance://today",
		Name:        "Today's Wellness Log",
		Description: "Meals, activities, symptoms, moods, water, and steps for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// balance://profile - height, weight, BMI, and goal progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "balance://profile",
		Name:        "Wellness Profile",
		Description: "Height, current weight, BMI, weight goal, and progress",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	// balance://export - the full JSON export document
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "balance://export",
		Name:        "Full Export",
		Description: "All stored data in the JSON export format",
		MIMEType:    "application/json",
	}, s.handleExportResource)
}

// todaySummary is the day view shared by list_today and balance://today.
type todaySummary struct {
	Date       string                 `json:"date"`
	Meals      []models.Meal          `json:"meals"`
	Activities []models.Activity      `json:"activities"`
	Symptoms   []models.Symptom       `json:"symptoms"`
	Moods      []models.MoodEntry     `json:"moods"`
	Nutrition  models.NutritionTotals `json:"nutrition"`
	Exercise   models.ActivityTotals  `json:"exercise"`
	Water      waterOutput            `json:"water"`
	Steps      stepsOutput            `json:"steps"`
}

func (s *Server) todaySummary() todaySummary {
	return todaySummary{
		Date:       models.DayOf(s.now()),
		Meals:      nonNil(s.repo.TodaysMeals()),
		Activities: nonNil(s.repo.TodaysActivities()),
		Symptoms:   nonNil(s.repo.TodaysSymptoms()),
		Moods:      nonNil(s.repo.TodaysMoodEntries()),
		Nutrition:  s.repo.TodaysNutrition(),
		Exercise:   s.repo.TodaysActivityTotals(),
		Water:      s.water(),
		Steps:      s.stepProgress(),
	}
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// parseDate validates a YYYY-MM-DD date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("balance://today", s.todaySummary())
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := struct {
		Nickname string `json:"nickname"`
		metricsOutput
		MilestoneList []models.Milestone `json:"milestone_list"`
	}{
		Nickname:      s.repo.Nickname(),
		metricsOutput: s.healthMetrics(),
		MilestoneList: nonNil(s.repo.Milestones()),
	}
	return jsonResource("balance://profile", result)
}

func (s *Server) handleExportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := s.repo.ExportJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "balance://export",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
