// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server over one session store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/balance/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and keeps one wellness store alive
until it exits. Logs go to stderr.

AVAILABLE TOOLS:

  add_meal, delete_meal             Log or remove meals
  add_activity, delete_activity     Log or remove exercise
  add_symptom, delete_symptom       Log or remove symptoms
  log_mood, delete_mood             Log or remove moods
  log_weight, delete_weight         Record weigh-ins (may unlock milestones)
  set_weight_goal                   Set the target weight
  set_profile                       Update height and nickname
  get_health_metrics                Weight, BMI, category, goal progress
  list_today                        Everything logged today with totals
  log_water                         Add or remove glasses of water
  record_steps, get_steps           Feed and read the step counter
  reset_steps                       Zero the displayed step count
  export_data                       Export as json, yaml, or markdown

AVAILABLE RESOURCES:

  balance://today     Today's log and totals
  balance://profile   Profile, BMI, and goal
  balance://export    Full JSON export`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, mcp.Options{
			StepsGoal: cfg.GetStepsGoal(),
			WaterGoal: cfg.GetWaterGoal(),
			Logger:    logger.Named("mcp"),
		})
		if err != nil {
			return err
		}
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
