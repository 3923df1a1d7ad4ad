// ABOUTME: Root Cobra command for the balance CLI.
// ABOUTME: Loads config and builds the logger and session store in PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/harperreed/balance/internal/config"
	"github.com/harperreed/balance/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
	repo   *store.Store

	demoFlag     bool
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "balance",
	Short: "Personal wellness tracker",
	Long: `Balance tracks meals, activities, symptoms, moods, weight, water, and steps.

Tracked data lives in memory for one session. Only preferences are saved,
so pair the CLI with --demo for a quick look or run the MCP server to keep
a store alive for a whole assistant conversation.

QUICK START:

  $ balance today --demo            # Dashboard with sample data
  $ balance bmi --height 175 --weight 72
  $ balance export json --demo -o ~/exports
  $ balance config set height 175   # Remember your height

MCP INTEGRATION:

  Run 'balance mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "balance": { "command": "balance", "args": ["mcp"] }
    }
  }

CONFIGURATION:

  Preferences are stored at ~/.config/balance/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't need a store
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.GetLogLevel()
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logger, err = config.NewLogger(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		repo = cfg.NewStore(logger)
		if demoFlag && !cfg.DemoData {
			store.SeedDemo(repo)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&demoFlag, "demo", false, "seed the session with sample data")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
}
