// ABOUTME: CLI commands for viewing and updating preferences.
// ABOUTME: Wraps config.Load, Config.Set, and Config.Save.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change preferences",
	Long: `View or change balance preferences.

KEYS:

  height          Profile height in cm (default 170)
  nickname        Display name used in exports
  export_dir      Where export files go (supports ~)
  export_format   json, yaml, or markdown
  log_level       debug, info, warn, or error
  demo_data       Seed every session with sample data (true/false)
  steps_goal      Daily step target (default 10000)
  water_goal      Daily glass target (default 8)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		faint := color.New(color.Faint)
		faint.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Example: `  balance config set height 175
  balance config set export_dir ~/Documents/balance`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
