// ABOUTME: CLI command for exporting the session store.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/config"
	"github.com/harperreed/balance/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportDir    string
	exportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export [format]",
	Short: "Export wellness data",
	Long: `Export everything in the session store.

FORMATS:

  json       Full JSON export (the share format)
  yaml       YAML export (same keys, human-readable)
  markdown   Markdown report with one table per collection

The format defaults to export_format from the config, then json.
Files are named balance_day_export_<date>.<ext>.

OPTIONS:

  --output, -o   Directory to write into (default: export_dir or .)
  --stdout       Print instead of writing a file

EXAMPLES:

  balance export --demo                    # Write JSON to the export dir
  balance export yaml --demo -o ~/exports  # Write YAML to ~/exports
  balance export markdown --demo --stdout  # Print a Markdown report`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := exportFormat(args)
		if err != nil {
			return err
		}

		if exportStdout {
			data, err := repo.Encode(format)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		dir := cfg.GetExportDir()
		if exportDir != "" {
			dir = config.ExpandPath(exportDir)
		}

		path, err := repo.WriteExport(dir, format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		color.Green("✓ Exported to %s", path)
		return nil
	},
}

// exportFormat picks the format from the argument, then the config.
func exportFormat(args []string) (store.Format, error) {
	if len(args) > 0 {
		return store.ParseFormat(args[0])
	}
	return cfg.GetExportFormat()
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "", "output directory (default: export_dir or .)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "print to stdout instead of writing a file")
	rootCmd.AddCommand(exportCmd)
}
