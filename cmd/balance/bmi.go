// ABOUTME: CLI command for computing BMI.
// ABOUTME: Records the weight in the session store and reports BMI and category.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/models"
	"github.com/spf13/cobra"
)

var (
	bmiHeight float64
	bmiWeight float64
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Calculate BMI",
	Long: `Calculate body mass index from height (cm) and weight (kg).

Height defaults to the configured profile height. Without --weight the
current session weight is used, which only exists with --demo.

CATEGORIES:

  < 18.5        Underweight
  18.5 - 24.9   Normal
  25 - 29.9     Overweight
  >= 30         Obese

EXAMPLES:

  balance bmi --weight 72                # Uses configured height
  balance bmi --height 180 --weight 85
  balance bmi --demo                     # Latest demo weigh-in`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("height") {
			if bmiHeight <= 0 {
				return fmt.Errorf("height must be positive, got %.1f", bmiHeight)
			}
			repo.SetHeight(bmiHeight)
		}
		if cmd.Flags().Changed("weight") {
			if bmiWeight <= 0 {
				return fmt.Errorf("weight must be positive, got %.1f", bmiWeight)
			}
			repo.AddWeightEntry(bmiWeight, nil)
		}

		bmi, ok := repo.BMI()
		if !ok {
			return errors.New("no weight recorded: pass --weight or --demo")
		}
		weight, _ := repo.CurrentWeight()
		category := repo.BMICategory()

		fmt.Fprintf(cmd.OutOrStdout(), "Height:   %.1f cm\n", repo.Height())
		fmt.Fprintf(cmd.OutOrStdout(), "Weight:   %.1f kg\n", weight)
		fmt.Fprintf(cmd.OutOrStdout(), "BMI:      %.1f ", bmi)
		categoryColor(category).Fprintln(cmd.OutOrStdout(), category)
		return nil
	},
}

// categoryColor maps a BMI band to its display color.
func categoryColor(c models.BMICategory) *color.Color {
	switch c {
	case models.BMINormal:
		return color.New(color.FgGreen)
	case models.BMIOverweight:
		return color.New(color.FgYellow)
	case models.BMIObese, models.BMIUnderweight:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}

func init() {
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "height in centimeters")
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "weight in kilograms")
	rootCmd.AddCommand(bmiCmd)
}
