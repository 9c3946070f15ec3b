// =============================================================================
// Voyage Data Collector - Report Command
// =============================================================================
//
// This file defines the 'report' command, which prints a completeness report,
// format validation results and fuel totals for a saved voyage record.
//
// COMMAND USAGE:
//   voyage report records/voyage_202502.json
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voyage-collector/internal/exporter"
	"voyage-collector/internal/validation"
	"voyage-collector/internal/voyage"
)

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report <record.json>",
	Short: "Print completeness, validation and fuel totals for a saved record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args[0])
	},
}

// init registers the report command with the root command.
func init() {
	rootCmd.AddCommand(reportCmd)
}

// runReport loads one record and prints its derived reports.
func runReport(path string) error {
	rec, err := exporter.LoadJSON(path)
	if err != nil {
		return err
	}

	fmt.Printf("=== Voyage Report: %s ===\n", path)
	fmt.Printf("Vessel:        %s\n", rec.Vessel)
	fmt.Printf("Voyage number: %s\n", rec.VoyageNumber)
	fmt.Printf("Route:         %s (%s) -> %s (%s)\n",
		rec.FromPort, rec.FromPortEU, rec.ToPort, rec.ToPortEU)

	report := voyage.CheckCompleteness(rec)
	fmt.Println("\nCompleteness:")
	fmt.Printf("  Present: %s\n", strings.Join(report.Present, ", "))
	if report.Complete {
		fmt.Println("  ✓ record is complete")
	} else {
		fmt.Printf("  ✗ missing: %s\n", strings.Join(report.Missing, ", "))
	}

	if errs := validation.ValidateRecord(rec); len(errs) > 0 {
		fmt.Println()
		fmt.Print(validation.FormatErrors(errs))
	} else {
		fmt.Println("\nFormat validation: ✓ no errors")
	}

	totals := voyage.FuelTotals(rec)
	fmt.Println("\nFuel totals (MT):")
	printed := 0
	for _, k := range voyage.SortedKeys(totals) {
		if totals[k] > 0 {
			fmt.Printf("  %-28s %10.2f\n", k, totals[k])
			printed++
		}
	}
	if printed == 0 {
		fmt.Println("  no consumption recorded")
	}
	return nil
}
