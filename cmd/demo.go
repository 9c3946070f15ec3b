// =============================================================================
// Voyage Data Collector - Demo Command
// =============================================================================
//
// This file defines the 'demo' command, which writes the built-in sample
// voyage to the output directory as JSON and CSV. Useful for trying the
// export and report commands without an interactive session.
//
// COMMAND USAGE:
//   voyage demo
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"voyage-collector/internal/exporter"
	"voyage-collector/internal/voyage"
	"voyage-collector/pkg/utils"
)

// demoCmd represents the 'demo' command.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write the built-in demo voyage record to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

// init registers the demo command with the root command.
func init() {
	rootCmd.AddCommand(demoCmd)
}

// runDemo saves the demo record as JSON and CSV.
func runDemo() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := utils.EnsureDirectories(cfg.OutputDir); err != nil {
		return err
	}

	rec := voyage.DemoRecord()
	name := utils.GenerateOutputFileName(cfg.FilenamePattern, rec.VoyageNumber, utils.SystemClock{})
	jsonPath := filepath.Join(cfg.OutputDir, name)
	if err := exporter.SaveJSON(jsonPath, rec); err != nil {
		return err
	}
	fmt.Printf("  ✓ saved %s\n", jsonPath)

	csvPath := jsonPath[:len(jsonPath)-len(filepath.Ext(jsonPath))] + ".csv"
	if err := exporter.SaveRecordCSV(csvPath, rec, cfg.KeySeparator); err != nil {
		return err
	}
	fmt.Printf("  ✓ saved %s\n", csvPath)

	printSummary(rec)
	return nil
}
