// =============================================================================
// Voyage Data Collector - Collect Command
// =============================================================================
//
// This file defines the 'collect' command, which runs one or more interactive
// voyage collection sessions against the console.
//
// FLOW:
//   1. Load configuration and bootstrap directories
//   2. For each requested voyage:
//      a. Run the prompt-driven collection session
//      b. Print a completeness report and fuel totals
//      c. Save the record as pretty-printed JSON (optionally CSV as well)
//      d. Copy the saved file to the archive directory
//   3. With --count > 1, additionally write a batch CSV unioned across the
//      collected voyages
//
// OUTCOMES:
//   - Ctrl-C or closed input mid-session discards the partial record and
//     exits with a clear "interrupted" message, not an error.
//   - I/O failures while saving are reported per file; the session continues.
//   - Unanticipated panics are caught at this boundary and reported
//     generically; the process never crashes with a raw stack trace.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"voyage-collector/internal/collector"
	"voyage-collector/internal/exporter"
	"voyage-collector/internal/voyage"
	"voyage-collector/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// collectCount is the number of voyages to collect in this session.
var collectCount int

// collectCSV also writes a per-record Field,Value CSV next to each JSON.
var collectCSV bool

// =============================================================================
// COLLECT COMMAND DEFINITION
// =============================================================================

// collectCmd represents the 'collect' command.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run an interactive voyage data collection session",
	Long: `The collect command asks one question per field on the console, validating
each response before moving on. Invalid responses re-prompt; optional fields
accept an empty response. Fuel consumption is collected as a full matrix of
fuel type x engine type for both the sailing and port stages.

Each collected voyage is saved as pretty-printed JSON in the output directory
and copied to the archive directory. Interrupting the session with Ctrl-C
discards the partially collected voyage.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the collect command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().IntVar(
		&collectCount,
		"count",
		1,
		"Number of voyages to collect in this session",
	)

	collectCmd.Flags().BoolVar(
		&collectCSV,
		"csv",
		false,
		"Also write a per-record Field,Value CSV next to each saved JSON",
	)
}

// =============================================================================
// MAIN COLLECTION FUNCTION
// =============================================================================

// runCollect orchestrates the collection session(s).
func runCollect() (err error) {
	// Outermost guard: an unanticipated panic becomes a generic failure
	// instead of a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error during collection: %v", r)
		}
	}()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION AND BOOTSTRAP
	// =========================================================================

	fmt.Println("=== Voyage Data Collector ===")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := utils.EnsureDirectories(cfg.OutputDir, cfg.ArchiveDir); err != nil {
		return err
	}

	log, flush, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer flush()

	prompter := collector.NewConsolePrompter(os.Stdin, os.Stdout)
	defer prompter.Close()

	col := collector.New(prompter, log)
	clock := utils.SystemClock{}
	batch := exporter.NewBatch(cfg.KeySeparator)

	// =========================================================================
	// STEP 2: COLLECT VOYAGES
	// =========================================================================

	if collectCount < 1 {
		collectCount = 1
	}
	for i := 1; i <= collectCount; i++ {
		if collectCount > 1 {
			fmt.Printf("\n--- Voyage %d of %d ---\n", i, collectCount)
		}

		rec, cerr := col.Collect()
		if cerr != nil {
			if errors.Is(cerr, collector.ErrInterrupted) {
				fmt.Println("\nCollection interrupted. Partial data discarded.")
				log.Infow("session interrupted", "voyages_completed", batch.Len())
				return nil
			}
			return fmt.Errorf("collection failed: %w", cerr)
		}

		printSummary(rec)

		// Save errors are reported but do not abort the session; the
		// operator can re-export the remaining voyages afterwards.
		name := utils.GenerateOutputFileName(cfg.FilenamePattern, rec.VoyageNumber, clock)
		jsonPath := filepath.Join(cfg.OutputDir, name)
		if serr := exporter.SaveJSON(jsonPath, rec); serr != nil {
			fmt.Printf("  ✗ save failed: %v\n", serr)
			log.Errorw("save failed", "path", jsonPath, "error", serr)
		} else {
			fmt.Printf("  ✓ saved %s\n", jsonPath)
			if _, aerr := utils.ArchiveFile(jsonPath, cfg.ArchiveDir); aerr != nil {
				fmt.Printf("  ✗ archive failed: %v\n", aerr)
				log.Warnw("archive failed", "path", jsonPath, "error", aerr)
			}
		}

		if collectCSV {
			csvPath := strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath)) + ".csv"
			if serr := exporter.SaveRecordCSV(csvPath, rec, cfg.KeySeparator); serr != nil {
				fmt.Printf("  ✗ CSV export failed: %v\n", serr)
				log.Errorw("csv export failed", "path", csvPath, "error", serr)
			} else {
				fmt.Printf("  ✓ saved %s\n", csvPath)
			}
		}

		batch.Add(rec)
	}

	// =========================================================================
	// STEP 3: BATCH EXPORT
	// =========================================================================

	if collectCount > 1 {
		name := utils.GenerateOutputFileName("voyage_batch_{timestamp}.csv", "", clock)
		batchPath := filepath.Join(cfg.OutputDir, name)
		if berr := batch.SaveCSV(batchPath); berr != nil {
			fmt.Printf("  ✗ batch export failed: %v\n", berr)
			log.Errorw("batch export failed", "path", batchPath, "error", berr)
		} else {
			fmt.Printf("  ✓ saved %s (%d voyages)\n", batchPath, batch.Len())
		}
	}

	fmt.Println("\n=== Collection Complete ===")
	fmt.Printf("Voyages collected: %d\n", batch.Len())
	return nil
}

// printSummary prints the completeness report and fuel totals for a voyage.
func printSummary(r *voyage.Record) {
	report := voyage.CheckCompleteness(r)
	fmt.Println("\nCompleteness:")
	if report.Complete {
		fmt.Println("  ✓ all required fields present")
	} else {
		fmt.Printf("  ✗ missing: %s\n", strings.Join(report.Missing, ", "))
	}

	totals := voyage.FuelTotals(r)
	nonzero := 0
	for _, k := range voyage.SortedKeys(totals) {
		if totals[k] > 0 {
			if nonzero == 0 {
				fmt.Println("Fuel totals (MT):")
			}
			fmt.Printf("  %-28s %10.2f\n", k, totals[k])
			nonzero++
		}
	}
	if nonzero == 0 {
		fmt.Println("Fuel totals: no consumption recorded")
	}
}
