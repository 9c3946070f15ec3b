// =============================================================================
// Voyage Data Collector - Export Command
// =============================================================================
//
// This file defines the 'export' command, which loads saved voyage JSON
// records and emits tabular exports.
//
// MODES:
//   voyage export                       # batch CSV from every record in the
//                                       # input directory
//   voyage export a.json b.json         # batch CSV from specific records
//   voyage export --format xlsx         # batch XLSX workbook instead of CSV
//   voyage export --single --file a.json  # two-column Field,Value CSV for
//                                         # one record
//
// The batch header is the sorted union of all flattened keys across the
// records; a record missing a key exports a blank cell. Records that fail to
// load are reported and skipped; the export continues with the rest.
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

	"voyage-collector/internal/exporter"
	"voyage-collector/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// exportFormat selects the batch output format: "csv" or "xlsx".
var exportFormat string

// exportOut overrides the output file path.
var exportOut string

// exportSingle exports one record as a two-column Field,Value CSV.
var exportSingle bool

// exportFile is the record to export (used with --single).
var exportFile string

// =============================================================================
// EXPORT COMMAND DEFINITION
// =============================================================================

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export [record.json ...]",
	Short: "Export saved voyage records to CSV or XLSX",
	Long: `The export command flattens saved voyage records into tabular form. With
no arguments it scans the input directory for JSON records; otherwise it
exports exactly the files given.

The batch table has one column per flattened key present anywhere in the
batch (sorted for deterministic ordering) and one row per record, with blank
cells where a record lacks a key.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the export command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(
		&exportFormat,
		"format",
		"csv",
		"Batch output format: csv or xlsx",
	)

	exportCmd.Flags().StringVar(
		&exportOut,
		"out",
		"",
		"Output file path (default is derived from the output directory)",
	)

	exportCmd.Flags().BoolVar(
		&exportSingle,
		"single",
		false,
		"Export one record as a two-column Field,Value CSV (use with --file)",
	)

	exportCmd.Flags().StringVar(
		&exportFile,
		"file",
		"",
		"Path to the record to export (used with --single)",
	)
}

// =============================================================================
// MAIN EXPORT FUNCTION
// =============================================================================

// runExport orchestrates record loading and tabular export.
func runExport(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := utils.EnsureDirectories(cfg.OutputDir); err != nil {
		return err
	}

	log, flush, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer flush()

	clock := utils.SystemClock{}

	// =========================================================================
	// SINGLE-RECORD MODE
	// =========================================================================

	if exportSingle {
		if exportFile == "" {
			if len(args) == 1 {
				exportFile = args[0]
			} else {
				return fmt.Errorf("--single requires --file (or exactly one argument)")
			}
		}
		rec, lerr := exporter.LoadJSON(exportFile)
		if lerr != nil {
			return lerr
		}

		out := exportOut
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(exportFile), filepath.Ext(exportFile))
			out = filepath.Join(cfg.OutputDir, base+".csv")
		}
		if serr := exporter.SaveRecordCSV(out, rec, cfg.KeySeparator); serr != nil {
			return serr
		}
		fmt.Printf("  ✓ %s -> %s\n", exportFile, out)
		log.Infow("single record exported", "source", exportFile, "output", out)
		return nil
	}

	// =========================================================================
	// BATCH MODE
	// =========================================================================

	files := args
	if len(files) == 0 {
		files, err = discoverRecordFiles(cfg.InputDir)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", cfg.InputDir, err)
		}
	}
	if len(files) == 0 {
		fmt.Printf("No JSON records found in %s.\n", cfg.InputDir)
		return nil
	}

	batch := exporter.NewBatch(cfg.KeySeparator)
	var loadErrors int
	for _, file := range files {
		rec, lerr := exporter.LoadJSON(file)
		if lerr != nil {
			loadErrors++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), lerr)
			log.Warnw("record skipped", "file", file, "error", lerr)
			continue
		}
		batch.Add(rec)
	}

	out := exportOut
	if out == "" {
		name := utils.GenerateOutputFileName("voyage_batch_{timestamp}."+exportFormat, "", clock)
		out = filepath.Join(cfg.OutputDir, name)
	}

	switch exportFormat {
	case "csv":
		err = batch.SaveCSV(out)
	case "xlsx":
		err = batch.SaveXLSX(out)
	default:
		return fmt.Errorf("unsupported format %q: must be csv or xlsx", exportFormat)
	}
	if err != nil {
		if errors.Is(err, exporter.ErrNothingToExport) {
			fmt.Println("Nothing to export: no records could be loaded.")
			return nil
		}
		return err
	}

	fmt.Println("\n=== Export Complete ===")
	fmt.Printf("Records exported: %d\n", batch.Len())
	fmt.Printf("Load errors:      %d\n", loadErrors)
	fmt.Printf("Output file:      %s\n", out)
	log.Infow("batch exported", "records", batch.Len(), "errors", loadErrors, "output", out)
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// discoverRecordFiles scans the input directory for saved JSON records.
func discoverRecordFiles(inputDir string) ([]string, error) {
	var files []string

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return files, nil
}
