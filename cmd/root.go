// =============================================================================
// Voyage Data Collector - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// (collect, export, report, demo, version) are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (voyage)
//   ├── collectCmd (voyage collect)
//   ├── exportCmd  (voyage export)
//   ├── reportCmd  (voyage report)
//   ├── demoCmd    (voyage demo)
//   └── versionCmd (voyage version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose). Each
//   subcommand loads the configuration and logger through the helpers below;
//   a .env file in the working directory is honored before VOYAGE_* overrides
//   are read.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"voyage-collector/internal/config"
	"voyage-collector/pkg/utils"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug-level logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "voyage",
	Short: "Voyage Data Collector - Capture voyage and fuel consumption records for emissions reporting",
	Long: `Voyage Data Collector is an interactive CLI tool that gathers structured
voyage and fuel-consumption records for maritime emissions reporting (EU ETS
and FuelEU Maritime), validates field formats, and serializes the result to
JSON, CSV and XLSX.

Key Features:
  - Prompt-driven collection with per-field format validation and re-prompting
  - Full sailing and port fuel-consumption matrices (fuel type x engine type)
  - Completeness reporting against the required field set
  - Deterministic flattened exports: per-record CSV and multi-voyage tables

Example Usage:
  voyage collect                       # Run one interactive collection session
  voyage collect --count 3 --csv       # Collect three voyages, also write CSVs
  voyage export --format xlsx          # Export all saved records to a workbook
  voyage report records/voyage_42.json # Completeness and fuel totals`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads .env (when present) and the YAML configuration.
func loadConfig() (*config.Config, error) {
	// Missing .env files are fine; explicit variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a file-backed logger so interactive prompts stay clean.
// The returned func flushes buffered entries and must be deferred.
func newLogger(cfg *config.Config) (*zap.SugaredLogger, func(), error) {
	if err := utils.EnsureDirectories(filepath.Dir(cfg.LogFile)); err != nil {
		return nil, nil, err
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	} else {
		switch cfg.LogLevel {
		case "debug":
			level = zapcore.DebugLevel
		case "warn":
			level = zapcore.WarnLevel
		case "error":
			level = zapcore.ErrorLevel
		}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	sugar := logger.Sugar()
	return sugar, func() { _ = logger.Sync() }, nil
}
