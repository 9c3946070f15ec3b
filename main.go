// =============================================================================
// Voyage Data Collector - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Voyage Data Collector CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   voyage collect        - Run an interactive voyage data collection session
//   voyage export         - Export saved voyage records to CSV/XLSX
//   voyage report         - Print completeness and fuel totals for a record
//   voyage demo           - Write the built-in demo record to disk
//   voyage version        - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"voyage-collector/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
