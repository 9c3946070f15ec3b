// =============================================================================
// Voyage Data Collector - JSON Sink & Source
// =============================================================================
//
// Whole-record JSON serialization. Writes are one-shot whole-buffer writes
// (no streaming); a failed write leaves no partial state to recover, the
// caller simply retries. Loading reports failure through the error return
// and never panics on malformed documents.
//
// =============================================================================

package exporter

import (
	"encoding/json"
	"fmt"
	"os"

	"voyage-collector/internal/voyage"
)

// SaveJSON writes the record to path, pretty-printed with 2-space indent.
func SaveJSON(path string, r *voyage.Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadJSON reads a whole-record JSON document back into a Record.
func LoadJSON(path string) (*voyage.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var r voyage.Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &r, nil
}
