// =============================================================================
// Voyage Data Collector - Single-Record CSV Sink
// =============================================================================
//
// Writes one flattened voyage record as a two-column table:
//
//   Field,Value
//   arrival_date,21/02/2025
//   ...
//
// Rows are emitted in sorted key order so that re-exporting the same record
// always produces byte-identical output.
//
// =============================================================================

package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"voyage-collector/internal/voyage"
)

// WriteRecordCSV writes the flattened record to w as a Field,Value table.
func WriteRecordCSV(w io.Writer, r *voyage.Record, sep string) error {
	flat := r.Flatten(sep)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Field", "Value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, k := range keys {
		if err := cw.Write([]string{k, formatValue(flat[k])}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveRecordCSV writes the record's Field,Value table to a file.
func SaveRecordCSV(path string, r *voyage.Record, sep string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteRecordCSV(f, r, sep); err != nil {
		return err
	}
	return f.Close()
}

// formatValue serializes a leaf scalar for tabular output. Non-native types
// fall back to stringification.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
