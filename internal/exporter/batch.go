// =============================================================================
// Voyage Data Collector - Batch Aggregator
// =============================================================================
//
// Collects multiple voyage records and emits a single tabular export:
//
//   - Every record is flattened with the shared separator.
//   - The header is the sorted union of all flattened keys in the batch.
//   - Each record becomes one row; keys absent from a record are blank cells.
//
// The batch is append-only for the lifetime of a session and performs no
// validation or duplicate detection; malformed records export as-is.
// Exporting an empty batch fails with ErrNothingToExport and writes nothing.
//
// =============================================================================

package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/xuri/excelize/v2"

	"voyage-collector/internal/voyage"
)

// ErrNothingToExport is returned when an export is requested on an empty
// batch. No file is produced.
var ErrNothingToExport = errors.New("nothing to export: batch is empty")

// Batch is an ordered, append-only sequence of voyage records.
type Batch struct {
	records []*voyage.Record
	sep     string
}

// NewBatch creates an empty batch using the given flatten separator.
// An empty separator falls back to the default.
func NewBatch(sep string) *Batch {
	if sep == "" {
		sep = voyage.DefaultSeparator
	}
	return &Batch{sep: sep}
}

// Add appends a record. The batch borrows the record read-only; it is never
// mutated by export.
func (b *Batch) Add(r *voyage.Record) {
	b.records = append(b.records, r)
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return len(b.records)
}

// table flattens every record and computes the sorted key union.
func (b *Batch) table() ([]string, []map[string]interface{}) {
	rows := make([]map[string]interface{}, 0, len(b.records))
	union := make(map[string]struct{})
	for _, r := range b.records {
		flat := r.Flatten(b.sep)
		rows = append(rows, flat)
		for k := range flat {
			union[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(union))
	for k := range union {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns, rows
}

// =============================================================================
// CSV EXPORT
// =============================================================================

// ExportCSV writes the batch table to w. The header row is the sorted union
// of all flattened keys; missing keys are blank cells.
func (b *Batch) ExportCSV(w io.Writer) error {
	if len(b.records) == 0 {
		return ErrNothingToExport
	}
	columns, rows := b.table()

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := row[col]; ok {
				cells[i] = formatValue(v)
			}
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the batch table to a file. The empty-batch check runs
// before the file is created, so a failed export leaves no file behind.
func (b *Batch) SaveCSV(path string) error {
	if len(b.records) == 0 {
		return ErrNothingToExport
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := b.ExportCSV(f); err != nil {
		return err
	}
	return f.Close()
}

// =============================================================================
// XLSX EXPORT
// =============================================================================

// batchSheetName is the worksheet holding the batch table.
const batchSheetName = "Voyages"

// SaveXLSX writes the batch table to an XLSX workbook with the same layout
// as the CSV export. Numeric values are written as numbers, not strings.
func (b *Batch) SaveXLSX(path string) error {
	if len(b.records) == 0 {
		return ErrNothingToExport
	}
	columns, rows := b.table()

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(batchSheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(batchSheetName, cell, col); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	for rowIdx, row := range rows {
		for colIdx, col := range columns {
			v, ok := row[col]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(batchSheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
