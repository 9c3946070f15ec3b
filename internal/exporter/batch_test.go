package exporter

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"voyage-collector/internal/voyage"
)

// two records whose fuel matrices use disjoint labels, so their flattened
// key sets differ.
func disjointRecords() (*voyage.Record, *voyage.Record) {
	a := &voyage.Record{
		IMONumber:    "1111111",
		Vessel:       "Alpha",
		VoyageNumber: "A-1",
		SailingFuel:  voyage.FuelMatrix{"HFO": {"ME": 10.0}},
	}
	b := &voyage.Record{
		IMONumber:    "2222222",
		Vessel:       "Beta",
		VoyageNumber: "B-1",
		SailingFuel:  voyage.FuelMatrix{"MGO": {"AE": 5.0}},
	}
	return a, b
}

func TestBatchExportCSV(t *testing.T) {
	t.Run("empty batch signals nothing to export", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewBatch("_").ExportCSV(&buf)
		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.Zero(t, buf.Len())
	})

	t.Run("empty batch writes no file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batch.csv")
		err := NewBatch("_").SaveCSV(path)
		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.NoFileExists(t, path)
	})

	t.Run("header is the sorted union of all keys", func(t *testing.T) {
		a, b := disjointRecords()
		batch := NewBatch("_")
		batch.Add(a)
		batch.Add(b)

		var buf bytes.Buffer
		require.NoError(t, batch.ExportCSV(&buf))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		header := rows[0]
		assert.True(t, sort.StringsAreSorted(header))
		assert.Contains(t, header, "sailing_fuel_HFO_ME")
		assert.Contains(t, header, "sailing_fuel_MGO_AE")

		union := make(map[string]struct{})
		for k := range a.Flatten("_") {
			union[k] = struct{}{}
		}
		for k := range b.Flatten("_") {
			union[k] = struct{}{}
		}
		assert.Len(t, header, len(union))
	})

	t.Run("missing keys export as blank cells", func(t *testing.T) {
		a, b := disjointRecords()
		batch := NewBatch("_")
		batch.Add(a)
		batch.Add(b)

		var buf bytes.Buffer
		require.NoError(t, batch.ExportCSV(&buf))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)

		col := func(name string) int {
			for i, h := range rows[0] {
				if h == name {
					return i
				}
			}
			t.Fatalf("column %s not found", name)
			return -1
		}

		hfo := col("sailing_fuel_HFO_ME")
		mgo := col("sailing_fuel_MGO_AE")
		assert.Equal(t, "10", rows[1][hfo])
		assert.Equal(t, "", rows[1][mgo])
		assert.Equal(t, "", rows[2][hfo])
		assert.Equal(t, "5", rows[2][mgo])
	})

	t.Run("one row per record in insertion order", func(t *testing.T) {
		a, b := disjointRecords()
		batch := NewBatch("_")
		batch.Add(a)
		batch.Add(b)
		require.Equal(t, 2, batch.Len())

		var buf bytes.Buffer
		require.NoError(t, batch.ExportCSV(&buf))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)

		vessel := -1
		for i, h := range rows[0] {
			if h == "vessel" {
				vessel = i
			}
		}
		require.GreaterOrEqual(t, vessel, 0)
		assert.Equal(t, "Alpha", rows[1][vessel])
		assert.Equal(t, "Beta", rows[2][vessel])
	})

	t.Run("duplicates are accepted as-is", func(t *testing.T) {
		a, _ := disjointRecords()
		batch := NewBatch("_")
		batch.Add(a)
		batch.Add(a)

		var buf bytes.Buffer
		require.NoError(t, batch.ExportCSV(&buf))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Equal(t, rows[1], rows[2])
	})
}

func TestBatchSaveXLSX(t *testing.T) {
	t.Run("empty batch writes no workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batch.xlsx")
		err := NewBatch("_").SaveXLSX(path)
		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.NoFileExists(t, path)
	})

	t.Run("workbook mirrors the CSV table", func(t *testing.T) {
		a, b := disjointRecords()
		batch := NewBatch("_")
		batch.Add(a)
		batch.Add(b)

		path := filepath.Join(t.TempDir(), "batch.xlsx")
		require.NoError(t, batch.SaveXLSX(path))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(batchSheetName)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.True(t, sort.StringsAreSorted(rows[0]))

		vessel := -1
		for i, h := range rows[0] {
			if h == "vessel" {
				vessel = i
			}
		}
		require.GreaterOrEqual(t, vessel, 0)
		assert.Equal(t, "Alpha", rows[1][vessel])
		assert.Equal(t, "Beta", rows[2][vessel])
	})
}

// End-to-end: collect-shaped demo record through flatten and batch export.
func TestBatchExportDemoRecord(t *testing.T) {
	rec := voyage.DemoRecord()
	batch := NewBatch("_")
	batch.Add(rec)

	var buf bytes.Buffer
	require.NoError(t, batch.ExportCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := make(map[string]string, len(rows[0]))
	for i, h := range rows[0] {
		got[h] = rows[1][i]
	}
	flat := rec.Flatten("_")
	require.Len(t, got, len(flat))
	for k, v := range flat {
		assert.Equal(t, formatValue(v), got[k], "key %s", k)
	}
	assert.Equal(t, "150", got["sailing_fuel_VLSFO LFO (<80Cst)_ME"])
}
