// =============================================================================
// Voyage Data Collector - Completeness Checker & Fuel Summarizer
// =============================================================================
//
// This module derives two presentation-layer reports from a voyage record:
//
//   1. CompletenessReport: partitions the fixed required-field set into
//      present and missing fields. A field is missing when it is absent or
//      carries a falsy value (empty string, zero), mirroring the collector's
//      required-field semantics.
//
//   2. Fuel totals: per-fuel-type consumption summed across all engine
//      types, keyed "<fuel>_sailing" / "<fuel>_port". Fuel types absent from
//      a matrix contribute no key at all. This is an input-coverage summary,
//      not a regulatory calculation.
//
// =============================================================================

package voyage

import "sort"

// =============================================================================
// COMPLETENESS
// =============================================================================

// CompletenessReport partitions RequiredFields for a single record.
type CompletenessReport struct {
	// Missing lists required fields that are absent or falsy.
	Missing []string `json:"missing"`

	// Present lists required fields that carry a usable value.
	Present []string `json:"present"`

	// Complete is true iff Missing is empty.
	Complete bool `json:"complete"`
}

// CheckCompleteness reports which required fields the record satisfies.
// Field order in both lists follows RequiredFields.
func CheckCompleteness(r *Record) CompletenessReport {
	m := r.Map()

	report := CompletenessReport{
		Missing: []string{},
		Present: []string{},
	}
	for _, field := range RequiredFields {
		value, ok := m[field]
		if !ok || isFalsy(value) {
			report.Missing = append(report.Missing, field)
			continue
		}
		report.Present = append(report.Present, field)
	}
	report.Complete = len(report.Missing) == 0
	return report
}

// isFalsy reports whether a scalar counts as "no value supplied".
func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

// =============================================================================
// FUEL SUMMARIZER
// =============================================================================

// FuelTotals sums each fuel type's consumption across all engine types for
// both voyage stages. Only fuel types present in a matrix produce a key.
func FuelTotals(r *Record) map[string]float64 {
	totals := make(map[string]float64)
	addStage(totals, r.SailingFuel, "sailing")
	addStage(totals, r.PortFuel, "port")
	return totals
}

func addStage(totals map[string]float64, m FuelMatrix, stage string) {
	for fuel, engines := range m {
		sum := 0.0
		for _, qty := range engines {
			sum += qty
		}
		totals[fuel+"_"+stage] = sum
	}
}

// SortedKeys returns the keys of a totals mapping in sorted order, for
// deterministic display.
func SortedKeys(totals map[string]float64) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
