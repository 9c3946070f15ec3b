// =============================================================================
// Voyage Data Collector - Record Flattener
// =============================================================================
//
// This module converts a nested record mapping into a flat mapping suitable
// for tabular export. Nested keys are joined with a separator:
//
//   {"sailing_fuel": {"HFO": {"ME": 100.0}}}  ->  {"sailing_fuel_HFO_ME": 100.0}
//
// PROPERTIES:
//   - Pure function: no side effects, re-flattening the same input yields an
//     identical result.
//   - Idempotent on leaf-only input: a mapping with no nested values comes
//     back as a copy with the same keys.
//   - One-way: the flattened form is lossy with respect to structure (not
//     values). There is deliberately no unflatten counterpart.
//
// =============================================================================

package voyage

// DefaultSeparator joins parent and child keys in flattened output.
const DefaultSeparator = "_"

// FlattenMap recursively expands nested mappings into a single-level mapping
// with joined keys. Leaf values are carried over as-is with no type coercion;
// sinks are responsible for serializing non-string scalars.
func FlattenMap(src map[string]interface{}, prefix, sep string) map[string]interface{} {
	out := make(map[string]interface{}, len(src))
	for key, value := range src {
		joined := key
		if prefix != "" {
			joined = prefix + sep + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			for k, v := range FlattenMap(nested, joined, sep) {
				out[k] = v
			}
			continue
		}
		out[joined] = value
	}
	return out
}

// Flatten returns the record as a flat mapping using the given separator.
// An empty separator falls back to DefaultSeparator.
func (r *Record) Flatten(sep string) map[string]interface{} {
	if sep == "" {
		sep = DefaultSeparator
	}
	return FlattenMap(r.Map(), "", sep)
}
