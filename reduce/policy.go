package reduce

import "github.com/influxdata/tscore/models"

// Policy is a missing-value cleaning strategy applied to a reducer's input
// list before the reduction runs.
type Policy int

const (
	// KeepMissing leaves the list untouched; individual reducers decide
	// how to treat a null entry.
	KeepMissing Policy = iota
	// IgnoreMissing drops null entries from the list entirely.
	IgnoreMissing
	// ZeroMissing replaces null entries with the scalar 0.
	ZeroMissing
	// PropagateMissing short-circuits the whole reduction to null the
	// moment any entry is missing.
	PropagateMissing
	// NoneIfEmpty short-circuits to null when the list (after whatever
	// other cleaning already ran) is empty.
	NoneIfEmpty
)

// isMissing reports whether v represents a missing field: the zero Value,
// or an explicit scalar nil.
func isMissing(v models.Value) bool {
	if v.Kind() != models.ScalarValue {
		return false
	}
	s, _ := v.Scalar()
	return s == nil
}

// clean applies policy to values, returning the cleaned list and true, or
// (nil, false) when the policy determines the reduction must short-circuit
// to null.
func clean(policy Policy, values []models.Value) ([]models.Value, bool) {
	switch policy {
	case PropagateMissing:
		for _, v := range values {
			if isMissing(v) {
				return nil, false
			}
		}
		return values, true
	case IgnoreMissing:
		out := make([]models.Value, 0, len(values))
		for _, v := range values {
			if !isMissing(v) {
				out = append(out, v)
			}
		}
		return out, true
	case ZeroMissing:
		out := make([]models.Value, len(values))
		for i, v := range values {
			if isMissing(v) {
				out[i] = models.NewScalar(0.0)
			} else {
				out[i] = v
			}
		}
		return out, true
	case NoneIfEmpty:
		if len(values) == 0 {
			return nil, false
		}
		return values, true
	default: // KeepMissing
		return values, true
	}
}

// Null is the sentinel null Value returned by a reducer whose cleaner
// short-circuited.
func Null() models.Value { return models.NewScalar(nil) }

// nums extracts the numeric entries of values, silently skipping any
// surviving non-numeric and null entries (a KeepMissing reducer that wants
// them skipped still calls this).
func nums(values []models.Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.Float64(); ok {
			out = append(out, f)
		}
	}
	return out
}
