package reduce

import "github.com/pkg/errors"

// FieldReducer pairs a source field path with the reducer applied to its
// per-event values.
type FieldReducer struct {
	SrcField string
	Reducer  Func
}

// Spec maps an output field name to the (source field, reducer) used to
// compute it — the aggregation spec consumed by Collection.aggregate and
// the Aggregation stream node (spec "Map<outField, (srcField, reducer)>").
type Spec map[string]FieldReducer

// Validate checks that every entry names a non-empty source field and a
// non-nil reducer, returning an AggregationSpecError for the first
// violation found.
func (s Spec) Validate() error {
	for out, fr := range s {
		if fr.SrcField == "" {
			return errors.Wrap(&AggregationSpecError{OutField: out, Reason: "missing source field"}, "reduce.Spec.Validate")
		}
		if fr.Reducer == nil {
			return errors.Wrap(&AggregationSpecError{OutField: out, Reason: "missing reducer function"}, "reduce.Spec.Validate")
		}
	}
	return nil
}
