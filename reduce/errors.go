package reduce

import "fmt"

// AggregationSpecError is returned when an aggregation spec references a
// reducer with the wrong arity or a source field that cannot be
// interpreted.
type AggregationSpecError struct {
	OutField string
	Reason   string
}

func (e *AggregationSpecError) Error() string {
	return fmt.Sprintf("reduce: bad aggregation spec for %q: %s", e.OutField, e.Reason)
}

// OutOfRangePercentile is returned by Percentile when q isn't in [0, 100].
type OutOfRangePercentile struct {
	Q float64
}

func (e *OutOfRangePercentile) Error() string {
	return fmt.Sprintf("reduce: percentile %v out of range [0,100]", e.Q)
}
