package reduce

import (
	"github.com/caio/go-tdigest"
	"github.com/influxdata/tscore/models"
	"github.com/pkg/errors"
)

// Percentile returns a reducer computing the q-th percentile (0-100) of the
// cleaned, numeric entries via a streaming t-digest, matching the
// approximate-quantile approach used elsewhere in the corpus for
// percentile aggregation over large samples. It errors immediately if q is
// out of range; the returned Func still needs no further validation.
func Percentile(q float64, policy Policy) (Func, error) {
	if q < 0 || q > 100 {
		return nil, errors.Wrap(&OutOfRangePercentile{Q: q}, "reduce.Percentile")
	}
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		fs := nums(cleaned)
		if len(fs) == 0 {
			return Null()
		}
		td, err := tdigest.New()
		if err != nil {
			return Null()
		}
		for _, f := range fs {
			_ = td.Add(f)
		}
		return models.NewScalar(td.Quantile(q / 100))
	}, nil
}

// Median is Percentile(50, policy) with the out-of-range error impossible to hit,
// collapsed away for callers that don't want to handle it.
func Median(policy Policy) Func {
	f, _ := Percentile(50, policy)
	return f
}
