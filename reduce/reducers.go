package reduce

import (
	"math"

	"github.com/influxdata/tscore/models"
)

// Func is a pure reduction from a list of values to a single value. It is
// the concrete type behind models.Reducer wherever a named aggregation is
// used (Collection.aggregate, Event.collapse/combine, the Aggregation
// stream node).
type Func = models.Reducer

// Sum returns the arithmetic sum of the cleaned, numeric entries.
func Sum(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		var sum float64
		for _, f := range nums(cleaned) {
			sum += f
		}
		return models.NewScalar(sum)
	}
}

// Avg returns the arithmetic mean of the cleaned, numeric entries, or null
// when there are none.
func Avg(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		fs := nums(cleaned)
		if len(fs) == 0 {
			return Null()
		}
		var sum float64
		for _, f := range fs {
			sum += f
		}
		return models.NewScalar(sum / float64(len(fs)))
	}
}

// Min returns the smallest cleaned, numeric entry, or null when there are
// none.
func Min(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		fs := nums(cleaned)
		if len(fs) == 0 {
			return Null()
		}
		m := fs[0]
		for _, f := range fs[1:] {
			if f < m {
				m = f
			}
		}
		return models.NewScalar(m)
	}
}

// Max returns the largest cleaned, numeric entry, or null when there are
// none.
func Max(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		fs := nums(cleaned)
		if len(fs) == 0 {
			return Null()
		}
		m := fs[0]
		for _, f := range fs[1:] {
			if f > m {
				m = f
			}
		}
		return models.NewScalar(m)
	}
}

// First returns the cleaned list's first entry, or null when empty.
func First(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok || len(cleaned) == 0 {
			return Null()
		}
		return cleaned[0]
	}
}

// Last returns the cleaned list's last entry, or null when empty.
func Last(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok || len(cleaned) == 0 {
			return Null()
		}
		return cleaned[len(cleaned)-1]
	}
}

// Count returns the number of entries remaining after cleaning.
func Count(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		return models.NewScalar(float64(len(cleaned)))
	}
}

// Keep returns the cleaned list as-is, wrapped in a list Value, rather than
// reducing it to a scalar — used when a downstream consumer wants the raw
// per-window values (e.g. a histogram collector).
func Keep(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		return models.NewListOf(cleaned)
	}
}

// Difference returns cleaned[last] - cleaned[first], or null when fewer
// than two numeric entries survive.
func Difference(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		fs := nums(cleaned)
		if len(fs) < 2 {
			return Null()
		}
		return models.NewScalar(fs[len(fs)-1] - fs[0])
	}
}

// Stdev returns the population standard deviation of the cleaned, numeric
// entries, or null when fewer than two survive.
func Stdev(policy Policy) Func {
	return func(values []models.Value) models.Value {
		cleaned, ok := clean(policy, values)
		if !ok {
			return Null()
		}
		fs := nums(cleaned)
		if len(fs) < 2 {
			return Null()
		}
		var mean float64
		for _, f := range fs {
			mean += f
		}
		mean /= float64(len(fs))
		var sq float64
		for _, f := range fs {
			sq += (f - mean) * (f - mean)
		}
		return models.NewScalar(math.Sqrt(sq / float64(len(fs))))
	}
}
