package reduce_test

import (
	"testing"

	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nums(vs ...interface{}) []models.Value {
	out := make([]models.Value, len(vs))
	for i, v := range vs {
		out[i] = models.NewScalar(v)
	}
	return out
}

func TestSum(t *testing.T) {
	f := reduce.Sum(reduce.IgnoreMissing)
	got := f(nums(1.0, 2.0, 3.0))
	gf, ok := got.Float64()
	require.True(t, ok)
	assert.Equal(t, 6.0, gf)
}

func TestAvg(t *testing.T) {
	f := reduce.Avg(reduce.IgnoreMissing)
	got := f(nums(2.0, 4.0))
	gf, _ := got.Float64()
	assert.Equal(t, 3.0, gf)
}

func TestMinMax(t *testing.T) {
	min := reduce.Min(reduce.IgnoreMissing)
	max := reduce.Max(reduce.IgnoreMissing)
	vs := nums(3.0, 1.0, 2.0)
	mn, _ := min(vs).Float64()
	mx, _ := max(vs).Float64()
	assert.Equal(t, 1.0, mn)
	assert.Equal(t, 3.0, mx)
}

// Invariant 7 (spec §8): propagateMissing yields null the moment any input
// is missing; ignoreMissing excludes missing values from the computation.
func TestPropagateMissing(t *testing.T) {
	f := reduce.Sum(reduce.PropagateMissing)
	vs := []models.Value{models.NewScalar(1.0), models.NewScalar(nil), models.NewScalar(3.0)}
	got := f(vs)
	assert.Equal(t, models.ScalarValue, got.Kind())
	s, _ := got.Scalar()
	assert.Nil(t, s)
}

func TestIgnoreMissingExcludesNulls(t *testing.T) {
	f := reduce.Sum(reduce.IgnoreMissing)
	vs := []models.Value{models.NewScalar(1.0), models.NewScalar(nil), models.NewScalar(3.0)}
	got := f(vs)
	gf, _ := got.Float64()
	assert.Equal(t, 4.0, gf)
}

func TestZeroMissing(t *testing.T) {
	f := reduce.Avg(reduce.ZeroMissing)
	vs := []models.Value{models.NewScalar(2.0), models.NewScalar(nil)}
	got := f(vs)
	gf, _ := got.Float64()
	assert.Equal(t, 1.0, gf)
}

func TestCountAndKeep(t *testing.T) {
	count := reduce.Count(reduce.KeepMissing)
	got := count(nums(1.0, 2.0, 3.0))
	gf, _ := got.Float64()
	assert.Equal(t, 3.0, gf)

	keep := reduce.Keep(reduce.IgnoreMissing)
	kept := keep(nums(1.0, 2.0))
	assert.Equal(t, 2, kept.Len())
}

func TestDifference(t *testing.T) {
	f := reduce.Difference(reduce.IgnoreMissing)
	got := f(nums(10.0, 16.0))
	gf, _ := got.Float64()
	assert.Equal(t, 6.0, gf)
}

func TestStdev(t *testing.T) {
	f := reduce.Stdev(reduce.IgnoreMissing)
	got := f(nums(2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0))
	gf, _ := got.Float64()
	assert.InDelta(t, 2.0, gf, 1e-9)
}

func TestPercentile_OutOfRange(t *testing.T) {
	_, err := reduce.Percentile(150, reduce.IgnoreMissing)
	require.Error(t, err)
	var perr *reduce.OutOfRangePercentile
	assert.ErrorAs(t, err, &perr)
}

func TestMedian(t *testing.T) {
	f := reduce.Median(reduce.IgnoreMissing)
	got := f(nums(1.0, 2.0, 3.0, 4.0, 5.0))
	gf, _ := got.Float64()
	assert.InDelta(t, 3.0, gf, 0.5)
}
