package period_test

import (
	"testing"
	"time"

	"github.com/influxdata/tscore/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWindow(t *testing.T, literal string) period.Window {
	t.Helper()
	d, err := period.ParseDuration(literal)
	require.NoError(t, err)
	return period.NewFixedWindow(d)
}

func TestWindow_GetIndexSet_FixedNonOverlapping(t *testing.T) {
	w := fixedWindow(t, "30s")

	idxs := w.GetIndexSet(time.UnixMilli(0).UTC())
	require.Len(t, idxs, 1)
	assert.Equal(t, "30s-0", idxs[0].String())
	assert.Equal(t, time.UnixMilli(0).UTC(), idxs[0].Begin())
	assert.Equal(t, time.UnixMilli(30000).UTC(), idxs[0].End())

	idxs = w.GetIndexSet(time.UnixMilli(45000).UTC())
	require.Len(t, idxs, 1)
	assert.Equal(t, "30s-1", idxs[0].String())
}

// S5: events at t=[0, 15000, 45000, 65000], 30s fixed windows -> bucket 0
// covers [0,15000]; bucket 1 covers [45000]; t=65000 lands in bucket 2.
func TestWindow_GetIndexSet_ScenarioS5Buckets(t *testing.T) {
	w := fixedWindow(t, "30s")
	ts := []int64{0, 15000, 45000, 65000}
	wantBucket := []string{"30s-0", "30s-0", "30s-1", "30s-2"}
	for i, ms := range ts {
		idxs := w.GetIndexSet(time.UnixMilli(ms).UTC())
		require.Len(t, idxs, 1)
		assert.Equal(t, wantBucket[i], idxs[0].String())
	}
}

// Invariant 5 (spec §8): for any Time t, get_index_set(t) contains exactly
// the indexes n with n*freq+offset <= t < n*freq+offset+duration.
func TestWindow_GetIndexSet_SlidingOverlap(t *testing.T) {
	dur, err := period.ParseDuration("2m")
	require.NoError(t, err)
	freq, err := period.ParseDuration("1m")
	require.NoError(t, err)
	w := period.NewSlidingWindow(dur, period.NewPeriod(freq, 0))

	// t=90000 (90s) falls in window n=0 [0,120000) and n=1 [60000,180000).
	idxs := w.GetIndexSet(time.UnixMilli(90000).UTC())
	require.Len(t, idxs, 2)
	var literals []string
	for _, idx := range idxs {
		literals = append(literals, idx.String())
	}
	assert.ElementsMatch(t, []string{"2m@1m-0", "2m@1m-1"}, literals)
}

func TestWindow_GetIndexSet_WithOffset(t *testing.T) {
	freq, err := period.ParseDuration("30s")
	require.NoError(t, err)
	w := period.NewSlidingWindow(freq, period.NewPeriod(freq, 5000))
	idxs := w.GetIndexSet(time.UnixMilli(10000).UTC())
	require.Len(t, idxs, 1)
	assert.Equal(t, "30s+5000-0", idxs[0].String())
}
