package collection_test

import (
	"testing"
	"time"

	"github.com/influxdata/tscore/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Invariant 2 (spec §8): every operation on a SortedCollection yields a
// SortedCollection whose events are non-decreasing by begin().
func TestSortedCollection_AddEventOutOfOrderResorts(t *testing.T) {
	a := ev(t, 2000, nil)
	b := ev(t, 3000, nil)
	sc := collection.NewSorted(a, b)

	early := ev(t, 1000, nil)
	sc = sc.AddEvent(early, nil)

	assert.True(t, sc.IsChronological())
	require.Equal(t, 3, sc.Size())
	assert.Equal(t, int64(1000), sc.At(0).Key().Begin().UnixMilli())
	assert.Equal(t, int64(2000), sc.At(1).Key().Begin().UnixMilli())
	assert.Equal(t, int64(3000), sc.At(2).Key().Begin().UnixMilli())
}

func TestSortedCollection_Bisect(t *testing.T) {
	sc := collection.NewSorted(ev(t, 1000, nil), ev(t, 2000, nil), ev(t, 3000, nil))

	i, ok := sc.Bisect(time.UnixMilli(2500).UTC(), 0)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = sc.Bisect(time.UnixMilli(500).UTC(), 0)
	assert.False(t, ok)
}

func TestSortedCollection_SliceAndCrop(t *testing.T) {
	sc := collection.NewSorted(ev(t, 1000, nil), ev(t, 2000, nil), ev(t, 3000, nil))

	sliced := sc.Slice(1, 3)
	assert.Equal(t, 2, sliced.Size())
	assert.Equal(t, int64(2000), sliced.At(0).Key().Begin().UnixMilli())

	cropped := sc.Crop(time.UnixMilli(1500).UTC(), time.UnixMilli(3000).UTC())
	assert.Equal(t, 1, cropped.Size())
	assert.Equal(t, int64(2000), cropped.At(0).Key().Begin().UnixMilli())
}
