package collection_test

import (
	"testing"

	"github.com/influxdata/tscore/collection"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/period"
	"github.com/influxdata/tscore/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5 (spec §8): events at t=[0, 15000, 45000, 65000], each with field
// v in [1,2,3,4], windowed by a fixed 30s window; aggregate {avg: ("v",
// avg())} lands two buckets: 30s-0 -> 1.5, 30s-1 -> 3.0. (The fourth
// event, t=65000, lands in a separate 30s-2 bucket. In the streaming
// processor 30s-0 is discarded when t=45000 arrives and 30s-1 when t=65000
// arrives; here we only check that the collection-level windowing buckets
// correctly.) The windows are ungrouped, so every aggregated event lands in
// the "" group, keyed by its window index.
func TestCollection_WindowThenAggregate_ScenarioS5(t *testing.T) {
	freq, err := period.ParseDuration("30s")
	require.NoError(t, err)
	w := period.NewFixedWindow(freq)

	evs := []models.Event{
		ev(t, 0, map[string]interface{}{"v": 1.0}),
		ev(t, 15000, map[string]interface{}{"v": 2.0}),
		ev(t, 45000, map[string]interface{}{"v": 3.0}),
		ev(t, 65000, map[string]interface{}{"v": 4.0}),
	}
	c := collection.New(evs...)
	windowed := c.Window(w)

	spec := reduce.Spec{"avg": {SrcField: "v", Reducer: reduce.Avg(reduce.IgnoreMissing)}}
	grouped := windowed.Aggregate(spec)

	sc, ok := grouped.Get("")
	require.True(t, ok)

	e, ok := sc.AtKey("30s-0")
	require.True(t, ok)
	v, ok := e.Get("avg")
	require.True(t, ok)
	f, _ := v.Float64()
	assert.Equal(t, 1.5, f)

	e, ok = sc.AtKey("30s-1")
	require.True(t, ok)
	v, ok = e.Get("avg")
	require.True(t, ok)
	f, _ = v.Float64()
	assert.Equal(t, 3.0, f)

	e, ok = sc.AtKey("30s-2")
	require.True(t, ok)
	v, ok = e.Get("avg")
	require.True(t, ok)
	f, _ = v.Float64()
	assert.Equal(t, 4.0, f)
}

func TestGroupedCollection_WindowComposesGroupKey(t *testing.T) {
	freq, err := period.ParseDuration("30s")
	require.NoError(t, err)
	w := period.NewFixedWindow(freq)

	a := ev(t, 0, map[string]interface{}{"v": 1.0, "host": "a"})
	b := ev(t, 0, map[string]interface{}{"v": 2.0, "host": "b"})
	grouped := collection.GroupBy(collection.New(a, b), func(e models.Event) string {
		v, _ := e.Get("host")
		s, _ := v.Scalar()
		return s.(string)
	})

	windowed := grouped.Window(w)
	keys := windowed.Keys()
	assert.ElementsMatch(t, []string{"a::30s-0", "b::30s-0"}, keys)

	group, idx := collection.GroupAndIndex("a::30s-0")
	assert.Equal(t, "a", group)
	assert.Equal(t, "30s-0", idx)
}
