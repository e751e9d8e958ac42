package collection_test

import (
	"testing"

	"github.com/influxdata/tscore/collection"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byHost(e models.Event) string {
	v, _ := e.Get("host")
	s, _ := v.Scalar()
	return s.(string)
}

func TestGroupedCollection_AggregateAndUngroup(t *testing.T) {
	a := ev(t, 1000, map[string]interface{}{"v": 1.0, "host": "x"})
	b := ev(t, 2000, map[string]interface{}{"v": 3.0, "host": "x"})
	c := ev(t, 1000, map[string]interface{}{"v": 5.0, "host": "y"})

	g := collection.GroupBy(collection.New(a, b, c), byHost)
	assert.ElementsMatch(t, []string{"x", "y"}, g.Keys())

	spec := reduce.Spec{"sum": {SrcField: "v", Reducer: reduce.Sum(reduce.IgnoreMissing)}}
	agg := g.Aggregate(spec)
	fx, _ := agg["x"]["sum"].Float64()
	assert.Equal(t, 4.0, fx)
	fy, _ := agg["y"]["sum"].Float64()
	assert.Equal(t, 5.0, fy)

	ungrouped := g.Ungroup()
	assert.Equal(t, 3, ungrouped.Size())

	flat := g.Flatten()
	require.Equal(t, 3, flat.Size())
	assert.True(t, flat.IsChronological())
}
