package transform_test

import (
	"testing"

	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingReduce_BoundedWindow(t *testing.T) {
	sumLast := func(acc *models.Event, window []models.Event) models.Event {
		var sum float64
		for _, e := range window {
			v, _ := e.Get("value")
			f, _ := v.Float64()
			sum += f
		}
		data, _ := models.NewValue(map[string]interface{}{"sum": sum})
		return models.New(window[len(window)-1].Key(), data)
	}
	r := transform.NewRollingReduce(2, sumLast, nil)

	out, err := r.Process(timeEvent(1000, 1))
	require.NoError(t, err)
	v, _ := out[0].Get("sum")
	f, _ := v.Float64()
	assert.Equal(t, 1.0, f)

	out, err = r.Process(timeEvent(2000, 2))
	require.NoError(t, err)
	v, _ = out[0].Get("sum")
	f, _ = v.Float64()
	assert.Equal(t, 3.0, f)

	// Window is bounded to the last 2: dropping the oldest (value 1).
	out, err = r.Process(timeEvent(3000, 3))
	require.NoError(t, err)
	v, _ = out[0].Get("sum")
	f, _ = v.Float64()
	assert.Equal(t, 5.0, f)
}

func TestSelectCollapse(t *testing.T) {
	data, _ := models.NewValue(map[string]interface{}{"a": 1.0, "b": 2.0, "c": 3.0})
	e := models.New(models.NewTimeMillis(0), data)

	sel := transform.Select{Fields: []string{"a", "c"}}
	out, err := sel.Process(e)
	require.NoError(t, err)
	_, ok := out[0].Get("b")
	assert.False(t, ok)

	sumReducer := func(values []models.Value) models.Value {
		var s float64
		for _, v := range values {
			f, _ := v.Float64()
			s += f
		}
		return models.NewScalar(s)
	}
	col := transform.Collapse{Fields: []string{"a", "b"}, OutName: "sum", Reducer: sumReducer, Append: true}
	out, err = col.Process(e)
	require.NoError(t, err)
	v, ok := out[0].Get("sum")
	require.True(t, ok)
	f, _ := v.Float64()
	assert.Equal(t, 3.0, f)
}
