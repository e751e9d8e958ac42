package models_test

import (
	"testing"

	"github.com/influxdata/tscore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_SetIsStructurallyShared(t *testing.T) {
	v, err := models.NewValue(map[string]interface{}{
		"a": map[string]interface{}{"b": 1.0},
		"c": 2.0,
	})
	require.NoError(t, err)

	v2 := v.Set("a.b", models.NewScalar(99.0))

	got, ok := v2.Get("a.b")
	require.True(t, ok)
	f, ok := got.Float64()
	require.True(t, ok)
	assert.Equal(t, 99.0, f)

	// original untouched
	orig, ok := v.Get("a.b")
	require.True(t, ok)
	of, _ := orig.Float64()
	assert.Equal(t, 1.0, of)

	// unrelated field shares structure (same value) through the Set.
	c2, ok := v2.Get("c")
	require.True(t, ok)
	cf, _ := c2.Float64()
	assert.Equal(t, 2.0, cf)
}

func TestValue_GetMissingPath(t *testing.T) {
	v := models.EmptyMap()
	_, ok := v.Get("x.y")
	assert.False(t, ok)
}

func TestValue_RoundTripToInterface(t *testing.T) {
	in := map[string]interface{}{
		"name": "cpu",
		"tags": map[string]interface{}{"host": "a"},
		"list": []interface{}{1.0, 2.0, 3.0},
	}
	v, err := models.NewValue(in)
	require.NoError(t, err)
	out := v.ToInterface()
	assert.Equal(t, in, out)
}

func TestValue_Equal(t *testing.T) {
	a, _ := models.NewValue(map[string]interface{}{"x": 1.0})
	b, _ := models.NewValue(map[string]interface{}{"x": 1.0})
	c, _ := models.NewValue(map[string]interface{}{"x": 2.0})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestValue_Delete(t *testing.T) {
	v, _ := models.NewValue(map[string]interface{}{"a": 1.0, "b": 2.0})
	v2 := v.Delete("a")
	_, ok := v2.Get("a")
	assert.False(t, ok)
	_, ok = v2.Get("b")
	assert.True(t, ok)
}
