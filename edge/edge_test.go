package edge_test

import (
	"errors"
	"testing"

	"github.com/influxdata/tscore/edge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdge_ForwardCountsMessages(t *testing.T) {
	e := edge.New(edge.EventEdge)
	assert.Equal(t, edge.EventEdge, e.Type())
	assert.Equal(t, int64(0), e.Count())

	for i := 0; i < 3; i++ {
		err := e.Forward(func() error { return nil })
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), e.Count())
}

func TestEdge_ForwardPropagatesError(t *testing.T) {
	e := edge.New(edge.KeyedCollectionEdge)
	boom := errors.New("boom")
	err := e.Forward(func() error { return boom })
	assert.Equal(t, boom, err)
	// The message still counts as having crossed the edge even though the
	// observer failed; the caller decides whether to keep going.
	assert.Equal(t, int64(1), e.Count())
}
