package stream

import (
	"github.com/influxdata/tscore/edge"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/reduce"
	"github.com/pkg/errors"
)

// newAggregationNode implements the Aggregation node (spec §4.9):
// consumes (key, Collection) tuples from a WindowNode and emits one Event
// per tuple, keyed by the window's Index, with one field per spec entry.
func newAggregationNode(name string, spec reduce.Spec) *baseNode {
	return newBase(name, "aggregation", edge.EventEdge, func(msg interface{}) ([]interface{}, error) {
		kc, ok := msg.(KeyedCollection)
		if !ok {
			return nil, errors.Wrap(&UnexpectedMessageType{Want: "stream.KeyedCollection", Got: msg}, name)
		}

		data := models.EmptyMap()
		for outField, fr := range spec {
			data = data.Set(outField, kc.Collection.Aggregate(fr.Reducer, fr.SrcField))
		}
		return []interface{}{models.New(kc.Index, data)}, nil
	})
}
