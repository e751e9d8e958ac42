package stream

import "github.com/influxdata/tscore/edge"

// EventInput is the root node of an EventStream: it forwards every Event
// handed to Set to its observers unchanged.
func newEventInput(name string) *baseNode {
	return newBase(name, "event input", edge.EventEdge, func(msg interface{}) ([]interface{}, error) {
		return []interface{}{msg}, nil
	})
}

// KeyedCollectionInput is the root node of a KeyedCollectionStream built
// directly from an external producer of (key, Collection) tuples (rather
// than downstream of a WindowNode).
func newKeyedCollectionInput(name string) *baseNode {
	return newBase(name, "keyed-collection input", edge.KeyedCollectionEdge, func(msg interface{}) ([]interface{}, error) {
		return []interface{}{msg}, nil
	})
}
