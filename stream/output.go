package stream

import "github.com/influxdata/tscore/edge"

// EventCallback receives one message per call: a models.Event when called
// by an EventOutput sink, or a KeyedCollection when called by a
// KeyedCollectionOutput sink.
type EventCallback func(interface{})

func newEventOutput(name string, cb EventCallback) *baseNode {
	return newBase(name, "event output", edge.NoEdge, func(msg interface{}) ([]interface{}, error) {
		cb(msg)
		return nil, nil
	})
}

func newKeyedCollectionOutput(name string, cb EventCallback) *baseNode {
	return newBase(name, "keyed-collection output", edge.NoEdge, func(msg interface{}) ([]interface{}, error) {
		cb(msg)
		return nil, nil
	})
}
