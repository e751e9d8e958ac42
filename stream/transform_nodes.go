package stream

import (
	"github.com/influxdata/tscore/edge"
	"github.com/influxdata/tscore/models"
	"github.com/pkg/errors"
)

// MapFunc transforms one Event into another.
type MapFunc func(models.Event) models.Event

// FlatMapFunc transforms one Event into zero or more Events.
type FlatMapFunc func(models.Event) []models.Event

// FilterFunc reports whether an Event should continue downstream.
type FilterFunc func(models.Event) bool

func asEvent(msg interface{}) (models.Event, error) {
	e, ok := msg.(models.Event)
	if !ok {
		return models.Event{}, errors.Wrap(&UnexpectedMessageType{Want: "models.Event", Got: msg}, "stream.asEvent")
	}
	return e, nil
}

func newMap(name string, fn MapFunc) *baseNode {
	return newBase(name, "map", edge.EventEdge, func(msg interface{}) ([]interface{}, error) {
		e, err := asEvent(msg)
		if err != nil {
			return nil, err
		}
		return []interface{}{fn(e)}, nil
	})
}

func newFlatMap(name string, fn FlatMapFunc) *baseNode {
	return newBase(name, "flat-map", edge.EventEdge, func(msg interface{}) ([]interface{}, error) {
		e, err := asEvent(msg)
		if err != nil {
			return nil, err
		}
		produced := fn(e)
		out := make([]interface{}, len(produced))
		for i, p := range produced {
			out[i] = p
		}
		return out, nil
	})
}

func newFilter(name string, fn FilterFunc) *baseNode {
	return newBase(name, "filter", edge.EventEdge, func(msg interface{}) ([]interface{}, error) {
		e, err := asEvent(msg)
		if err != nil {
			return nil, err
		}
		if !fn(e) {
			return nil, nil
		}
		return []interface{}{e}, nil
	})
}
