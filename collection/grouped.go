package collection

import (
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/reduce"
)

// GroupedCollection maps a group key (produced by a field-selector or user
// function applied per event) to the SortedCollection of events sharing
// that key.
type GroupedCollection struct {
	groups map[string]SortedCollection
	order  []string
}

// Selector extracts a group key from an event, e.g. a tag value.
type Selector func(models.Event) string

// GroupBy partitions c's events into a GroupedCollection keyed by
// selector(event), preserving each group's events in c's original order
// (then sorting each group, since every value is a SortedCollection).
func GroupBy(c Collection, selector Selector) GroupedCollection {
	order := make([]string, 0)
	byKey := make(map[string][]models.Event)
	for _, e := range c.EventList() {
		k := selector(e)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], e)
	}
	groups := make(map[string]SortedCollection, len(byKey))
	for k, evs := range byKey {
		groups[k] = NewSorted(evs...)
	}
	return GroupedCollection{groups: groups, order: order}
}

// Keys returns the group keys in first-occurrence order.
func (g GroupedCollection) Keys() []string { return append([]string(nil), g.order...) }

// Get returns the SortedCollection for key.
func (g GroupedCollection) Get(key string) (SortedCollection, bool) {
	c, ok := g.groups[key]
	return c, ok
}

// Transform applies fn to every group's SortedCollection, returning a new
// GroupedCollection with the results.
func (g GroupedCollection) Transform(fn func(SortedCollection) SortedCollection) GroupedCollection {
	out := make(map[string]SortedCollection, len(g.groups))
	for k, sc := range g.groups {
		out[k] = fn(sc)
	}
	return GroupedCollection{groups: out, order: g.Keys()}
}

// Aggregate reduces every group through spec, returning
// group -> outField -> value.
func (g GroupedCollection) Aggregate(spec reduce.Spec) map[string]map[string]models.Value {
	out := make(map[string]map[string]models.Value, len(g.groups))
	for _, k := range g.order {
		sc := g.groups[k]
		fields := make(map[string]models.Value, len(spec))
		for outField, fr := range spec {
			fields[outField] = sc.Aggregate(fr.Reducer, fr.SrcField)
		}
		out[k] = fields
	}
	return out
}

// Ungroup concatenates every group's events, in group order, into a single
// unsorted Collection.
func (g GroupedCollection) Ungroup() Collection {
	var all []models.Event
	for _, k := range g.order {
		all = append(all, g.groups[k].EventList()...)
	}
	return New(all...)
}

// Flatten concatenates every group's events into a single SortedCollection,
// chronologically merged.
func (g GroupedCollection) Flatten() SortedCollection {
	var all []models.Event
	for _, k := range g.order {
		all = append(all, g.groups[k].EventList()...)
	}
	return NewSorted(all...)
}
