// Package collection implements the core's immutable event containers:
// Collection and its chronologically-sorted variant, plus the grouped and
// windowed maps built on top of them. Every operation returns a new
// instance; the event list itself is a benbjohnson/immutable.List so
// unchanged structure is shared between a Collection and its derivatives.
package collection

import (
	"github.com/benbjohnson/immutable"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/reduce"
)

// Collection is an ordered, immutable bag of Events with O(1) lookup by
// key string.
type Collection struct {
	events *immutable.List[models.Event]
	index  map[string]int
}

// New builds a Collection from events, in the order given.
func New(events ...models.Event) Collection {
	b := immutable.NewListBuilder[models.Event]()
	idx := make(map[string]int, len(events))
	for i, e := range events {
		b.Append(e)
		idx[e.Key().String()] = i
	}
	return Collection{events: b.List(), index: idx}
}

func fromList(l *immutable.List[models.Event]) Collection {
	idx := make(map[string]int, l.Len())
	itr := l.Iterator()
	for !itr.Done() {
		i, e := itr.Next()
		idx[e.Key().String()] = i
	}
	return Collection{events: l, index: idx}
}

// Size returns the number of events in the collection.
func (c Collection) Size() int { return c.events.Len() }

// At returns the i-th event.
func (c Collection) At(i int) models.Event { return c.events.Get(i) }

// AtKey returns the event whose key serializes to keyString, if present.
func (c Collection) AtKey(keyString string) (models.Event, bool) {
	i, ok := c.index[keyString]
	if !ok {
		return models.Event{}, false
	}
	return c.events.Get(i), true
}

// EventList returns a freshly allocated slice of the collection's events,
// in order. Mutating the returned slice never affects the collection.
func (c Collection) EventList() []models.Event {
	out := make([]models.Event, 0, c.events.Len())
	itr := c.events.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		out = append(out, e)
	}
	return out
}

// FirstEvent returns the collection's first event.
func (c Collection) FirstEvent() (models.Event, bool) {
	if c.events.Len() == 0 {
		return models.Event{}, false
	}
	return c.events.Get(0), true
}

// LastEvent returns the collection's last event.
func (c Collection) LastEvent() (models.Event, bool) {
	if c.events.Len() == 0 {
		return models.Event{}, false
	}
	return c.events.Get(c.events.Len() - 1), true
}

// Map applies fn to every event, returning a new Collection of the
// results, in order.
func (c Collection) Map(fn func(models.Event) models.Event) Collection {
	b := immutable.NewListBuilder[models.Event]()
	itr := c.events.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		b.Append(fn(e))
	}
	return fromList(b.List())
}

// Filter returns a new Collection containing only the events for which
// keep returns true.
func (c Collection) Filter(keep func(models.Event) bool) Collection {
	b := immutable.NewListBuilder[models.Event]()
	itr := c.events.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		if keep(e) {
			b.Append(e)
		}
	}
	return fromList(b.List())
}

// FlatMap applies fn to every event, concatenating the resulting slices
// into a new Collection.
func (c Collection) FlatMap(fn func(models.Event) []models.Event) Collection {
	b := immutable.NewListBuilder[models.Event]()
	itr := c.events.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		for _, out := range fn(e) {
			b.Append(out)
		}
	}
	return fromList(b.List())
}

// AddEvent returns a new Collection with e appended (or merged into an
// existing event with the same key, when dedup is non-nil). A nil dedup
// always appends, allowing duplicate key strings to coexist (Collection,
// unlike SortedCollection, does not guarantee distinct keys on its own).
//
// dedup semantics: if dedup is a DedupReducer, the colliding event's data
// and the new event's data are combined field-by-field through it; if
// dedup is DedupReplace, the newer event replaces the older.
func (c Collection) AddEvent(e models.Event, dedup Dedup) Collection {
	ks := e.Key().String()
	if dedup != nil {
		if i, ok := c.index[ks]; ok {
			existing := c.events.Get(i)
			merged := dedup.Combine(existing, e)
			b := immutable.NewListBuilder[models.Event]()
			itr := c.events.Iterator()
			for !itr.Done() {
				j, ev := itr.Next()
				if j == i {
					b.Append(merged)
				} else {
					b.Append(ev)
				}
			}
			return fromList(b.List())
		}
	}
	return fromList(c.events.Append(e))
}

// Dedup resolves a key collision during AddEvent.
type Dedup interface {
	Combine(existing, incoming models.Event) models.Event
}

// DedupReplace is the Dedup that keeps the newer (incoming) event.
type DedupReplace struct{}

func (DedupReplace) Combine(existing, incoming models.Event) models.Event { return incoming }

// DedupReducer merges colliding events field-by-field through a reducer,
// reducing [existing.get(field), incoming.get(field)] for every field
// present on either event.
type DedupReducer struct {
	Reducer models.Reducer
}

func (d DedupReducer) Combine(existing, incoming models.Event) models.Event {
	fields := existing.Data().Keys()
	for _, k := range incoming.Data().Keys() {
		if _, ok := existing.Get(k); !ok {
			fields = append(fields, k)
		}
	}
	merged := models.Combine([]models.Event{existing, incoming}, d.Reducer, fields)
	return merged[0]
}

// Aggregate reduces [e.get(field) for e in events] through reducer,
// returning null when the collection is empty.
func (c Collection) Aggregate(reducer models.Reducer, field string) models.Value {
	if c.events.Len() == 0 {
		return reduce.Null()
	}
	vals := make([]models.Value, 0, c.events.Len())
	itr := c.events.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		if v, ok := e.Get(field); ok {
			vals = append(vals, v)
		} else {
			vals = append(vals, models.Value{})
		}
	}
	return reducer(vals)
}
