package models

import "sort"

// Event is an immutable (Key, Value) pair: a keyed data record flowing
// through collections and the stream graph. Data is always a MapValue (or
// the zero Value, treated as an empty map) — field access is always a
// dot-path lookup into it.
type Event struct {
	key  Key
	data Value
}

// New builds an Event from a Key and a data Value. If data isn't a map
// Value, it is treated as an empty map (constructing a malformed Event from
// a scalar is a programmer error the caller should catch earlier).
func New(key Key, data Value) Event {
	if data.Kind() != MapValue {
		data = EmptyMap()
	}
	return Event{key: key, data: data}
}

func (e Event) Key() Key    { return e.key }
func (e Event) Data() Value { return e.data }

// Get looks up a dot-path field in the event's data.
func (e Event) Get(path string) (Value, bool) {
	return e.data.Get(path)
}

// Set returns a new Event with path set to val, sharing structure with the
// receiver outside that path.
func (e Event) Set(path string, val Value) Event {
	return Event{key: e.key, data: e.data.Set(path, val)}
}

// Select returns a new Event retaining only the named top-level fields.
func (e Event) Select(fields ...string) Event {
	out := EmptyMap()
	for _, f := range fields {
		if v, ok := e.data.Get(f); ok {
			out = out.Set(f, v)
		}
	}
	return Event{key: e.key, data: out}
}

// Reducer aggregates a list of Values into one, used by Collapse and
// Combine as well as the reduce package's named aggregations.
type Reducer func(values []Value) Value

// Collapse returns a new Event adding outName = reducer(values of fields).
// When appendFields is false, the result's data contains only outName;
// otherwise the listed fields are removed and outName is added alongside the
// rest.
func (e Event) Collapse(fields []string, outName string, reducer Reducer, appendFields bool) Event {
	vals := make([]Value, 0, len(fields))
	for _, f := range fields {
		if v, ok := e.data.Get(f); ok {
			vals = append(vals, v)
		} else {
			vals = append(vals, Value{})
		}
	}
	reduced := reducer(vals)
	if !appendFields {
		return Event{key: e.key, data: EmptyMap().Set(outName, reduced)}
	}
	data := e.data
	for _, f := range fields {
		data = data.Delete(f)
	}
	data = data.Set(outName, reduced)
	return Event{key: e.key, data: data}
}

// IsValid reports whether e's key kind matches want, returning a typed
// ErrInvalidKeyKind otherwise. op names the caller for the error message.
func (e Event) IsValid(op string, want KeyKind) error {
	if e.key == nil || e.key.Kind() != want {
		got := KeyKind("nil")
		if e.key != nil {
			got = e.key.Kind()
		}
		return NewInvalidKeyKind(op, want, got)
	}
	return nil
}

// Is reports key-string and data-structural equality between a and b.
func Is(a, b Event) bool {
	return a.key.String() == b.key.String() && a.data.Equal(b.data)
}

// IsDuplicate reports key-string equality between a and b. When
// ignoreValues is false, data must also be structurally equal.
func IsDuplicate(a, b Event, ignoreValues bool) bool {
	if a.key.String() != b.key.String() {
		return false
	}
	if ignoreValues {
		return true
	}
	return a.data.Equal(b.data)
}

// Merge groups events by key string and folds each group's data in
// arrival order, later events overriding earlier fields; one output Event
// per distinct key, in first-occurrence order. deep controls whether
// nested maps are merged recursively (true) or replaced wholesale (false).
func Merge(events []Event, deep bool) []Event {
	order := make([]string, 0)
	groups := make(map[string][]Event)
	for _, e := range events {
		ks := e.key.String()
		if _, ok := groups[ks]; !ok {
			order = append(order, ks)
		}
		groups[ks] = append(groups[ks], e)
	}
	out := make([]Event, 0, len(order))
	for _, ks := range order {
		g := groups[ks]
		merged := g[0]
		for _, e := range g[1:] {
			if deep {
				merged = Event{key: merged.key, data: mergeDeep(merged.data, e.data)}
			} else {
				merged = Event{key: merged.key, data: mergeShallow(merged.data, e.data)}
			}
		}
		out = append(out, merged)
	}
	return out
}

func mergeShallow(a, b Value) Value {
	out := a
	for _, k := range b.Keys() {
		v, _ := b.Get(k)
		out = out.Set(k, v)
	}
	return out
}

func mergeDeep(a, b Value) Value {
	out := a
	for _, k := range b.Keys() {
		bv, _ := b.Get(k)
		if av, ok := a.Get(k); ok && av.Kind() == MapValue && bv.Kind() == MapValue {
			out = out.Set(k, mergeDeep(av, bv))
		} else {
			out = out.Set(k, bv)
		}
	}
	return out
}

// Combine groups events by key string; for each field in fieldSpec it
// collects the per-event values into a list and applies reducer, emitting
// one event per key whose data is template's data (the group's first
// event) overlaid with the reduced fields. fieldSpec nil means every field
// present on the template event.
func Combine(events []Event, reducer Reducer, fieldSpec []string) []Event {
	order := make([]string, 0)
	groups := make(map[string][]Event)
	for _, e := range events {
		ks := e.key.String()
		if _, ok := groups[ks]; !ok {
			order = append(order, ks)
		}
		groups[ks] = append(groups[ks], e)
	}
	out := make([]Event, 0, len(order))
	for _, ks := range order {
		g := groups[ks]
		template := g[0]
		fields := fieldSpec
		if fields == nil {
			fields = template.data.Keys()
			sort.Strings(fields)
		}
		data := template.data
		for _, f := range fields {
			vals := make([]Value, 0, len(g))
			for _, e := range g {
				if v, ok := e.data.Get(f); ok {
					vals = append(vals, v)
				}
			}
			data = data.Set(f, reducer(vals))
		}
		out = append(out, Event{key: template.key, data: data})
	}
	return out
}
