package models

import (
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"
)

// stringHasher implements immutable.Hasher[string] for the field maps
// backing Value. Grounded on the Map usage pattern shown by
// benbjohnson/immutable's own hash-based map: a Hasher only needs to be
// consistent, not cryptographic.
type stringHasher struct{}

func (stringHasher) Hash(key string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return h
}

func (stringHasher) Equal(a, b string) bool { return a == b }

// Value is the dynamic, JSON-like data an Event carries: scalars (bool,
// int64, float64, string, nil) or nested structure (an ordered field map or
// a list), all stored in an immutable.Map/immutable.List so that Get/Set
// share structure with their receivers instead of deep-copying (spec §2.2,
// "events are immutable; derived events share structure with their
// source").
type Value struct {
	scalar interface{}
	fields *immutable.Map[string, Value]
	list   *immutable.List[Value]
}

// ValueKind enumerates the dynamic shape a Value holds.
type ValueKind int

const (
	ScalarValue ValueKind = iota
	MapValue
	ListValue
)

func (v Value) Kind() ValueKind {
	switch {
	case v.fields != nil:
		return MapValue
	case v.list != nil:
		return ListValue
	default:
		return ScalarValue
	}
}

// NewScalar wraps a bool, int64, float64, string, or nil as a Value.
func NewScalar(v interface{}) Value {
	return Value{scalar: v}
}

// EmptyMap returns the empty field-map Value.
func EmptyMap() Value {
	return Value{fields: immutable.NewMap[string, Value](stringHasher{})}
}

// EmptyList returns the empty list Value.
func EmptyList() Value {
	return Value{list: immutable.NewList[Value]()}
}

// NewListOf builds a list Value directly from a slice of Values, without
// going through NewValue's copystructure boundary — used by reducers that
// already hold Value trees (e.g. the Keep reducer).
func NewListOf(values []Value) Value {
	b := immutable.NewListBuilder[Value]()
	for _, v := range values {
		b.Append(v)
	}
	return Value{list: b.List()}
}

// NewValue deep-copies an arbitrary Go value (as produced by decoding JSON,
// for instance: map[string]interface{}, []interface{}, and scalars) into a
// Value tree. The deep copy happens once at the system boundary via
// copystructure, matching the pattern used for inbound override documents;
// afterward Get/Set never copy again because immutable.Map/List share
// structure.
func NewValue(v interface{}) (Value, error) {
	cp, err := copystructure.Copy(v)
	if err != nil {
		return Value{}, errors.Wrap(err, "models: copy value")
	}
	return fromInterface(cp), nil
}

func fromInterface(v interface{}) Value {
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := immutable.NewMap[string, Value](stringHasher{})
		for _, k := range keys {
			m = m.Set(k, fromInterface(t[k]))
		}
		return Value{fields: m}
	case []interface{}:
		b := immutable.NewListBuilder[Value]()
		for _, e := range t {
			b.Append(fromInterface(e))
		}
		return Value{list: b.List()}
	default:
		return Value{scalar: v}
	}
}

// Get walks a '.'-separated field path through nested maps. It returns
// false if any segment is missing or the value at that point isn't a map.
func (v Value) Get(path string) (Value, bool) {
	cur := v
	if path == "" {
		return cur, true
	}
	for _, seg := range strings.Split(path, ".") {
		if cur.fields == nil {
			return Value{}, false
		}
		next, ok := cur.fields.Get(seg)
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// Set returns a new Value with the field path set to val, creating
// intermediate maps as needed. The receiver is left unmodified; the
// returned Value shares structure with it outside the changed path (spec
// §2.2).
func (v Value) Set(path string, val Value) Value {
	if path == "" {
		return val
	}
	segs := strings.Split(path, ".")
	return v.setPath(segs, val)
}

func (v Value) setPath(segs []string, val Value) Value {
	fields := v.fields
	if fields == nil {
		fields = immutable.NewMap[string, Value](stringHasher{})
	}
	if len(segs) == 1 {
		return Value{fields: fields.Set(segs[0], val)}
	}
	child, ok := fields.Get(segs[0])
	if !ok {
		child = EmptyMap()
	}
	return Value{fields: fields.Set(segs[0], child.setPath(segs[1:], val))}
}

// Delete returns a new Value with path removed.
func (v Value) Delete(path string) Value {
	if v.fields == nil || path == "" {
		return v
	}
	segs := strings.Split(path, ".")
	if len(segs) == 1 {
		return Value{fields: v.fields.Delete(segs[0])}
	}
	child, ok := v.fields.Get(segs[0])
	if !ok {
		return v
	}
	return Value{fields: v.fields.Set(segs[0], child.Delete(strings.Join(segs[1:], ".")))}
}

// Keys returns the sorted field names of a map Value, or nil otherwise.
func (v Value) Keys() []string {
	if v.fields == nil {
		return nil
	}
	keys := make([]string, 0, v.fields.Len())
	itr := v.fields.Iterator()
	for !itr.Done() {
		k, _, _ := itr.Next()
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements of a list Value, or -1 if v isn't a
// list.
func (v Value) Len() int {
	if v.list == nil {
		return -1
	}
	return v.list.Len()
}

// Index returns the i-th element of a list Value.
func (v Value) Index(i int) Value {
	return v.list.Get(i)
}

// Scalar returns the underlying scalar and true, or (nil, false) if v isn't
// a scalar.
func (v Value) Scalar() (interface{}, bool) {
	if v.Kind() != ScalarValue {
		return nil, false
	}
	return v.scalar, true
}

// Float64 returns v's scalar as a float64 when it is numeric, for use by
// the reduce package's aggregations.
func (v Value) Float64() (float64, bool) {
	s, ok := v.Scalar()
	if !ok {
		return 0, false
	}
	switch n := s.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// ToInterface converts a Value back into plain Go data (map[string]interface{},
// []interface{}, or a scalar), the inverse of NewValue, used at the output
// boundary (spec §6.2 JSON encoding).
func (v Value) ToInterface() interface{} {
	switch v.Kind() {
	case MapValue:
		out := make(map[string]interface{}, v.fields.Len())
		itr := v.fields.Iterator()
		for !itr.Done() {
			k, val, _ := itr.Next()
			out[k] = val.ToInterface()
		}
		return out
	case ListValue:
		out := make([]interface{}, 0, v.list.Len())
		itr := v.list.Iterator()
		for !itr.Done() {
			_, val := itr.Next()
			out = append(out, val.ToInterface())
		}
		return out
	default:
		return v.scalar
	}
}

// Equal reports whether v and other hold the same data, independent of
// whether they share structure.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case ScalarValue:
		return v.scalar == other.scalar
	case MapValue:
		if v.fields.Len() != other.fields.Len() {
			return false
		}
		itr := v.fields.Iterator()
		for !itr.Done() {
			k, val, _ := itr.Next()
			ov, ok := other.fields.Get(k)
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	case ListValue:
		if v.list.Len() != other.list.Len() {
			return false
		}
		for i := 0; i < v.list.Len(); i++ {
			if !v.list.Get(i).Equal(other.list.Get(i)) {
				return false
			}
		}
		return true
	}
	return false
}
