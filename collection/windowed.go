package collection

import (
	"strings"

	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/period"
	"github.com/influxdata/tscore/reduce"
)

const windowedKeySep = "::"

// WindowedCollection maps "<groupKey>::<windowIndexString>" (or just
// "<windowIndexString>" when there is no grouping) to the SortedCollection
// of events assigned to that window.
type WindowedCollection struct {
	groups map[string]SortedCollection
	order  []string
	// idxOf lets Aggregate recover each window's resolved Index key
	// without re-parsing the composite string.
	idxOf map[string]models.IndexKey
}

func newWindowed() *WindowedCollection {
	return &WindowedCollection{
		groups: make(map[string]SortedCollection),
		idxOf:  make(map[string]models.IndexKey),
	}
}

func (w *WindowedCollection) add(compositeKey string, idx models.IndexKey, e models.Event) {
	sc, ok := w.groups[compositeKey]
	if !ok {
		sc = NewSorted()
		w.order = append(w.order, compositeKey)
		w.idxOf[compositeKey] = idx
	}
	w.groups[compositeKey] = sc.AddEvent(e, DedupReplace{})
}

// Window assigns every event of c to the window(s) it belongs to under w,
// with the single implicit group "_" omitted from the composite key (spec
// §3.5: "prefix and separator omitted when there is no grouping").
func (c Collection) Window(w period.Window) WindowedCollection {
	out := newWindowed()
	for _, e := range c.EventList() {
		for _, idx := range w.GetIndexSet(e.Key().Timestamp()) {
			out.add(idx.String(), idx, e)
		}
	}
	return *out
}

// Window assigns every event of every group to the window(s) it belongs
// to under w, composing each composite key as "group::windowIndexString".
func (g GroupedCollection) Window(w period.Window) WindowedCollection {
	out := newWindowed()
	for _, gk := range g.order {
		sc := g.groups[gk]
		for _, e := range sc.EventList() {
			for _, idx := range w.GetIndexSet(e.Key().Timestamp()) {
				out.add(gk+windowedKeySep+idx.String(), idx, e)
			}
		}
	}
	return *out
}

// Keys returns the composite window keys in first-occurrence order.
func (w WindowedCollection) Keys() []string { return append([]string(nil), w.order...) }

// Get returns the SortedCollection for a composite key.
func (w WindowedCollection) Get(key string) (SortedCollection, bool) {
	sc, ok := w.groups[key]
	return sc, ok
}

// GroupAndIndex splits a composite key back into its group key (empty if
// ungrouped) and window index string.
func GroupAndIndex(compositeKey string) (group, indexString string) {
	if i := strings.LastIndex(compositeKey, windowedKeySep); i >= 0 {
		return compositeKey[:i], compositeKey[i+len(windowedKeySep):]
	}
	return "", compositeKey
}

// Aggregate reduces every window through spec, re-emitting the result as a
// GroupedCollection<Index>: each composite key becomes one Event whose Key
// is the window's Index and whose group is its prefix (empty when
// ungrouped).
func (w WindowedCollection) Aggregate(spec reduce.Spec) GroupedCollection {
	byGroup := make(map[string][]models.Event)
	order := make([]string, 0)
	for _, ck := range w.order {
		sc := w.groups[ck]
		group, _ := GroupAndIndex(ck)
		data := models.EmptyMap()
		for outField, fr := range spec {
			data = data.Set(outField, sc.Aggregate(fr.Reducer, fr.SrcField))
		}
		e := models.New(w.idxOf[ck], data)
		if _, ok := byGroup[group]; !ok {
			order = append(order, group)
		}
		byGroup[group] = append(byGroup[group], e)
	}
	groups := make(map[string]SortedCollection, len(byGroup))
	for k, evs := range byGroup {
		groups[k] = NewSorted(evs...)
	}
	return GroupedCollection{groups: groups, order: order}
}
