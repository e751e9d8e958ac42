package stream

import (
	"github.com/influxdata/tscore/collection"
	"github.com/influxdata/tscore/edge"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/period"
)

// Trigger is the emission policy of a WindowNode.
type Trigger int

const (
	// PerEvent emits the updated (key, Collection) for every window an
	// incoming event falls into, on every event.
	PerEvent Trigger = iota
	// OnDiscardedWindow emits a window's (key, Collection) exactly once,
	// when the first event past the window's end time arrives.
	OnDiscardedWindow
)

// windowState is the per-key bookkeeping a WindowNode keeps: the
// accumulated SortedCollection and the resolved Index key (for WindowNode's
// own discard check). First-occurrence order of the keys is kept
// separately, in WindowNode.order.
type windowState struct {
	idx models.IndexKey
	sc  collection.SortedCollection
}

// WindowNode implements the streaming Window processor (spec §4.8): it
// assigns each incoming Event to every window it belongs to, accumulates
// a SortedCollection per window key, and emits (key, Collection) tuples
// per Trigger.
type WindowNode struct {
	*baseNode

	window  period.Window
	trigger Trigger
	group   GroupKeyFunc

	order  []string
	states map[string]*windowState
}

// GroupKeyFunc extracts a group prefix from an Event; nil means no
// grouping (the single implicit group "_" of spec §3.5, omitted from the
// composite key).
type GroupKeyFunc func(models.Event) string

func newWindowNode(name string, w period.Window, trigger Trigger, group GroupKeyFunc) *WindowNode {
	n := &WindowNode{
		window:  w,
		trigger: trigger,
		group:   group,
		states:  make(map[string]*windowState),
	}
	n.baseNode = newBase(name, "window", edge.KeyedCollectionEdge, n.process)
	return n
}

func (n *WindowNode) compositeKey(group string, idx models.IndexKey) string {
	if group == "" {
		return idx.String()
	}
	return group + windowedKeySep + idx.String()
}

func (n *WindowNode) process(msg interface{}) ([]interface{}, error) {
	e, err := asEvent(msg)
	if err != nil {
		return nil, err
	}

	group := ""
	if n.group != nil {
		group = n.group(e)
	}

	ts := e.Key().Timestamp()
	keys := n.window.GetIndexSet(ts)

	var out []interface{}
	for _, idx := range keys {
		ck := n.compositeKey(group, idx)
		st, ok := n.states[ck]
		if !ok {
			st = &windowState{idx: idx, sc: collection.NewSorted()}
			n.states[ck] = st
			n.order = append(n.order, ck)
		}
		st.sc = st.sc.AddEvent(e, collection.DedupReplace{})
		if n.trigger == PerEvent {
			out = append(out, KeyedCollection{Key: ck, Index: st.idx, Collection: st.sc})
		}
	}

	// Discard every tracked window whose end is <= the current event's
	// timestamp, emitting (key, collection) first when the trigger
	// requires it.
	remaining := n.order[:0]
	for _, ck := range n.order {
		st := n.states[ck]
		if !st.idx.End().After(ts) {
			if n.trigger == OnDiscardedWindow {
				out = append(out, KeyedCollection{Key: ck, Index: st.idx, Collection: st.sc})
			}
			delete(n.states, ck)
			continue
		}
		remaining = append(remaining, ck)
	}
	n.order = remaining

	return out, nil
}

const windowedKeySep = "::"

// GroupAndIndex splits a composite window key back into its group prefix
// (empty if ungrouped) and window index string, mirroring
// collection.GroupAndIndex for the streaming path.
func GroupAndIndex(compositeKey string) (group, indexString string) {
	return collection.GroupAndIndex(compositeKey)
}
