// Package stream implements the core's streaming processor graph (spec
// §4.10): a synchronous, single-threaded tree of Nodes that Events (and,
// downstream of a WindowNode, KeyedCollection tuples) flow through.
package stream

import (
	"bytes"
	"fmt"

	"github.com/influxdata/tscore/internal/diag"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/period"
	"github.com/influxdata/tscore/reduce"
	"github.com/influxdata/tscore/transform"
)

// Stream owns the root Node of a processor graph and a monotonic name
// counter shared by every facade built on it, so every node in the tree
// gets a unique name for Stats/WriteDot regardless of which facade
// attached it.
type Stream struct {
	root Node
	seq  int
}

func (s *Stream) nextName(kind string) string {
	s.seq++
	return fmt.Sprintf("%s%d", kind, s.seq)
}

// AddEvent feeds e into the root of the graph. It blocks until every
// node reachable from the root has finished processing e (spec §5: the
// core is single-threaded and synchronous; add_event executes the
// entire observer subtree to completion before returning).
func (s *Stream) AddEvent(e models.Event) error {
	return s.root.Set(e)
}

// AddKeyedCollection feeds a (key, Collection) tuple into the root of a
// graph rooted at a KeyedCollectionInput.
func (s *Stream) AddKeyedCollection(kc KeyedCollection) error {
	return s.root.Set(kc)
}

// WriteDot renders the entire graph reachable from the root as Graphviz
// dot source.
func (s *Stream) WriteDot() string {
	var buf bytes.Buffer
	buf.WriteString("digraph stream {\n")
	seen := make(map[Node]bool)
	var visit func(n Node)
	visit = func(n Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		n.WriteDot(&buf)
		for _, o := range n.children() {
			visit(o)
		}
	}
	visit(s.root)
	buf.WriteString("}\n")
	return buf.String()
}

// EventStream is a facade carrying (stream, tail): every chaining method
// creates a node, attaches it as an observer of tail, and returns a new
// facade whose tail is the new node. Holding onto one facade value and
// chaining from it more than once branches the graph — both branches
// share every upstream node's work (spec §4.10's "Branching").
type EventStream struct {
	s    *Stream
	tail Node
}

// NewEventStream builds a new Stream rooted at an EventInput node and
// returns the facade for chaining.
func NewEventStream() EventStream {
	s := &Stream{}
	root := newEventInput("input")
	s.root = root
	return EventStream{s: s, tail: root}
}

// Stream returns the underlying Stream, for AddEvent/WriteDot.
func (f EventStream) Stream() *Stream { return f.s }

func (f EventStream) attach(n Node) EventStream {
	f.tail.AddObserver(n)
	return EventStream{s: f.s, tail: n}
}

func (f EventStream) Map(fn MapFunc) EventStream {
	return f.attach(newMap(f.s.nextName("map"), fn))
}

func (f EventStream) FlatMap(fn FlatMapFunc) EventStream {
	return f.attach(newFlatMap(f.s.nextName("flatmap"), fn))
}

func (f EventStream) Filter(fn FilterFunc) EventStream {
	return f.attach(newFilter(f.s.nextName("filter"), fn))
}

// Align attaches an Align processor node (spec §4.3).
func (f EventStream) Align(fields []string, p period.Period, method transform.AlignMethod, limit *int, d diag.Diagnostic) (EventStream, error) {
	a, err := transform.NewAlign(fields, p, method, limit, d)
	if err != nil {
		return EventStream{}, err
	}
	return f.attach(newAlignNode(f.s.nextName("align"), a)), nil
}

// Fill attaches a Fill processor node (spec §4.5).
func (f EventStream) Fill(fields []string, method transform.FillMethod, limit *int, d diag.Diagnostic) (EventStream, error) {
	fl, err := transform.NewFill(fields, method, limit, d)
	if err != nil {
		return EventStream{}, err
	}
	return f.attach(newFillNode(f.s.nextName("fill"), fl)), nil
}

// Rate attaches a Rate processor node (spec §4.4).
func (f EventStream) Rate(fields []string, allowNegative bool, d diag.Diagnostic) EventStream {
	r := transform.NewRate(fields, allowNegative, d)
	return f.attach(newRateNode(f.s.nextName("rate"), r))
}

// Select attaches a Select processor node (spec §4.7).
func (f EventStream) Select(fields ...string) EventStream {
	return f.attach(newSelectNode(f.s.nextName("select"), transform.Select{Fields: fields}))
}

// Collapse attaches a Collapse processor node (spec §4.7).
func (f EventStream) Collapse(fields []string, outName string, reducer models.Reducer, appendFields bool) EventStream {
	c := transform.Collapse{Fields: fields, OutName: outName, Reducer: reducer, Append: appendFields}
	return f.attach(newCollapseNode(f.s.nextName("collapse"), c))
}

// Reduce attaches a rolling-reduce processor node (spec §4.6).
func (f EventStream) Reduce(count int, iteratee transform.Iteratee, initial *models.Event) EventStream {
	r := transform.NewRollingReduce(count, iteratee, initial)
	return f.attach(newReduceNode(f.s.nextName("reduce"), r))
}

// Window attaches a WindowNode (spec §4.8) and switches the facade to
// KeyedCollectionStream, the output type of a WindowNode.
func (f EventStream) Window(w period.Window, trigger Trigger, group GroupKeyFunc) KeyedCollectionStream {
	n := newWindowNode(f.s.nextName("window"), w, trigger, group)
	f.tail.AddObserver(n)
	return KeyedCollectionStream{s: f.s, tail: n}
}

// Output attaches a terminal EventOutput sink invoking cb for every
// Event that reaches this point in the graph.
func (f EventStream) Output(cb EventCallback) {
	f.tail.AddObserver(newEventOutput(f.s.nextName("output"), cb))
}

// KeyedCollectionStream is the facade for the (key, Collection) side of
// the graph, produced by EventStream.Window or NewKeyedCollectionStream.
type KeyedCollectionStream struct {
	s    *Stream
	tail Node
}

// NewKeyedCollectionStream builds a new Stream rooted at a
// KeyedCollectionInput node, for graphs fed directly by an external
// producer of (key, Collection) tuples rather than a WindowNode.
func NewKeyedCollectionStream() KeyedCollectionStream {
	s := &Stream{}
	root := newKeyedCollectionInput("input")
	s.root = root
	return KeyedCollectionStream{s: s, tail: root}
}

func (f KeyedCollectionStream) Stream() *Stream { return f.s }

// Aggregation attaches an Aggregation node (spec §4.9) and switches the
// facade back to EventStream, the output type of an Aggregation node.
func (f KeyedCollectionStream) Aggregation(spec reduce.Spec) EventStream {
	n := newAggregationNode(f.s.nextName("aggregation"), spec)
	f.tail.AddObserver(n)
	return EventStream{s: f.s, tail: n}
}

// Output attaches a terminal KeyedCollectionOutput sink invoking cb for
// every (key, Collection) tuple that reaches this point in the graph.
func (f KeyedCollectionStream) Output(cb EventCallback) {
	f.tail.AddObserver(newKeyedCollectionOutput(f.s.nextName("output"), cb))
}
