package stream

import (
	"bytes"
	"fmt"
	"log"

	"github.com/influxdata/tscore/collection"
	"github.com/influxdata/tscore/edge"
	"github.com/influxdata/tscore/expvar"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/timer"
	"github.com/pkg/errors"
)

// defaultTimerSampleRate and defaultTimerAvgSize match the conservative
// profiling defaults used elsewhere in the corpus for per-node execution
// timing: sample one in ten calls, average over the last 1000 samples.
const (
	defaultTimerSampleRate = 0.1
	defaultTimerAvgSize    = 1000
)

// KeyedCollection is the payload type of a KeyedCollectionEdge: a
// window's composite key (group prefix plus index string, spec §3.5)
// paired with the SortedCollection accumulated for it and the resolved
// Index key the Aggregation node re-emits events under.
type KeyedCollection struct {
	Key        string
	Index      models.IndexKey
	Collection collection.SortedCollection
}

// ProcessFunc transforms one incoming message into zero or more outgoing
// messages. msg and the entries of the returned slice are each either a
// models.Event or a KeyedCollection, depending on the node's edge Type.
type ProcessFunc func(msg interface{}) ([]interface{}, error)

// Node is a single stage of the stream graph: it transforms an incoming
// message and forwards every result to its observers, in attachment
// order, each running to completion before the next begins.
type Node interface {
	Set(msg interface{}) error
	AddObserver(n Node)
	Name() string
	Desc() string
	Stats() Stats
	WriteDot(buf *bytes.Buffer)
	children() []Node

	// snapshot and restore are no-op hooks by default. The core performs no
	// I/O itself (spec: a dropped Stream discards pending state, no flush
	// is attempted) but a hosting runtime that wants to persist a
	// processor's internal state (Align's previous event, Fill's buffer,
	// Window's per-key collections) across restarts needs a seam to do so.
	snapshot() ([]byte, error)
	restore(data []byte) error
}

// Stats is a snapshot of a Node's execution counters.
type Stats struct {
	Collected int64
	Emitted   int64
}

type baseNode struct {
	name      string
	desc      string
	observers []Node
	out       *edge.Edge
	stats     *expvar.Map
	timer     timer.Timer
	process   ProcessFunc
	logger    *log.Logger
}

func newBase(name, desc string, edgeType edge.Type, process ProcessFunc) *baseNode {
	n := &baseNode{
		name:    name,
		desc:    desc,
		out:     edge.New(edgeType),
		stats:   (&expvar.Map{}).Init(),
		timer:   timer.New(defaultTimerSampleRate, defaultTimerAvgSize),
		process: process,
		logger:  log.New(log.Writer(), fmt.Sprintf("[%s] ", name), log.LstdFlags),
	}
	n.stats.Set("collected", new(expvar.Int))
	n.stats.Set("emitted", new(expvar.Int))
	return n
}

func (n *baseNode) Name() string { return n.name }
func (n *baseNode) Desc() string { return n.desc }

func (n *baseNode) AddObserver(obs Node) {
	n.observers = append(n.observers, obs)
}

func (n *baseNode) children() []Node { return n.observers }

// Set runs process on msg, then forwards every output to each observer in
// attachment order, each running to completion before the next output (or
// the next observer) is dispatched. The first error from process or from
// any observer aborts immediately and propagates to the caller.
func (n *baseNode) Set(msg interface{}) error {
	n.timer.Start()
	outputs, err := n.process(msg)
	n.timer.Stop()
	n.stats.Add("collected", 1)
	if err != nil {
		n.logger.Println("E!", err)
		return errors.Wrapf(err, "node %s", n.name)
	}
	for _, out := range outputs {
		n.stats.Add("emitted", 1)
		for _, obs := range n.observers {
			o := obs
			outCopy := out
			if err := n.out.Forward(func() error { return o.Set(outCopy) }); err != nil {
				return err
			}
		}
	}
	return nil
}

// snapshot and restore are no-ops by default; no node in this package
// overrides them, so Align, Fill and Window state is not captured.
func (n *baseNode) snapshot() ([]byte, error) { return nil, nil }
func (n *baseNode) restore(data []byte) error { return nil }

func (n *baseNode) Stats() Stats {
	return Stats{
		Collected: n.stats.Get("collected").(expvar.IntVar).IntValue(),
		Emitted:   n.stats.Get("emitted").(expvar.IntVar).IntValue(),
	}
}

func (n *baseNode) WriteDot(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%s [label=\"%s\"];\n", dotID(n), n.name)
	for _, obs := range n.observers {
		fmt.Fprintf(buf, "%s -> %s;\n", dotID(n), dotID(obs))
	}
}

func dotID(n Node) string {
	return fmt.Sprintf("%q", n.Name())
}
