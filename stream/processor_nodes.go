package stream

import (
	"github.com/influxdata/tscore/edge"
	"github.com/influxdata/tscore/transform"
)

// newProcessorNode wraps any transform.Processor as an Event->Event node:
// the common shape shared by Align, Fill, Rate, Select, Collapse and the
// rolling Reduce node.
func newProcessorNode(name, desc string, p transform.Processor) *baseNode {
	return newBase(name, desc, edge.EventEdge, func(msg interface{}) ([]interface{}, error) {
		e, err := asEvent(msg)
		if err != nil {
			return nil, err
		}
		produced, err := p.Process(e)
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, len(produced))
		for i, pe := range produced {
			out[i] = pe
		}
		return out, nil
	})
}

func newAlignNode(name string, a *transform.Align) *baseNode {
	return newProcessorNode(name, "align", a)
}

func newFillNode(name string, f *transform.Fill) *baseNode {
	return newProcessorNode(name, "fill", f)
}

func newRateNode(name string, r *transform.Rate) *baseNode {
	return newProcessorNode(name, "rate", r)
}

func newSelectNode(name string, s transform.Select) *baseNode {
	return newProcessorNode(name, "select", s)
}

func newCollapseNode(name string, c transform.Collapse) *baseNode {
	return newProcessorNode(name, "collapse", c)
}

func newReduceNode(name string, r *transform.RollingReduce) *baseNode {
	return newProcessorNode(name, "reduce", r)
}
