package transform

import "github.com/influxdata/tscore/models"

// Select is the stateless processor wrapping Event.Select: it retains only
// the named top-level fields and emits exactly one event per input.
type Select struct {
	Fields []string
}

func (s Select) Process(e models.Event) ([]models.Event, error) {
	return []models.Event{e.Select(s.Fields...)}, nil
}

// Collapse is the stateless processor wrapping Event.Collapse.
type Collapse struct {
	Fields   []string
	OutName  string
	Reducer  models.Reducer
	Append   bool
}

func (c Collapse) Process(e models.Event) ([]models.Event, error) {
	return []models.Event{e.Collapse(c.Fields, c.OutName, c.Reducer, c.Append)}, nil
}
