package transform

import "github.com/influxdata/tscore/models"

// Processor is a stateful event-to-events transform, used both by
// Collection's batch flat-map operations and by the stream graph's
// per-processor wrapper nodes.
type Processor interface {
	Process(e models.Event) ([]models.Event, error)
}

// Apply runs p over events in order, concatenating every call's output.
// It stops and returns the first error a call produces (processors fail
// immediately; no per-event swallowing).
func Apply(p Processor, events []models.Event) ([]models.Event, error) {
	var out []models.Event
	for _, e := range events {
		produced, err := p.Process(e)
		if err != nil {
			return nil, err
		}
		out = append(out, produced...)
	}
	return out, nil
}
