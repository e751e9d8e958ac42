package transform

import (
	"github.com/influxdata/tscore/internal/ringbuffer"
	"github.com/influxdata/tscore/models"
)

// Iteratee folds the current accumulator and the rolling window of the
// last <= count events into a new accumulator event.
type Iteratee func(accumulator *models.Event, window []models.Event) models.Event

// RollingReduce holds a bounded ring buffer of the last count events and
// an accumulator, updated and re-emitted on every input (spec §4.6).
type RollingReduce struct {
	Count    int
	Iteratee Iteratee

	ring        *ringbuffer.Queue[models.Event]
	accumulator *models.Event
}

// NewRollingReduce builds a RollingReduce processor. initial, if non-nil,
// seeds the accumulator before the first event is processed.
func NewRollingReduce(count int, iteratee Iteratee, initial *models.Event) *RollingReduce {
	return &RollingReduce{
		Count:       count,
		Iteratee:    iteratee,
		ring:        ringbuffer.New[models.Event](),
		accumulator: initial,
	}
}

// Process pushes e into the ring (dropping the oldest entry on overflow),
// folds the accumulator, and emits it.
func (r *RollingReduce) Process(e models.Event) ([]models.Event, error) {
	ringbuffer.Enqueue(r.ring, e)
	if r.ring.Len > r.Count {
		r.ring.Dequeue(r.ring.Len - r.Count)
	}
	window := r.ring.Slice()
	acc := r.Iteratee(r.accumulator, window)
	r.accumulator = &acc
	return []models.Event{acc}, nil
}
