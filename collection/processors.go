package collection

import (
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/transform"
)

// Align runs the Align processor across c's events in batch flat-map mode,
// returning a new Collection (or the first InvalidKeyKind/anomaly error).
func (c Collection) Align(a *transform.Align) (Collection, error) {
	out, err := transform.Apply(a, c.EventList())
	if err != nil {
		return Collection{}, err
	}
	return New(out...), nil
}

// Rate runs the Rate processor across c's events in batch flat-map mode.
func (c Collection) Rate(r *transform.Rate) (Collection, error) {
	out, err := transform.Apply(r, c.EventList())
	if err != nil {
		return Collection{}, err
	}
	return New(out...), nil
}

// Fill runs the Fill processor across c's events in batch flat-map mode.
func (c Collection) Fill(f *transform.Fill) (Collection, error) {
	out, err := transform.Apply(f, c.EventList())
	if err != nil {
		return Collection{}, err
	}
	return New(out...), nil
}

// Select retains only the named top-level fields of every event.
func (c Collection) Select(fields ...string) Collection {
	return c.Map(func(e models.Event) models.Event { return e.Select(fields...) })
}

// Collapse adds outName = reducer(fields) to every event.
func (c Collection) Collapse(fields []string, outName string, reducer models.Reducer, appendFields bool) Collection {
	return c.Map(func(e models.Event) models.Event {
		return e.Collapse(fields, outName, reducer, appendFields)
	})
}
