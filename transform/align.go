package transform

import (
	"time"

	"github.com/influxdata/tscore/internal/diag"
	"github.com/influxdata/tscore/models"
	"github.com/influxdata/tscore/period"
	"github.com/pkg/errors"
)

// Align resamples irregular Time-keyed events onto period boundaries. It
// holds one Event of state (the previous input) across calls to Process.
type Align struct {
	Fields []string
	Period period.Period
	Method AlignMethod
	Limit  *int
	Diag   diag.Diagnostic

	previous *models.Event
}

// NewAlign builds an Align processor. d may be nil, in which case warnings
// are discarded.
func NewAlign(fields []string, p period.Period, method AlignMethod, limit *int, d diag.Diagnostic) (*Align, error) {
	if method != Hold && method != Linear {
		return nil, errors.Wrap(&UnknownAlignmentMethod{Method: method}, "transform.NewAlign")
	}
	if d == nil {
		d = diag.Noop{}
	}
	return &Align{Fields: fields, Period: p, Method: method, Limit: limit, Diag: d}, nil
}

// Process implements the streaming Align algorithm (spec §4.3): resample
// e's fields onto every period boundary crossed since the previous event.
func (a *Align) Process(e models.Event) ([]models.Event, error) {
	if err := e.IsValid("Align", models.TimeKind); err != nil {
		return nil, err
	}

	if a.previous == nil {
		prev := e
		a.previous = &prev
		if a.Period.IsAligned(e.Key().Timestamp()) {
			return []models.Event{e.Select(a.Fields...)}, nil
		}
		return nil, nil
	}

	prevEvent := *a.previous
	boundaries := boundariesBetween(a.Period, prevEvent.Key().Timestamp(), e.Key().Timestamp())
	next := e
	a.previous = &next

	if len(boundaries) == 0 {
		return nil, nil
	}

	out := make([]models.Event, 0, len(boundaries))
	for _, b := range boundaries {
		switch {
		case a.Limit != nil && len(boundaries) > *a.Limit:
			out = append(out, a.holdEvent(prevEvent, b, true))
		case a.Method == Hold:
			out = append(out, a.holdEvent(prevEvent, b, false))
		default:
			out = append(out, a.linearEvent(prevEvent, e, b))
		}
	}
	return out, nil
}

func (a *Align) holdEvent(prev models.Event, b time.Time, forceNull bool) models.Event {
	data := models.EmptyMap()
	for _, f := range a.Fields {
		if forceNull {
			data = data.Set(f, models.NewScalar(nil))
			continue
		}
		if v, ok := prev.Get(f); ok {
			data = data.Set(f, v)
		} else {
			data = data.Set(f, models.NewScalar(nil))
		}
	}
	return models.New(models.NewTime(b), data)
}

func (a *Align) linearEvent(prev, cur models.Event, b time.Time) models.Event {
	prevTS := prev.Key().Timestamp()
	curTS := cur.Key().Timestamp()
	f := float64(b.Sub(prevTS)) / float64(curTS.Sub(prevTS))

	data := models.EmptyMap()
	for _, field := range a.Fields {
		pv, pok := prev.Get(field)
		cv, cok := cur.Get(field)
		pf, pnum := pv.Float64()
		cf, cnum := cv.Float64()
		if !pok || !cok || !pnum || !cnum {
			a.Diag.Warn("non-numeric value during linear align interpolation", "field", field)
			data = data.Set(field, models.NewScalar(nil))
			continue
		}
		data = data.Set(field, models.NewScalar(pf+f*(cf-pf)))
	}
	return models.New(models.NewTime(b), data)
}

// boundariesBetween returns every instant t aligned to p with
// previous < t <= current — a half-open interval, left-exclusive,
// right-inclusive (the reference Align's own convention, distinct from
// Period.Within's [begin, end) definition). Two events with identical or
// reversed timestamps yield no boundaries.
func boundariesBetween(p period.Period, previous, current time.Time) []time.Time {
	if !current.After(previous) {
		return nil
	}
	var out []time.Time
	for t := p.Next(previous); !t.After(current); t = p.Next(t) {
		out = append(out, t)
	}
	return out
}
