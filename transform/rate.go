package transform

import (
	"github.com/influxdata/tscore/internal/diag"
	"github.com/influxdata/tscore/models"
)

// Rate computes a per-second rate of change between consecutive
// Time-keyed events, emitting a TimeRange-keyed event per call (after the
// first).
type Rate struct {
	Fields        []string
	AllowNegative bool
	Diag          diag.Diagnostic

	previous *models.Event
}

// NewRate builds a Rate processor. d may be nil, in which case warnings
// are discarded.
func NewRate(fields []string, allowNegative bool, d diag.Diagnostic) *Rate {
	if d == nil {
		d = diag.Noop{}
	}
	return &Rate{Fields: fields, AllowNegative: allowNegative, Diag: d}
}

// rateFieldName suffixes path's final segment with "_rate".
func rateFieldName(path string) string {
	return path + "_rate"
}

// Process implements the Rate algorithm (spec §4.4).
func (r *Rate) Process(e models.Event) ([]models.Event, error) {
	if err := e.IsValid("Rate", models.TimeKind); err != nil {
		return nil, err
	}
	if r.previous == nil {
		prev := e
		r.previous = &prev
		return nil, nil
	}

	prev := *r.previous
	prevTS := prev.Key().Timestamp()
	curTS := e.Key().Timestamp()
	dt := curTS.Sub(prevTS).Seconds()

	data := models.EmptyMap()
	for _, field := range r.Fields {
		newField := rateFieldName(field)
		pv, pok := prev.Get(field)
		cv, cok := e.Get(field)
		pf, pnum := pv.Float64()
		cf, cnum := cv.Float64()

		switch {
		case !pok || !cok:
			data = data.Set(newField, models.NewScalar(nil))
		case !pnum || !cnum:
			r.Diag.Warn("non-numeric value during rate computation", "field", field)
			data = data.Set(newField, models.NewScalar(nil))
		default:
			rate := (cf - pf) / dt
			if !r.AllowNegative && rate < 0 {
				r.Diag.Warn("negative rate with allowNegative false", "field", field)
				data = data.Set(newField, models.NewScalar(nil))
			} else {
				data = data.Set(newField, models.NewScalar(rate))
			}
		}
	}

	next := e
	r.previous = &next
	return []models.Event{models.New(models.NewTimeRange(prevTS, curTS), data)}, nil
}
