package transform

import (
	"math"

	"github.com/influxdata/tscore/internal/diag"
	"github.com/influxdata/tscore/models"
	"github.com/pkg/errors"
)

// Fill replaces missing values in Time-keyed events according to Method.
// Zero/Pad hold per-field consecutive-fill counters; Linear buffers
// invalid events between two valid ones and interpolates across the gap.
type Fill struct {
	Fields []string
	Method FillMethod
	Limit  *int
	Diag   diag.Diagnostic

	// Zero/Pad state.
	previous      *models.Event
	fillCounts    map[string]int

	// Linear state (Fields must have exactly one entry).
	lastGood *models.Event
	buffer   []models.Event
}

// NewFill builds a Fill processor. Linear requires exactly one field path
// (spec §4.5 constraint). d may be nil, in which case warnings are
// discarded.
func NewFill(fields []string, method FillMethod, limit *int, d diag.Diagnostic) (*Fill, error) {
	if method != Zero && method != Pad && method != FillLinear {
		return nil, errors.Wrap(&UnknownFillMethod{Method: method}, "transform.NewFill")
	}
	if method == FillLinear && len(fields) != 1 {
		return nil, errors.Wrap(&UnknownFillMethod{Method: method}, "transform.NewFill: linear requires exactly one field")
	}
	if d == nil {
		d = diag.Noop{}
	}
	return &Fill{Fields: fields, Method: method, Limit: limit, Diag: d, fillCounts: make(map[string]int)}, nil
}

func missing(v models.Value, ok bool) bool {
	if !ok {
		return true
	}
	if v.Kind() != models.ScalarValue {
		return false
	}
	s, _ := v.Scalar()
	if s == nil {
		return true
	}
	if f, isNum := v.Float64(); isNum {
		return math.IsNaN(f)
	}
	return false
}

// Process dispatches to the Zero/Pad or Linear algorithm.
func (f *Fill) Process(e models.Event) ([]models.Event, error) {
	if err := e.IsValid("Fill", models.TimeKind); err != nil {
		return nil, err
	}
	if f.Method == FillLinear {
		return f.processLinear(e)
	}
	return f.processZeroPad(e)
}

func (f *Fill) processZeroPad(e models.Event) ([]models.Event, error) {
	out := e
	for _, field := range f.Fields {
		v, ok := e.Get(field)
		if !missing(v, ok) {
			f.fillCounts[field] = 0
			continue
		}
		if f.Limit != nil && f.fillCounts[field] >= *f.Limit {
			continue
		}
		switch f.Method {
		case Zero:
			out = out.Set(field, models.NewScalar(0.0))
		case Pad:
			if f.previous != nil {
				if pv, pok := f.previous.Get(field); !missing(pv, pok) {
					out = out.Set(field, pv)
				}
			}
		}
		f.fillCounts[field]++
	}
	f.previous = &out
	return []models.Event{out}, nil
}

func (f *Fill) processLinear(e models.Event) ([]models.Event, error) {
	field := f.Fields[0]
	v, ok := e.Get(field)
	_, isNum := v.Float64()
	valid := !missing(v, ok) && isNum
	if ok && !missing(v, ok) && !isNum {
		f.Diag.Warn("non-numeric value encountered during linear fill", "field", field)
		return []models.Event{e}, nil
	}

	if f.lastGood == nil {
		if valid {
			f.lastGood = &e
			return []models.Event{e}, nil
		}
		// No lastGood yet: pass through unchanged (nothing to interpolate
		// from).
		return []models.Event{e}, nil
	}

	if !valid {
		f.buffer = append(f.buffer, e)
		if f.Limit != nil && len(f.buffer) > *f.Limit {
			flushed := f.buffer
			f.buffer = nil
			f.lastGood = nil
			return flushed, nil
		}
		return nil, nil
	}

	if len(f.buffer) == 0 {
		f.lastGood = &e
		return []models.Event{e}, nil
	}

	interpolated := f.interpolate(*f.lastGood, f.buffer, e, field)
	f.buffer = nil
	f.lastGood = &e
	return append(interpolated, e), nil
}

func (f *Fill) interpolate(lastGood models.Event, buffer []models.Event, current models.Event, field string) []models.Event {
	lv, _ := lastGood.Get(field)
	lf, _ := lv.Float64()
	cv, _ := current.Get(field)
	cf, _ := cv.Float64()

	lastTS := lastGood.Key().Timestamp()
	curTS := current.Key().Timestamp()
	span := float64(curTS.Sub(lastTS))

	out := make([]models.Event, 0, len(buffer))
	for _, e := range buffer {
		ts := e.Key().Timestamp()
		frac := float64(ts.Sub(lastTS)) / span
		val := lf + frac*(cf-lf)
		out = append(out, e.Set(field, models.NewScalar(val)))
	}
	return out
}
