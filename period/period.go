package period

import "time"

// Period is a repeating sequence of aligned instants: every point t with
// (t - offset) mod frequency == 0.
type Period struct {
	Frequency Duration
	Offset    int64 // millis
}

// NewPeriod returns a Period with the given frequency and offset.
func NewPeriod(frequency Duration, offsetMillis int64) Period {
	return Period{Frequency: frequency, Offset: offsetMillis}
}

// floorDiv is integer division that rounds toward negative infinity,
// matching the mathematical "mod" used by the alignment invariant for
// negative inputs (timestamps before the epoch).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// IsAligned reports whether t is a period-aligned instant.
func (p Period) IsAligned(t time.Time) bool {
	return floorMod(t.UnixMilli()-p.Offset, p.Frequency.Millis) == 0
}

// Next returns the least t' > t aligned to p. If t is itself aligned, the
// result advances by one full frequency rather than returning t (preserved
// intentionally to match the reference implementation's boundary
// semantics).
func (p Period) Next(t time.Time) time.Time {
	ms := t.UnixMilli()
	k := floorDiv(ms-p.Offset, p.Frequency.Millis)
	candidate := p.Offset + k*p.Frequency.Millis
	if candidate <= ms {
		k++
	}
	return time.UnixMilli(p.Offset + k*p.Frequency.Millis).UTC()
}

// Within returns every aligned instant t with begin <= t < end.
func (p Period) Within(begin, end time.Time) []time.Time {
	b := begin.UnixMilli()
	e := end.UnixMilli()
	if e <= b {
		return nil
	}
	freq := p.Frequency.Millis
	k := floorDiv(b-p.Offset, freq)
	first := p.Offset + k*freq
	if first < b {
		first += freq
	}
	var out []time.Time
	for t := first; t < e; t += freq {
		out = append(out, time.UnixMilli(t).UTC())
	}
	return out
}
