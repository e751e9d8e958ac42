package period

import (
	"fmt"
	"time"

	"github.com/influxdata/tscore/models"
)

// Window is a (duration, period) pair describing a repeating, possibly
// overlapping, interval family: the n-th window spans
// [n*freq+offset, n*freq+offset+duration).
type Window struct {
	Duration Duration
	Period   Period
}

// NewFixedWindow returns a Window whose period frequency equals duration
// and whose offset is zero — the common non-overlapping case.
func NewFixedWindow(duration Duration) Window {
	return Window{Duration: duration, Period: Period{Frequency: duration, Offset: 0}}
}

// NewSlidingWindow returns a Window whose duration may differ from the
// period's frequency, producing overlapping windows.
func NewSlidingWindow(duration Duration, p Period) Window {
	return Window{Duration: duration, Period: p}
}

func (w Window) bucketFor(n int64) (begin, end int64) {
	begin = w.Period.Offset + n*w.Period.Frequency.Millis
	end = begin + w.Duration.Millis
	return
}

func (w Window) indexLiteral(n int64) string {
	freq := w.Period.Frequency
	if w.Duration.Millis == freq.Millis {
		if w.Period.Offset == 0 {
			return fmt.Sprintf("%s-%d", freq.Literal(), n)
		}
		return fmt.Sprintf("%s+%d-%d", freq.Literal(), w.Period.Offset, n)
	}
	if w.Period.Offset == 0 {
		return fmt.Sprintf("%s@%s-%d", w.Duration.Literal(), freq.Literal(), n)
	}
	return fmt.Sprintf("%s@%s+%d-%d", w.Duration.Literal(), freq.Literal(), w.Period.Offset, n)
}

func (w Window) keyFor(n int64) models.IndexKey {
	begin, end := w.bucketFor(n)
	return models.NewIndex(w.indexLiteral(n), time.UnixMilli(begin).UTC(), time.UnixMilli(end).UTC())
}

// GetIndexSet returns the set of Indexes covering the query: all windows
// whose [begin, end) contains t.
func (w Window) GetIndexSet(t time.Time) []models.IndexKey {
	return w.getIndexSetRange(t.UnixMilli(), t.UnixMilli()+1)
}

// GetIndexSetRange returns the union of GetIndexSet over every instant in
// [begin, end].
func (w Window) GetIndexSetRange(begin, end time.Time) []models.IndexKey {
	return w.getIndexSetRange(begin.UnixMilli(), end.UnixMilli()+1)
}

// getIndexSetRange returns every window n whose [begin,end) interval
// intersects the half-open millisecond range [lo, hi).
func (w Window) getIndexSetRange(lo, hi int64) []models.IndexKey {
	freq := w.Period.Frequency.Millis
	dur := w.Duration.Millis
	offset := w.Period.Offset

	// A window n overlaps [lo, hi) iff begin(n) < hi and end(n) > lo, i.e.
	// n*freq+offset < hi  =>  n < (hi-offset)/freq
	// n*freq+offset+dur > lo  =>  n > (lo-offset-dur)/freq
	nMax := floorDiv(hi-1-offset, freq)
	nMin := floorDiv(lo-offset-dur, freq) + 1

	var out []models.IndexKey
	for n := nMin; n <= nMax; n++ {
		begin, end := w.bucketFor(n)
		if begin < hi && end > lo {
			out = append(out, w.keyFor(n))
		}
	}
	return out
}
