package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// KeyKind identifies which of the three Key variants an event carries.
type KeyKind string

const (
	TimeKind      KeyKind = "time"
	TimeRangeKind KeyKind = "timerange"
	IndexKind     KeyKind = "index"
)

func (k KeyKind) String() string { return string(k) }

// Key tags an Event for ordering and windowing. It is one of Time,
// TimeRange, or Index (see key.go, index.go in the period package for the
// latter's grammar). Key's string form is the canonical equality token used
// throughout group-by and dedup paths (spec §9 "Key equality").
type Key interface {
	Kind() KeyKind
	Timestamp() time.Time
	Begin() time.Time
	End() time.Time
	String() string
	// ToJSON returns the wire representation used by §6.2's column-row
	// format: a millisecond integer for Time, a two-element millisecond
	// pair for TimeRange, or the index string itself for Index.
	ToJSON() interface{}
}

// TimeKey is a single instant. Begin and End both equal the instant.
type TimeKey struct {
	t time.Time
}

// NewTime returns a Key for a single instant, rounded to the nearest
// millisecond (the core's stated resolution, spec §3.1).
func NewTime(t time.Time) TimeKey {
	return TimeKey{t: t.Round(time.Millisecond)}
}

// NewTimeMillis returns a Key for the instant ms milliseconds since the
// Unix epoch.
func NewTimeMillis(ms int64) TimeKey {
	return TimeKey{t: time.UnixMilli(ms).UTC()}
}

func (k TimeKey) Kind() KeyKind         { return TimeKind }
func (k TimeKey) Timestamp() time.Time  { return k.t }
func (k TimeKey) Begin() time.Time      { return k.t }
func (k TimeKey) End() time.Time        { return k.t }
func (k TimeKey) Millis() int64         { return k.t.UnixMilli() }
func (k TimeKey) String() string        { return strconv.FormatInt(k.t.UnixMilli(), 10) }
func (k TimeKey) ToJSON() interface{}   { return k.t.UnixMilli() }

// ParseTime parses a Key previously produced by TimeKey.String.
func ParseTime(s string) (TimeKey, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return TimeKey{}, err
	}
	return NewTimeMillis(ms), nil
}

// TimeRangeKey is an ordered pair (begin, end) with begin <= end. Its
// Timestamp is the midpoint of the range.
type TimeRangeKey struct {
	begin, end time.Time
}

// NewTimeRange returns a Key spanning [begin, end]. begin must not be after
// end; callers that can't guarantee this should validate separately, the
// zero value of this type is not a useful sentinel.
func NewTimeRange(begin, end time.Time) TimeRangeKey {
	return TimeRangeKey{begin: begin.Round(time.Millisecond), end: end.Round(time.Millisecond)}
}

func (k TimeRangeKey) Kind() KeyKind        { return TimeRangeKind }
func (k TimeRangeKey) Begin() time.Time     { return k.begin }
func (k TimeRangeKey) End() time.Time       { return k.end }
func (k TimeRangeKey) Duration() time.Duration {
	return k.end.Sub(k.begin)
}
func (k TimeRangeKey) Timestamp() time.Time {
	return k.begin.Add(k.Duration() / 2)
}
func (k TimeRangeKey) String() string {
	return strconv.FormatInt(k.begin.UnixMilli(), 10) + "," + strconv.FormatInt(k.end.UnixMilli(), 10)
}
func (k TimeRangeKey) ToJSON() interface{} {
	return [2]int64{k.begin.UnixMilli(), k.end.UnixMilli()}
}

// ParseTimeRange parses a Key previously produced by TimeRangeKey.String.
func ParseTimeRange(s string) (TimeRangeKey, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return TimeRangeKey{}, errors.WithStack(&ErrInvalidKeyKind{Op: "ParseTimeRange", Want: TimeRangeKind, Got: "malformed"})
	}
	b, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return TimeRangeKey{}, err
	}
	e, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return TimeRangeKey{}, err
	}
	return NewTimeRange(time.UnixMilli(b).UTC(), time.UnixMilli(e).UTC()), nil
}

// IndexKey is a string-tagged bucket, either a duration index
// ("30s-14", "1h@5m+30000-2") or a calendar index ("2015", "2015-07",
// "2015-07-14"). The grammar and parsing live in the period package; this
// type just carries the already-resolved string and time range so models
// has no dependency on period (which depends on models for construction).
type IndexKey struct {
	s          string
	begin, end time.Time
}

// NewIndex wraps a pre-parsed index string with its resolved time range.
// Called by period.ParseIndex and period.Window.GetIndexSet; not meant to
// be constructed directly by callers holding only a string.
func NewIndex(s string, begin, end time.Time) IndexKey {
	return IndexKey{s: s, begin: begin, end: end}
}

func (k IndexKey) Kind() KeyKind       { return IndexKind }
func (k IndexKey) Begin() time.Time    { return k.begin }
func (k IndexKey) End() time.Time      { return k.end }
func (k IndexKey) Timestamp() time.Time {
	return k.begin.Add(k.end.Sub(k.begin) / 2)
}
func (k IndexKey) String() string      { return k.s }
func (k IndexKey) ToJSON() interface{} { return k.s }
