// Package period implements the core's duration/period/window/index
// arithmetic: short-form duration literals, aligned repeating periods,
// window membership, and the duration- and calendar-index string grammar.
package period

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Duration is a positive millisecond length, optionally carrying the
// literal (count, unit) it was parsed from so Window can re-derive a
// round-trippable index string literal.
type Duration struct {
	Millis int64
	n      int64
	unit   byte
	hasLit bool
}

// unitMillis maps a short-form unit char to its millisecond value.
// Nanosecond and microsecond durations are fractional milliseconds,
// rounded to the nearest integer millisecond (spec: "rounded where integer
// millis are required").
var unitMillis = map[byte]float64{
	'n': 1e-6,
	'u': 1e-3,
	'l': 1,
	's': 1000,
	'm': 60000,
	'h': 3600000,
	'd': 86400000,
	'w': 604800000,
}

// orderedUnits lists unit chars from coarsest to finest, used when
// deriving a canonical literal for a Duration built from a raw millisecond
// count rather than parsed from a string.
var orderedUnits = []byte{'w', 'd', 'h', 'm', 's', 'l', 'u', 'n'}

// NewDurationMillis wraps a raw millisecond count with no preferred
// literal; Literal() derives one canonically.
func NewDurationMillis(ms int64) Duration {
	return Duration{Millis: ms}
}

// NewDuration builds a Duration from an explicit (n, unit) pair, as parsed
// from a literal string; Literal() reproduces exactly n+unit.
func NewDuration(n int64, unit byte) (Duration, error) {
	mult, ok := unitMillis[unit]
	if !ok {
		return Duration{}, errors.Wrap(&InvalidDurationString{Input: fmt.Sprintf("%d%c", n, unit)}, "period.NewDuration")
	}
	ms := int64(float64(n)*mult + 0.5)
	return Duration{Millis: ms, n: n, unit: unit, hasLit: true}, nil
}

// ParseDuration parses the short-form grammar "<n>[nulsmhdw]".
func ParseDuration(s string) (Duration, error) {
	if len(s) < 2 {
		return Duration{}, errors.Wrap(&InvalidDurationString{Input: s}, "period.ParseDuration")
	}
	unit := s[len(s)-1]
	if _, ok := unitMillis[unit]; !ok {
		return Duration{}, errors.Wrap(&InvalidDurationString{Input: s}, "period.ParseDuration")
	}
	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return Duration{}, errors.Wrapf(&InvalidDurationString{Input: s}, "period.ParseDuration: %s", err)
	}
	return NewDuration(n, unit)
}

// Literal formats d as a short-form duration string. If d was parsed (or
// built via NewDuration), it reproduces that literal exactly; otherwise it
// derives the coarsest unit that divides Millis evenly, falling back to
// milliseconds.
func (d Duration) Literal() string {
	if d.hasLit {
		return fmt.Sprintf("%d%c", d.n, d.unit)
	}
	for _, u := range orderedUnits {
		mult := unitMillis[u]
		if mult < 1 {
			continue
		}
		if float64(d.Millis)/mult == float64(d.Millis/int64(mult)) && d.Millis%int64(mult) == 0 {
			return fmt.Sprintf("%d%c", d.Millis/int64(mult), u)
		}
	}
	return fmt.Sprintf("%dl", d.Millis)
}

func (d Duration) String() string { return d.Literal() }
