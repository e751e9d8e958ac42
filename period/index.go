package period

import (
	"regexp"
	"strconv"
	"time"

	"github.com/influxdata/tscore/models"
	"github.com/pkg/errors"
)

var (
	calendarRe = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)
	durationRe = regexp.MustCompile(`^(?:(\d+[nulsmhdw])@)?(\d+[nulsmhdw])(?:\+(-?\d+))?-(\d+)$`)
)

// ParseIndex parses an index string against the grammar in the index
// string format: a duration index ("30s-0", "1h@5m+30000-2") or a calendar
// index ("2015", "2015-07", "2015-07-14"). loc defaults to UTC when nil.
func ParseIndex(s string, loc *time.Location) (models.IndexKey, error) {
	if loc == nil {
		loc = time.UTC
	}
	if m := calendarRe.FindStringSubmatch(s); m != nil {
		return parseCalendarIndex(s, m, loc)
	}
	if m := durationRe.FindStringSubmatch(s); m != nil {
		return parseDurationIndex(s, m)
	}
	return models.IndexKey{}, errors.Wrap(&MalformedIndexString{Input: s, Cause: "does not match duration or calendar index grammar"}, "period.ParseIndex")
}

func parseCalendarIndex(s string, m []string, loc *time.Location) (models.IndexKey, error) {
	year, _ := strconv.Atoi(m[1])
	if m[2] == "" {
		begin := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
		return models.NewIndex(s, begin, end), nil
	}
	month, _ := strconv.Atoi(m[2])
	if m[3] == "" {
		begin := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		end := begin.AddDate(0, 1, 0)
		return models.NewIndex(s, begin, end), nil
	}
	day, _ := strconv.Atoi(m[3])
	begin := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	end := begin.AddDate(0, 0, 1)
	return models.NewIndex(s, begin, end), nil
}

func parseDurationIndex(s string, m []string) (models.IndexKey, error) {
	freq, err := ParseDuration(m[2])
	if err != nil {
		return models.IndexKey{}, errors.Wrap(&MalformedIndexString{Input: s, Cause: err.Error()}, "period.ParseIndex")
	}
	dur := freq
	if m[1] != "" {
		dur, err = ParseDuration(m[1])
		if err != nil {
			return models.IndexKey{}, errors.Wrap(&MalformedIndexString{Input: s, Cause: err.Error()}, "period.ParseIndex")
		}
	}
	var offset int64
	if m[3] != "" {
		offset, err = strconv.ParseInt(m[3], 10, 64)
		if err != nil {
			return models.IndexKey{}, errors.Wrapf(&MalformedIndexString{Input: s, Cause: err.Error()}, "period.ParseIndex: offset: %s", err)
		}
	}
	bucket, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return models.IndexKey{}, errors.Wrapf(&MalformedIndexString{Input: s, Cause: err.Error()}, "period.ParseIndex: bucket: %s", err)
	}
	begin := bucket*freq.Millis + offset
	end := begin + dur.Millis
	return models.NewIndex(s, time.UnixMilli(begin).UTC(), time.UnixMilli(end).UTC()), nil
}
