package collection

import (
	"sort"
	"time"

	"github.com/influxdata/tscore/models"
)

// SortedCollection is a Collection that additionally guarantees its events
// are non-decreasing by Begin(). IsChronological always reports true;
// inserting an out-of-order event via AddEvent triggers a re-sort on
// return rather than violating the guarantee.
type SortedCollection struct {
	Collection
}

// NewSorted builds a SortedCollection from events, sorting them by Begin()
// ascending. Equal-begin events keep their relative input order (a stable
// sort), matching the invariant that ties are broken by arrival order.
func NewSorted(events ...models.Event) SortedCollection {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key().Begin().Before(sorted[j].Key().Begin())
	})
	return SortedCollection{Collection: New(sorted...)}
}

// IsChronological always returns true for a SortedCollection.
func (s SortedCollection) IsChronological() bool { return true }

// AddEvent returns a new SortedCollection with e inserted in sorted
// position. When e's begin is not after the current tail, the whole event
// list is re-sorted; the result is still guaranteed sorted either way.
func (s SortedCollection) AddEvent(e models.Event, dedup Dedup) SortedCollection {
	merged := s.Collection.AddEvent(e, dedup)
	events := merged.EventList()

	last, ok := s.Collection.LastEvent()
	needsSort := !ok || e.Key().Begin().Before(last.Key().Begin()) || dedup != nil
	if needsSort {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Key().Begin().Before(events[j].Key().Begin())
		})
	}
	return SortedCollection{Collection: New(events...)}
}

// Bisect returns the index i such that events[i].timestamp <= t <
// events[i+1].timestamp, searching from start onward; ok is false for an
// empty collection or when t precedes every event from start on.
func (s SortedCollection) Bisect(t time.Time, start int) (i int, ok bool) {
	n := s.Size()
	if n == 0 || start >= n {
		return 0, false
	}
	lo := sort.Search(n-start, func(k int) bool {
		return s.At(start + k).Key().Timestamp().After(t)
	})
	idx := start + lo - 1
	if idx < start {
		return 0, false
	}
	return idx, true
}

// Slice returns the sub-collection of events with index in [begin, end).
func (s SortedCollection) Slice(begin, end int) SortedCollection {
	if begin < 0 {
		begin = 0
	}
	if end > s.Size() {
		end = s.Size()
	}
	if begin >= end {
		return SortedCollection{Collection: New()}
	}
	out := make([]models.Event, 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, s.At(i))
	}
	return SortedCollection{Collection: New(out...)}
}

// Crop returns the sub-collection of events whose Begin() falls within
// [begin, end).
func (s SortedCollection) Crop(begin, end time.Time) SortedCollection {
	out := make([]models.Event, 0, s.Size())
	for _, e := range s.EventList() {
		b := e.Key().Begin()
		if !b.Before(begin) && b.Before(end) {
			out = append(out, e)
		}
	}
	return SortedCollection{Collection: New(out...)}
}
