package collection

import "github.com/influxdata/tscore/transform"

// Align runs a freshly constructed Align processor (via newAlign, so each
// group gets independent state) across every group in batch flat-map mode.
func (g GroupedCollection) Align(newAlign func() *transform.Align) (GroupedCollection, error) {
	out := make(map[string]SortedCollection, len(g.groups))
	for _, k := range g.order {
		sc := g.groups[k]
		events, err := transform.Apply(newAlign(), sc.EventList())
		if err != nil {
			return GroupedCollection{}, err
		}
		out[k] = NewSorted(events...)
	}
	return GroupedCollection{groups: out, order: g.Keys()}, nil
}

// Rate runs a freshly constructed Rate processor per group.
func (g GroupedCollection) Rate(newRate func() *transform.Rate) (GroupedCollection, error) {
	out := make(map[string]SortedCollection, len(g.groups))
	for _, k := range g.order {
		sc := g.groups[k]
		events, err := transform.Apply(newRate(), sc.EventList())
		if err != nil {
			return GroupedCollection{}, err
		}
		out[k] = NewSorted(events...)
	}
	return GroupedCollection{groups: out, order: g.Keys()}, nil
}
