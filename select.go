package overlay

import (
	"log/slog"
	"slices"
)

// SelectionMap maps ring identifiers to their properties.
type SelectionMap map[RingID]RingProperties

// IDs returns the identifiers of m in ascending order.
func (m SelectionMap) IDs() []RingID {
	ids := make([]RingID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, RingID.Compare)
	return ids
}

// RingSet is an intersection map carrying no data: rings whose
// contribution was already resolved by intersection processing.
type RingSet map[RingID]struct{}

// Add inserts ids into the set.
func (s RingSet) Add(ids ...RingID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports whether id is in the set.
func (s RingSet) Has(id RingID) bool {
	_, ok := s[id]
	return ok
}

// EnumerateRings calls fn for every non-empty ring of g.
//
// A box yields its outline under start. A ring yields itself under start
// when it has at least one point. A polygon yields its exterior under start
// and its holes under start.Ring+1, start.Ring+2, ... in order; empty holes
// are skipped but keep their number. Source and Multi never change.
func EnumerateRings(g Geometry, start RingID, fn func(RingID, Ring)) {
	switch g := g.(type) {
	case Box:
		fn(start, g.Ring())
	case Ring:
		if len(g) > 0 {
			fn(start, g)
		}
	case Polygon:
		EnumerateRings(g.Exterior, start, fn)
		for i, hole := range g.Interiors {
			id := RingID{Source: start.Source, Multi: start.Multi, Ring: start.Ring + 1 + i}
			EnumerateRings(hole, id, fn)
		}
	}
}

// CollectRings describes every ring of g without a companion geometry.
func CollectRings(g Geometry, start RingID, opts ...Option) SelectionMap {
	o := newOptions(opts)
	all := make(SelectionMap)
	collectRings(g, nil, start, &o, all)
	return all
}

// CollectRingsAgainst describes every ring of g, classifying each against
// other.
func CollectRingsAgainst(g, other Geometry, start RingID, opts ...Option) SelectionMap {
	o := newOptions(opts)
	all := make(SelectionMap)
	collectRings(g, other, start, &o, all)
	return all
}

func collectRings(g, other Geometry, start RingID, o *options, dst SelectionMap) {
	EnumerateRings(g, start, func(id RingID, r Ring) {
		dst[id] = o.describe(id, r, other)
	})
}

// SelectRings selects the rings of g1 (source 0) and g2 (source 1) that
// contribute to op, each classified against the other geometry.
// Rings present in intersections are left out; only key presence is
// consulted.
func SelectRings[V any](op OverlayType, g1, g2 Geometry, intersections map[RingID]V, opts ...Option) SelectionMap {
	o := newOptions(opts)
	all := make(SelectionMap)
	collectRings(g1, g2, NewRingID(0, NoMulti, ExteriorRing), &o, all)
	collectRings(g2, g1, NewRingID(1, NoMulti, ExteriorRing), &o, all)
	return updateSelectionMap(op, intersections, all, &o)
}

// SelectRingsSingle is the single-geometry form of SelectRings: rings of g
// get source 0 and the default within code (see [WithDefaultWithin] and
// [WithWithinCodes]).
func SelectRingsSingle[V any](op OverlayType, g Geometry, intersections map[RingID]V, opts ...Option) SelectionMap {
	o := newOptions(opts)
	all := make(SelectionMap)
	collectRings(g, nil, NewRingID(0, NoMulti, ExteriorRing), &o, all)
	return updateSelectionMap(op, intersections, all, &o)
}

// UpdateSelectionMap filters all for op and returns a new map. Entries whose
// id is a key of intersections are skipped. Included entries are copied
// with Reversed set by op. all is not modified.
func UpdateSelectionMap[V any](op OverlayType, intersections map[RingID]V, all SelectionMap, opts ...Option) SelectionMap {
	o := newOptions(opts)
	return updateSelectionMap(op, intersections, all, &o)
}

func updateSelectionMap[V any](op OverlayType, intersections map[RingID]V, all SelectionMap, o *options) SelectionMap {
	stats := SelectionStats{Operation: op, Total: len(all)}
	selection := make(SelectionMap)
	for id, p := range all {
		if _, found := intersections[id]; found {
			stats.Excluded++
			continue
		}
		include, reversed := op.Decide(id, p)
		if !include {
			continue
		}
		p.Reversed = reversed
		selection[id] = p
		stats.Selected++
		if reversed {
			stats.Reversed++
		}
	}

	o.log().Debug("overlay: rings selected",
		slog.String("operation", op.String()),
		slog.Int("total", stats.Total),
		slog.Int("excluded", stats.Excluded),
		slog.Int("selected", stats.Selected),
		slog.Int("reversed", stats.Reversed))
	if o.observer != nil {
		o.observer.ObserveSelection(stats)
	}
	return selection
}
