// Package overlay selects the rings that contribute to a polygon overlay
// (union, intersection or difference) without being cut by it.
//
// # Overview
//
// An overlay pipeline first intersects the boundaries of two geometries and
// traverses the resulting pieces. Rings that take part in no intersection
// are not visited by that traversal: each of them either belongs to the
// output unchanged, belongs to it with its winding flipped, or is dropped.
// This package makes that decision for every such ring.
//
// # Quick Start
//
//	a := overlay.NewBox(0, 0, 10, 10)
//	b := overlay.Polygon{Exterior: overlay.NewBox(2, 2, 4, 4).Ring()}
//
//	// Rings already consumed by intersection processing.
//	cut := overlay.RingSet{}
//
//	sel := overlay.SelectRings(overlay.Difference, a, b, cut)
//	for _, id := range sel.IDs() {
//	    p := sel[id]
//	    fmt.Println(id, p.Area, p.Reversed)
//	}
//
// # Geometries
//
// Three shapes are supported: [Box], [Ring] and [Polygon]. Every ring is
// addressed by a [RingID]: the operand (0 or 1), the index inside a
// multi-geometry ([NoMulti] otherwise) and the ring index ([ExteriorRing]
// for a polygon's outline, 0, 1, ... for its holes). Empty rings are never
// selected.
//
// # Decisions
//
// Each ring carries a [WithinCode] against the other operand, computed by a
// [Classifier] ([WindingClassifier] by default) or supplied with
// [WithWithinCodes]:
//
//   - Union keeps rings outside the other operand.
//   - Intersection keeps rings inside the other operand.
//   - Difference keeps first-operand rings outside the second and
//     second-operand rings inside the first, the latter reversed.
//
// # Coordinate System
//
// X increases right and Y increases up; counter-clockwise rings have a
// positive signed area.
//
// # Concurrency
//
// Selection functions keep no state between calls and may be called from
// any goroutine. [SelectBatch] runs many independent selections on a
// worker pool.
package overlay
