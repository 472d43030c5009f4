package overlay

import (
	"cmp"
	"fmt"
)

const (
	// NoMulti is the Multi index of a ring whose geometry is not part of a
	// multi-geometry collection.
	NoMulti = -1

	// ExteriorRing is the Ring index of a polygon's exterior ring. Holes
	// are numbered 0, 1, 2, ... in traversal order.
	ExteriorRing = -1
)

// RingID addresses one ring of one of the two overlay operands.
//
// RingID is comparable and is used directly as a map key. Identifiers from
// different operands never collide because their Source differs.
type RingID struct {
	// Source is 0 for the first operand and 1 for the second.
	Source int
	// Multi indexes into a multi-geometry, or is NoMulti.
	Multi int
	// Ring is ExteriorRing or the hole index.
	Ring int
}

// NewRingID creates a RingID.
func NewRingID(source, multi, ring int) RingID {
	return RingID{Source: source, Multi: multi, Ring: ring}
}

// Compare orders identifiers lexicographically on (Source, Multi, Ring).
// It returns -1, 0 or +1.
func (id RingID) Compare(other RingID) int {
	if c := cmp.Compare(id.Source, other.Source); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Multi, other.Multi); c != 0 {
		return c
	}
	return cmp.Compare(id.Ring, other.Ring)
}

// Less reports whether id orders before other.
func (id RingID) Less(other RingID) bool {
	return id.Compare(other) < 0
}

// Next returns the identifier of the following ring of the same polygon.
func (id RingID) Next() RingID {
	id.Ring++
	return id
}

// IsExterior reports whether id addresses an exterior ring.
func (id RingID) IsExterior() bool {
	return id.Ring == ExteriorRing
}

// String returns "(source, multi, ring)".
func (id RingID) String() string {
	return fmt.Sprintf("(%d, %d, %d)", id.Source, id.Multi, id.Ring)
}
