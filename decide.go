package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOverlayType is returned by ParseOverlayType for unrecognized names.
var ErrUnknownOverlayType = errors.New("overlay: unknown overlay type")

// OverlayType is the boolean operation a selection is made for.
type OverlayType int

const (
	// Union keeps rings lying outside the other operand.
	Union OverlayType = iota
	// Intersection keeps rings lying inside the other operand.
	Intersection
	// Difference subtracts the second operand from the first. It keeps
	// first-operand rings outside the second and second-operand rings
	// inside the first; the latter become holes and are reversed.
	Difference
)

// String returns the lower-case name of the operation.
func (op OverlayType) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	default:
		return fmt.Sprintf("OverlayType(%d)", int(op))
	}
}

// ParseOverlayType parses "union", "intersection" or "difference",
// ignoring case.
func ParseOverlayType(s string) (OverlayType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "union":
		return Union, nil
	case "intersection":
		return Intersection, nil
	case "difference":
		return Difference, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOverlayType, s)
}

// Include reports whether the ring contributes to the output of op.
func (op OverlayType) Include(id RingID, p RingProperties) bool {
	switch op {
	case Union:
		return p.Within == Outside
	case Intersection:
		return p.Within == Inside
	case Difference:
		sign := 1
		if id.Source != 0 {
			sign = -1
		}
		return -int(p.Within)*sign == 1
	}
	return false
}

// Reversed reports whether an included ring's winding must be flipped.
func (op OverlayType) Reversed(id RingID, p RingProperties) bool {
	if op != Difference {
		return false
	}
	return op.Include(id, p) && id.Source == 1
}

// Decide returns both decisions at once.
func (op OverlayType) Decide(id RingID, p RingProperties) (include, reversed bool) {
	include = op.Include(id, p)
	return include, include && op == Difference && id.Source == 1
}
