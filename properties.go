package overlay

// RingProperties describes one ring considered for selection.
type RingProperties struct {
	// Point is the point on the ring's border used for classification.
	Point Point

	// Area is the signed area of the ring. Its sign encodes the ring's
	// original winding direction (positive = counter-clockwise).
	Area float64

	// Within classifies the ring against the other operand.
	Within WithinCode

	// Reversed reports that the ring's winding must be flipped in the
	// overlay output. It is only set on entries of a selection result.
	Reversed bool
}

// NewRingProperties describes a ring without a companion geometry. Within
// is left at the neutral OnBoundary.
func NewRingProperties(r Ring) RingProperties {
	return RingProperties{
		Point:  pointOnBorder(r),
		Area:   r.Area(),
		Within: OnBoundary,
	}
}

// NewRingPropertiesWithin describes a ring and classifies it against the
// other operand. A nil classifier means [WindingClassifier].
func NewRingPropertiesWithin(r Ring, other Geometry, c Classifier) RingProperties {
	if c == nil {
		c = WindingClassifier{}
	}
	p := NewRingProperties(r)
	p.Within = c.Within(p.Point, other)
	return p
}
