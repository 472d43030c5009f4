package overlay

import "strconv"

// WithinCode classifies a ring against the other operand.
type WithinCode int

const (
	// Outside means the ring lies outside the other geometry.
	Outside WithinCode = -1
	// OnBoundary means the ring touches the other geometry's boundary or
	// could not be classified.
	OnBoundary WithinCode = 0
	// Inside means the ring lies within the other geometry.
	Inside WithinCode = 1
)

// String returns "inside", "outside" or "boundary".
func (c WithinCode) String() string {
	switch c {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case OnBoundary:
		return "boundary"
	default:
		return "WithinCode(" + strconv.Itoa(int(c)) + ")"
	}
}

// Classifier decides where a point on a ring's border lies relative to the
// other operand.
//
// Implementations must be safe for concurrent use when passed to
// [SelectBatch].
type Classifier interface {
	Within(p Point, g Geometry) WithinCode
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(p Point, g Geometry) WithinCode

// Within calls f(p, g).
func (f ClassifierFunc) Within(p Point, g Geometry) WithinCode {
	return f(p, g)
}

// WindingClassifier is the default Classifier. A point exactly on an edge
// is OnBoundary; otherwise it is Inside when the non-zero winding number of
// the exterior ring says so and no hole contains it.
type WindingClassifier struct{}

// Within implements Classifier.
func (WindingClassifier) Within(p Point, g Geometry) WithinCode {
	switch g := g.(type) {
	case Box:
		return ringWithin(p, g.Ring())
	case Ring:
		return ringWithin(p, g)
	case Polygon:
		code := ringWithin(p, g.Exterior)
		if code != Inside {
			return code
		}
		for _, hole := range g.Interiors {
			switch ringWithin(p, hole) {
			case Inside:
				return Outside
			case OnBoundary:
				return OnBoundary
			}
		}
		return Inside
	}
	return Outside
}

// ringWithin classifies p against a single ring, closing it implicitly.
func ringWithin(p Point, r Ring) WithinCode {
	n := len(r)
	if n == 0 {
		return Outside
	}
	var winding int
	for i := range n {
		p0, p1 := r[i], r[(i+1)%n]
		if onSegment(p0, p1, p) {
			return OnBoundary
		}
		winding += lineWinding(p0, p1, p)
	}
	if winding != 0 {
		return Inside
	}
	return Outside
}

// lineWinding computes the winding contribution of a segment using a
// horizontal ray to the right of pt.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

func onSegment(p0, p1, pt Point) bool {
	if isLeft(p0, p1, pt) != 0 {
		return false
	}
	return pt.X >= min(p0.X, p1.X) && pt.X <= max(p0.X, p1.X) &&
		pt.Y >= min(p0.Y, p1.Y) && pt.Y <= max(p0.Y, p1.Y)
}

// pointOnBorder returns the midpoint of the ring's first non-degenerate
// edge, or its first point when every edge is degenerate.
func pointOnBorder(r Ring) Point {
	n := len(r)
	for i := range n {
		p0, p1 := r[i], r[(i+1)%n]
		if p0 != p1 {
			return p0.Lerp(p1, 0.5)
		}
	}
	if n == 0 {
		return Point{}
	}
	return r[0]
}
