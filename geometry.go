package overlay

import "math"

// Geometry is one of the shapes rings can be selected from: [Box], [Ring]
// or [Polygon]. The set is closed; other implementations cannot be declared
// outside this package.
type Geometry interface {
	isGeometry()
}

// Box is an axis-aligned rectangle. It behaves as a single implicit ring.
type Box struct {
	Min, Max Point
}

// NewBox creates a Box from two opposite corners in any order.
func NewBox(x0, y0, x1, y1 float64) Box {
	return Box{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

func (Box) isGeometry() {}

// Ring returns the closed counter-clockwise ring outlining the box.
func (b Box) Ring() Ring {
	return Ring{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Min.Y},
	}
}

// Area returns the area of the box. It is never negative.
func (b Box) Area() float64 {
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
}

// Ring is a closed sequence of points forming one boundary loop. The
// closing point may be repeated or left implicit.
type Ring []Point

func (Ring) isGeometry() {}

// Len returns the number of points in the ring.
func (r Ring) Len() int {
	return len(r)
}

// Area returns the signed area enclosed by the ring.
// Positive for counter-clockwise rings, negative for clockwise.
// Uses the shoelace formula.
func (r Ring) Area() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var area float64
	for i := range n {
		area += lineArea(r[i], r[(i+1)%n])
	}
	return area
}

// Reversed returns a copy of the ring with the opposite winding direction.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// lineArea computes the contribution of a segment to the signed area:
// 0.5 * (x0*y1 - x1*y0).
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// Polygon is an exterior ring with zero or more interior rings (holes).
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

func (Polygon) isGeometry() {}

// Area returns the signed area of the polygon: the exterior ring's area
// plus the (normally opposite-signed) areas of its holes.
func (p Polygon) Area() float64 {
	area := p.Exterior.Area()
	for _, hole := range p.Interiors {
		area += hole.Area()
	}
	return area
}
