package overlay

import "testing"

func TestWindingClassifier(t *testing.T) {
	square := NewBox(0, 0, 10, 10)
	donut := Polygon{
		Exterior:  square.Ring(),
		Interiors: []Ring{NewBox(4, 4, 6, 6).Ring().Reversed()},
	}
	clockwise := square.Ring().Reversed()

	tests := []struct {
		name string
		p    Point
		g    Geometry
		want WithinCode
	}{
		{"inside box", Pt(5, 5), square, Inside},
		{"outside box", Pt(15, 5), square, Outside},
		{"on box edge", Pt(10, 3), square, OnBoundary},
		{"on box corner", Pt(0, 0), square, OnBoundary},
		{"inside clockwise ring", Pt(1, 1), clockwise, Inside},
		{"outside ring", Pt(-1, 1), clockwise, Outside},
		{"in polygon body", Pt(2, 2), donut, Inside},
		{"in polygon hole", Pt(5, 5), donut, Outside},
		{"on hole border", Pt(4, 5), donut, OnBoundary},
		{"outside polygon", Pt(20, 20), donut, Outside},
		{"empty ring", Pt(0, 0), Ring{}, Outside},
	}

	var c WindingClassifier
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Within(tt.p, tt.g); got != tt.want {
				t.Errorf("Within(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointOnBorder(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want Point
	}{
		{"first edge midpoint", Ring{{0, 0}, {4, 0}, {4, 4}}, Pt(2, 0)},
		{"skips repeated point", Ring{{0, 0}, {0, 0}, {0, 6}}, Pt(0, 3)},
		{"single point", Ring{{7, 7}}, Pt(7, 7)},
		{"empty", Ring{}, Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointOnBorder(tt.ring); got != tt.want {
				t.Errorf("pointOnBorder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinCodeString(t *testing.T) {
	tests := map[WithinCode]string{
		Inside:         "inside",
		Outside:        "outside",
		OnBoundary:     "boundary",
		WithinCode(7):  "WithinCode(7)",
		WithinCode(-4): "WithinCode(-4)",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("WithinCode(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
