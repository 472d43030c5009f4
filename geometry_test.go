package overlay

import (
	"math"
	"testing"
)

func TestRingArea(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want float64
	}{
		{
			name: "unit square counter-clockwise",
			ring: Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			want: 1,
		},
		{
			name: "unit square clockwise",
			ring: Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
			want: -1,
		},
		{
			name: "explicitly closed",
			ring: Ring{{0, 0}, {4, 0}, {2, 3}, {0, 0}},
			want: 6,
		},
		{
			name: "degenerate",
			ring: Ring{{0, 0}, {1, 1}},
			want: 0,
		},
		{
			name: "empty",
			ring: Ring{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.Area(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxRing(t *testing.T) {
	b := NewBox(3, 5, 1, 2)
	if b.Min != Pt(1, 2) || b.Max != Pt(3, 5) {
		t.Fatalf("NewBox normalized to %+v", b)
	}
	r := b.Ring()
	if r.Len() != 5 || r[0] != r[4] {
		t.Errorf("Ring() = %v, want closed ring of 5 points", r)
	}
	if r.Area() != b.Area() || b.Area() != 6 {
		t.Errorf("Ring().Area() = %v, Area() = %v, want 6", r.Area(), b.Area())
	}
}

func TestRingReversed(t *testing.T) {
	r := Ring{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	rev := r.Reversed()
	if rev.Area() != -r.Area() {
		t.Errorf("Reversed().Area() = %v, want %v", rev.Area(), -r.Area())
	}
	if r[1] != Pt(2, 0) {
		t.Error("Reversed() modified the receiver")
	}
}

func TestPolygonArea(t *testing.T) {
	p := Polygon{
		Exterior:  NewBox(0, 0, 10, 10).Ring(),
		Interiors: []Ring{NewBox(1, 1, 3, 3).Ring().Reversed()},
	}
	if got := p.Area(); got != 96 {
		t.Errorf("Area() = %v, want 96", got)
	}
}
