package overlay

import (
	"errors"
	"testing"
)

func TestOverlayTypeDecide(t *testing.T) {
	first := NewRingID(0, NoMulti, ExteriorRing)
	second := NewRingID(1, NoMulti, ExteriorRing)

	tests := []struct {
		op           OverlayType
		id           RingID
		within       WithinCode
		wantInclude  bool
		wantReversed bool
	}{
		{Union, first, Outside, true, false},
		{Union, first, Inside, false, false},
		{Union, first, OnBoundary, false, false},
		{Union, second, Outside, true, false},
		{Union, second, Inside, false, false},

		{Intersection, first, Inside, true, false},
		{Intersection, first, Outside, false, false},
		{Intersection, first, OnBoundary, false, false},
		{Intersection, second, Inside, true, false},
		{Intersection, second, Outside, false, false},

		{Difference, first, Outside, true, false},
		{Difference, first, Inside, false, false},
		{Difference, first, OnBoundary, false, false},
		{Difference, second, Inside, true, true},
		{Difference, second, Outside, false, false},
		{Difference, second, OnBoundary, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String()+"/"+tt.id.String()+"/"+tt.within.String(), func(t *testing.T) {
			p := RingProperties{Within: tt.within}

			include, reversed := tt.op.Decide(tt.id, p)
			if include != tt.wantInclude || reversed != tt.wantReversed {
				t.Errorf("Decide() = (%v, %v), want (%v, %v)",
					include, reversed, tt.wantInclude, tt.wantReversed)
			}
			if got := tt.op.Include(tt.id, p); got != tt.wantInclude {
				t.Errorf("Include() = %v, want %v", got, tt.wantInclude)
			}
			if got := tt.op.Reversed(tt.id, p); got != tt.wantReversed {
				t.Errorf("Reversed() = %v, want %v", got, tt.wantReversed)
			}
		})
	}
}

func TestUnknownOverlayTypeIncludesNothing(t *testing.T) {
	op := OverlayType(42)
	p := RingProperties{Within: Inside}
	if op.Include(NewRingID(0, -1, -1), p) {
		t.Error("unknown overlay type should include nothing")
	}
	if got := op.String(); got != "OverlayType(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseOverlayType(t *testing.T) {
	tests := []struct {
		in      string
		want    OverlayType
		wantErr bool
	}{
		{"union", Union, false},
		{"Intersection", Intersection, false},
		{" DIFFERENCE ", Difference, false},
		{"xor", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOverlayType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownOverlayType) {
				t.Errorf("ParseOverlayType(%q) error = %v, want ErrUnknownOverlayType", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseOverlayType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
