package overlay

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := newOptions(nil)
	if _, ok := o.classifier.(WindingClassifier); !ok {
		t.Errorf("default classifier = %T, want WindingClassifier", o.classifier)
	}
	if o.defaultWithin != OnBoundary {
		t.Errorf("default within = %v, want boundary", o.defaultWithin)
	}
	if o.log() != Logger() {
		t.Error("log() should fall back to the package logger")
	}
}

func TestOptionsApply(t *testing.T) {
	var called bool
	c := ClassifierFunc(func(Point, Geometry) WithinCode {
		called = true
		return Inside
	})
	l := slog.New(nopHandler{})

	o := newOptions([]Option{
		nil,
		WithClassifier(c),
		WithClassifier(nil),
		WithDefaultWithin(Outside),
		WithLogger(l),
	})

	if o.defaultWithin != Outside {
		t.Errorf("defaultWithin = %v, want outside", o.defaultWithin)
	}
	if o.log() != l {
		t.Error("WithLogger not applied")
	}
	if got := o.classifier.Within(Point{}, Ring{}); got != Inside || !called {
		t.Error("WithClassifier(nil) should keep the previous classifier")
	}
}

func TestDescribePrecedence(t *testing.T) {
	id := NewRingID(0, NoMulti, ExteriorRing)
	r := NewBox(0, 0, 1, 1).Ring()
	var calls int
	c := ClassifierFunc(func(Point, Geometry) WithinCode {
		calls++
		return Inside
	})

	o := newOptions([]Option{WithClassifier(c), WithDefaultWithin(Outside)})
	if got := o.describe(id, r, nil).Within; got != Outside {
		t.Errorf("standalone within = %v, want default outside", got)
	}
	if got := o.describe(id, r, NewBox(0, 0, 5, 5)).Within; got != Inside {
		t.Errorf("classified within = %v, want inside", got)
	}

	o = newOptions([]Option{
		WithClassifier(c),
		WithWithinCodes(map[RingID]WithinCode{id: OnBoundary}),
	})
	calls = 0
	if got := o.describe(id, r, NewBox(0, 0, 5, 5)).Within; got != OnBoundary {
		t.Errorf("supplied within = %v, want boundary", got)
	}
	if calls != 0 {
		t.Errorf("classifier called %d times for a supplied code", calls)
	}
}
