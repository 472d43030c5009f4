package overlay

import "log/slog"

// Option configures a selection call.
//
// Example:
//
//	sel := overlay.SelectRings(overlay.Union, a, b, overlay.RingSet{},
//	    overlay.WithClassifier(myClassifier),
//	    overlay.WithObserver(collector))
type Option func(*options)

// options holds the per-call configuration. A fresh value is built for
// every call; nothing is retained between calls.
type options struct {
	classifier    Classifier
	defaultWithin WithinCode
	withinCodes   map[RingID]WithinCode
	observer      Observer
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		classifier:    WindingClassifier{},
		defaultWithin: OnBoundary,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithClassifier sets the classifier used to compute within codes against
// the other operand. Nil keeps the default [WindingClassifier].
func WithClassifier(c Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classifier = c
		}
	}
}

// WithDefaultWithin sets the within code given to rings described without
// a companion geometry (the single-geometry form). The default is the
// neutral OnBoundary, which no overlay type includes.
func WithDefaultWithin(c WithinCode) Option {
	return func(o *options) {
		o.defaultWithin = c
	}
}

// WithWithinCodes supplies within codes computed elsewhere, keyed by ring.
// A code found here wins over both the classifier and the default.
//
// Example:
//
//	sel := overlay.SelectRingsSingle(overlay.Union, g, intersections,
//	    overlay.WithWithinCodes(map[overlay.RingID]overlay.WithinCode{
//	        overlay.NewRingID(0, overlay.NoMulti, overlay.ExteriorRing): overlay.Outside,
//	    }))
func WithWithinCodes(codes map[RingID]WithinCode) Option {
	return func(o *options) {
		o.withinCodes = codes
	}
}

// WithObserver registers an observer notified once per selection.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// describe builds the properties of ring r. A nil other selects the
// single-geometry form.
func (o *options) describe(id RingID, r Ring, other Geometry) RingProperties {
	if code, ok := o.withinCodes[id]; ok {
		p := NewRingProperties(r)
		p.Within = code
		return p
	}
	if other == nil {
		p := NewRingProperties(r)
		p.Within = o.defaultWithin
		return p
	}
	return NewRingPropertiesWithin(r, other, o.classifier)
}
