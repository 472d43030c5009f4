package overlay

// SelectionStats summarizes one selection.
type SelectionStats struct {
	Operation OverlayType

	// Total is the number of rings described from the inputs.
	Total int
	// Excluded counts rings skipped because they are in the intersection map.
	Excluded int
	// Selected counts rings in the result.
	Selected int
	// Reversed counts selected rings whose winding must be flipped.
	Reversed int
}

// Rejected returns the number of rings the overlay type left out.
func (s SelectionStats) Rejected() int {
	return s.Total - s.Excluded - s.Selected
}

// Observer receives the statistics of every selection made with
// [WithObserver]. Implementations used with [SelectBatch] are called from
// several goroutines.
type Observer interface {
	ObserveSelection(SelectionStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(SelectionStats)

// ObserveSelection calls f(s).
func (f ObserverFunc) ObserveSelection(s SelectionStats) {
	f(s)
}
