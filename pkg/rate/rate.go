// Package rate converts cumulative counters into per-second rates.
package rate

// State tracks one cumulative counter and the rate most recently computed
// from it.
type State struct {
	LastRaw  int64
	LastRate float64
}

// Update folds a newly sampled raw counter into the state and returns the
// current rate. elapsed is the number of seconds since the previous sample
// and must be positive; the caller's resample threshold guarantees that.
//
// A negative delta means the counter wrapped or was reset underneath us. In
// that case the previous rate is held for this cycle instead of reporting a
// huge or negative value; the raw counter is still recorded so the next
// cycle recovers on its own.
func (s *State) Update(raw int64, elapsed float64) float64 {
	delta := raw - s.LastRaw
	s.LastRaw = raw
	if delta < 0 {
		return s.LastRate
	}
	s.LastRate = float64(delta) / elapsed
	return s.LastRate
}
