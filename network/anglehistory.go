package network

import "github.com/automoto/doomerang-fps/shared/gamemath"

// angleHistorySize bounds the ring. With a lookback set, Record thins samples
// to at most one per MaxLookback/(angleHistorySize-1) seconds, so the whole
// window always fits regardless of frame rate.
const angleHistorySize = 64

// AngleSample is one recorded orientation.
type AngleSample struct {
	Time   float64 // seconds
	Angles gamemath.QAngle
}

// AngleHistory is a fixed-size, time-ordered ring of orientation samples used
// to look up where the player was aiming a short time ago. It lives inline in
// its owning component; the zero value is an empty buffer with no lookback
// limit until SetMaxLookback is called.
type AngleHistory struct {
	samples     [angleHistorySize]AngleSample
	start       int
	count       int
	maxLookback float64
}

// NewAngleHistory returns an empty history that keeps maxLookback seconds.
func NewAngleHistory(maxLookback float64) AngleHistory {
	return AngleHistory{maxLookback: maxLookback}
}

// SetMaxLookback changes the retention window. Existing samples are pruned on
// the next Record.
func (h *AngleHistory) SetMaxLookback(seconds float64) {
	h.maxLookback = seconds
}

// MaxLookback returns the retention window in seconds.
func (h *AngleHistory) MaxLookback() float64 {
	return h.maxLookback
}

// MinSpacing is the shortest gap Record keeps between samples. It is zero
// without a lookback limit.
func (h *AngleHistory) MinSpacing() float64 {
	if h.maxLookback <= 0 {
		return 0
	}
	return h.maxLookback / (angleHistorySize - 1)
}

// Len returns the number of retained samples.
func (h *AngleHistory) Len() int {
	return h.count
}

// At returns the i-th retained sample, oldest first.
func (h *AngleHistory) At(i int) AngleSample {
	return h.samples[(h.start+i)%angleHistorySize]
}

// Earliest returns the oldest retained sample. ok is false when empty.
func (h *AngleHistory) Earliest() (AngleSample, bool) {
	if h.count == 0 {
		return AngleSample{}, false
	}
	return h.At(0), true
}

// Latest returns the newest retained sample. ok is false when empty.
func (h *AngleHistory) Latest() (AngleSample, bool) {
	if h.count == 0 {
		return AngleSample{}, false
	}
	return h.At(h.count - 1), true
}

// Reset drops every sample but keeps the lookback window.
func (h *AngleHistory) Reset() {
	h.start = 0
	h.count = 0
}

// Record appends a sample. Timestamps that do not advance past the latest
// sample are ignored and leave the buffer untouched, as are samples closer
// than MinSpacing to the latest one. After appending, samples older than
// t - MaxLookback are evicted. Returns whether the sample was kept.
func (h *AngleHistory) Record(t float64, angles gamemath.QAngle) bool {
	if latest, ok := h.Latest(); ok && (t <= latest.Time || t-latest.Time < h.MinSpacing()) {
		return false
	}

	if h.count == angleHistorySize {
		// Full: overwrite the oldest slot.
		h.start = (h.start + 1) % angleHistorySize
		h.count--
	}
	h.samples[(h.start+h.count)%angleHistorySize] = AngleSample{Time: t, Angles: angles}
	h.count++

	if h.maxLookback > 0 {
		cutoff := t - h.maxLookback
		for h.count > 0 && h.At(0).Time < cutoff {
			h.start = (h.start + 1) % angleHistorySize
			h.count--
		}
	}
	return true
}

// SampleAt returns the orientation at time t, interpolated along the shortest
// arc between the bracketing samples. Lookups before the earliest or after the
// latest sample clamp to that sample. An empty buffer returns fallback.
func (h *AngleHistory) SampleAt(t float64, fallback gamemath.QAngle) gamemath.QAngle {
	if h.count == 0 {
		return fallback
	}

	first := h.At(0)
	if t <= first.Time {
		return first.Angles
	}
	last := h.At(h.count - 1)
	if t >= last.Time {
		return last.Angles
	}

	// Newest-first scan: lag lookups land near the end of the window.
	for i := h.count - 2; i >= 0; i-- {
		prev := h.At(i)
		if prev.Time > t {
			continue
		}
		next := h.At(i + 1)
		span := next.Time - prev.Time
		if span <= 0 {
			return next.Angles
		}
		alpha := (t - prev.Time) / span
		return gamemath.LerpQAngle(prev.Angles, next.Angles, alpha)
	}
	return first.Angles
}
