package observe

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// StrokeStats summarizes the strokes recorded during a session.
type StrokeStats struct {
	// Count is the number of recorded strokes.
	Count int
	// MeanSize and StdDevSize describe stroke sizes in pixels.
	MeanSize, StdDevSize float64
	// MeanInterval is the average gap between consecutive strokes.
	MeanInterval time.Duration
}

// Tracker is a drawing-session stopwatch. The zero value is not usable;
// call NewTracker. Not safe for concurrent use.
type Tracker struct {
	start          time.Time
	end            time.Time
	finished       bool
	referenceCount int
	strokeSizes    []float64
	strokeTimes    []time.Time
}

// NewTracker starts a session clock for a reference drawing of
// referencePixels non-background pixels.
func NewTracker(referencePixels int) *Tracker {
	return &Tracker{start: time.Now(), referenceCount: referencePixels}
}

// StartedAt returns the session start time.
func (t *Tracker) StartedAt() time.Time { return t.start }

// FinishedAt returns the session end time and whether Finish was called.
func (t *Tracker) FinishedAt() (time.Time, bool) { return t.end, t.finished }

// Finish records the end time. Calling it again has no effect.
func (t *Tracker) Finish() {
	if !t.finished {
		t.end = time.Now()
		t.finished = true
	}
}

// Duration returns the elapsed session time: up to now while the session is
// active, or the final duration once finished.
func (t *Tracker) Duration() time.Duration {
	if t.finished {
		return t.end.Sub(t.start)
	}
	return time.Since(t.start)
}

// ReferencePixels returns the reference drawing's pixel count.
func (t *Tracker) ReferencePixels() int { return t.referenceCount }

// RecordStroke notes one stroke of n pixels at the current time.
func (t *Tracker) RecordStroke(n int) {
	t.strokeSizes = append(t.strokeSizes, float64(n))
	t.strokeTimes = append(t.strokeTimes, time.Now())
}

// Speed returns the drawing speed in pixels per second, measured against
// the reference pixel count. Returns 0 until the session finishes.
func (t *Tracker) Speed() float64 {
	if !t.finished {
		return 0
	}
	secs := t.end.Sub(t.start).Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(t.referenceCount) / secs
}

// Stats summarizes the recorded strokes. Zero-valued when no stroke was
// recorded.
func (t *Tracker) Stats() StrokeStats {
	s := StrokeStats{Count: len(t.strokeSizes)}
	if s.Count == 0 {
		return s
	}
	s.MeanSize = stat.Mean(t.strokeSizes, nil)
	if s.Count > 1 {
		s.StdDevSize = stat.StdDev(t.strokeSizes, nil)
		var total time.Duration
		for i := 1; i < len(t.strokeTimes); i++ {
			total += t.strokeTimes[i].Sub(t.strokeTimes[i-1])
		}
		s.MeanInterval = total / time.Duration(len(t.strokeTimes)-1)
	}
	return s
}
