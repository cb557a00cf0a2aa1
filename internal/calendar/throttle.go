package calendar

import "time"

// WheelThrottle limits how often a scroll gesture may change the
// displayed month: at most one change per window, however many wheel
// events arrive inside it.
type WheelThrottle struct {
	window time.Duration
	last   time.Time
	now    func() time.Time
}

// NewWheelThrottle creates a throttle with the given window.
func NewWheelThrottle(window time.Duration) *WheelThrottle {
	return &WheelThrottle{window: window, now: time.Now}
}

// Allow reports whether a month change may be accepted now, and if so
// opens a new window.
func (w *WheelThrottle) Allow() bool {
	now := w.now()
	if !w.last.IsZero() && now.Sub(w.last) < w.window {
		return false
	}
	w.last = now
	return true
}
