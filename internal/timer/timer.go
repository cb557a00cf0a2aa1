// Package timer implements the focus timer: a countdown with three
// modes whose durations come from configuration.
package timer

import (
	"fmt"
	"time"

	"github.com/privatetick/privatetick/internal/config"
)

// Mode selects which countdown duration is active.
type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// Label returns the mode's display name.
func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// Timer is a countdown in one of three modes. It does not keep its own
// clock; the owner calls Tick once per second while it is running.
type Timer struct {
	Mode      Mode
	Remaining time.Duration
	Running   bool

	durations [3]time.Duration
}

// New builds a stopped timer in focus mode with durations taken from
// the configuration.
func New(cfg config.TimerConfig) *Timer {
	t := &Timer{
		durations: [3]time.Duration{
			time.Duration(cfg.FocusMin) * time.Minute,
			time.Duration(cfg.ShortBreakMin) * time.Minute,
			time.Duration(cfg.LongBreakMin) * time.Minute,
		},
	}
	t.Remaining = t.durations[ModeFocus]
	return t
}

// SetMode switches modes, stopping the countdown and resetting it to
// the new mode's full duration.
func (t *Timer) SetMode(m Mode) {
	t.Mode = m
	t.Running = false
	t.Remaining = t.durations[m]
}

// Toggle starts a stopped timer and pauses a running one. Toggling an
// expired timer restarts it from the full duration.
func (t *Timer) Toggle() {
	if !t.Running && t.Remaining <= 0 {
		t.Remaining = t.durations[t.Mode]
	}
	t.Running = !t.Running
}

// Reset stops the countdown and restores the current mode's full
// duration.
func (t *Timer) Reset() {
	t.Running = false
	t.Remaining = t.durations[t.Mode]
}

// Tick advances a running countdown by one second. It reports true
// exactly once, on the tick that reaches zero, so the owner can ring.
func (t *Timer) Tick() bool {
	if !t.Running {
		return false
	}
	t.Remaining -= time.Second
	if t.Remaining <= 0 {
		t.Remaining = 0
		t.Running = false
		return true
	}
	return false
}

// Clock renders the remaining time as MM:SS.
func (t *Timer) Clock() string {
	total := int(t.Remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
