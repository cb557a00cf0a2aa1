package timer

import (
	"testing"
	"time"

	"github.com/privatetick/privatetick/internal/config"
)

func newTestTimer() *Timer {
	return New(config.TimerConfig{FocusMin: 25, ShortBreakMin: 5, LongBreakMin: 15})
}

func TestNewTimer(t *testing.T) {
	tm := newTestTimer()
	if tm.Mode != ModeFocus || tm.Running {
		t.Fatalf("new timer = %+v, want stopped focus mode", tm)
	}
	if tm.Remaining != 25*time.Minute {
		t.Errorf("remaining = %s, want 25m", tm.Remaining)
	}
	if tm.Clock() != "25:00" {
		t.Errorf("clock = %q, want 25:00", tm.Clock())
	}
}

func TestModeSwitchResets(t *testing.T) {
	tm := newTestTimer()
	tm.Toggle()
	tm.Tick()

	tm.SetMode(ModeShortBreak)
	if tm.Running {
		t.Error("mode switch should stop the countdown")
	}
	if tm.Remaining != 5*time.Minute {
		t.Errorf("remaining = %s, want 5m", tm.Remaining)
	}

	tm.SetMode(ModeLongBreak)
	if tm.Remaining != 15*time.Minute {
		t.Errorf("remaining = %s, want 15m", tm.Remaining)
	}
}

func TestTickCountsDownOnlyWhileRunning(t *testing.T) {
	tm := newTestTimer()
	tm.Tick()
	if tm.Remaining != 25*time.Minute {
		t.Error("a stopped timer must not count down")
	}

	tm.Toggle()
	tm.Tick()
	if tm.Remaining != 25*time.Minute-time.Second {
		t.Errorf("remaining = %s", tm.Remaining)
	}
	if tm.Clock() != "24:59" {
		t.Errorf("clock = %q, want 24:59", tm.Clock())
	}

	tm.Toggle()
	tm.Tick()
	if tm.Remaining != 25*time.Minute-time.Second {
		t.Error("a paused timer must not count down")
	}
}

func TestExpiry(t *testing.T) {
	tm := New(config.TimerConfig{FocusMin: 0, ShortBreakMin: 5, LongBreakMin: 15})
	tm.Remaining = 2 * time.Second
	tm.Running = true

	if tm.Tick() {
		t.Error("expired too early")
	}
	if !tm.Tick() {
		t.Error("the tick reaching zero should report expiry")
	}
	if tm.Running || tm.Remaining != 0 {
		t.Errorf("after expiry timer = %+v, want stopped at zero", tm)
	}
	if tm.Tick() {
		t.Error("expiry must report only once")
	}
}

func TestReset(t *testing.T) {
	tm := newTestTimer()
	tm.Toggle()
	tm.Tick()
	tm.Reset()
	if tm.Running || tm.Remaining != 25*time.Minute {
		t.Errorf("after reset timer = %+v", tm)
	}
}
