package interview

import "testing"

func TestTimerFiresExactlyOnce(t *testing.T) {
	timer := NewTimer(3)
	if !timer.Running() {
		t.Fatal("expected new timer to be running")
	}

	fired := 0
	for i := 0; i < 10; i++ {
		if timer.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("fired %d times, want exactly 1", fired)
	}
	if !timer.Expired() {
		t.Error("expected timer expired")
	}
	if timer.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", timer.Remaining())
	}
}

func TestTimerRearmReenablesFiring(t *testing.T) {
	timer := NewTimer(1)
	if !timer.Tick() {
		t.Fatal("expected expiry on first tick")
	}

	// A prior expiry must not suppress the next question's expiry.
	timer.Rearm(2)
	if !timer.Running() {
		t.Fatal("expected rearmed timer to be running")
	}
	if timer.Total() != 2 || timer.Remaining() != 2 {
		t.Errorf("total/remaining = %d/%d, want 2/2", timer.Total(), timer.Remaining())
	}
	if timer.Tick() {
		t.Error("fired one second early")
	}
	if !timer.Tick() {
		t.Error("expected expiry on second tick after rearm")
	}
}

func TestTimerCancelStopsWithoutFiring(t *testing.T) {
	timer := NewTimer(2)
	timer.Cancel()
	if timer.Running() || timer.Expired() {
		t.Error("expected cancelled timer idle")
	}
	for i := 0; i < 5; i++ {
		if timer.Tick() {
			t.Fatal("cancelled timer must not fire")
		}
	}
}

func TestTimerZeroDurationExpiresImmediately(t *testing.T) {
	timer := NewTimer(0)
	if !timer.Expired() {
		t.Error("expected zero-duration timer to start expired")
	}
	if timer.Tick() {
		t.Error("zero-duration timer must not fire")
	}
}
