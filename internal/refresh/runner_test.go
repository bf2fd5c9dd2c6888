package refresh

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func (r *Runner) doneCh() chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

func testRunner(interval, tick time.Duration, reloads *atomic.Int64) *Runner {
	r := New(interval, func(context.Context) {
		if reloads != nil {
			reloads.Add(1)
		}
	})
	r.tick = tick
	return r
}

func TestEnable_ReloadsOnInterval(t *testing.T) {
	var reloads atomic.Int64
	r := testRunner(10*time.Millisecond, 5*time.Millisecond, &reloads)

	r.Enable()
	defer r.Close()

	deadline := time.Now().Add(time.Second)
	for reloads.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if reloads.Load() < 2 {
		t.Fatalf("expected at least 2 silent reloads, got %d", reloads.Load())
	}
}

func TestDisable_StopsReloadsAndZeroesCountdown(t *testing.T) {
	var reloads atomic.Int64
	r := testRunner(10*time.Millisecond, 5*time.Millisecond, &reloads)

	r.Enable()
	time.Sleep(30 * time.Millisecond)
	r.Disable()

	if r.Remaining() != 0 {
		t.Fatalf("expected countdown 0 after disable, got %d", r.Remaining())
	}
	if r.Enabled() {
		t.Fatalf("expected runner disabled")
	}

	settled := reloads.Load()
	time.Sleep(30 * time.Millisecond)
	if reloads.Load() != settled {
		t.Fatalf("reloads continued after disable: %d -> %d", settled, reloads.Load())
	}

	// Disable is idempotent when nothing is running.
	r.Disable()
}

func TestEnable_RestartIsIdempotent(t *testing.T) {
	r := testRunner(time.Minute, 10*time.Millisecond, nil)

	r.Enable()
	first := r.doneCh()
	r.Enable()
	defer r.Close()

	// Enable drains the previous run before scheduling the new one, so the
	// first goroutine must be gone by now.
	select {
	case <-first:
	default:
		t.Fatalf("previous run still alive after restart")
	}
	second := r.doneCh()
	if second == first {
		t.Fatalf("restart did not schedule a fresh run")
	}
	select {
	case <-second:
		t.Fatalf("fresh run should still be live")
	default:
	}

	r.Disable()
	select {
	case <-second:
	default:
		t.Fatalf("disable left the run alive")
	}
}

func TestKick_ResetsWindow(t *testing.T) {
	var reloads atomic.Int64
	r := testRunner(time.Minute, 5*time.Millisecond, &reloads)

	r.Enable()
	defer r.Close()
	time.Sleep(40 * time.Millisecond)

	r.Kick()
	if rem := r.Remaining(); rem != r.window() {
		t.Fatalf("kick should reset the window, got %d of %d", rem, r.window())
	}

	r.Disable()
	r.Kick()
	if r.Remaining() != 0 {
		t.Fatalf("kick while disabled must stay at 0")
	}
}

func TestNotify_SeesCountdownAndReloadFlag(t *testing.T) {
	var reloadTicks atomic.Int64
	r := New(10*time.Millisecond, func(context.Context) {})
	r.tick = 5 * time.Millisecond
	r.SetNotify(func(_ int, reloaded bool) {
		if reloaded {
			reloadTicks.Add(1)
		}
	})

	r.Enable()
	defer r.Close()

	deadline := time.Now().Add(time.Second)
	for reloadTicks.Load() < 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if reloadTicks.Load() < 1 {
		t.Fatalf("notify never observed a reload tick")
	}
}
