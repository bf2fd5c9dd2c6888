// Package refresh drives the dashboard's background reload cadence: a live
// countdown plus a periodic silent reload, owned by a single cancellable
// goroutine per session.
package refresh

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the silent-reload cadence when none is configured.
const DefaultInterval = 30 * time.Second

// Runner schedules silent reloads on a fixed interval and keeps a
// remaining-seconds countdown. One goroutine owns both; enabling always
// cancels any previous run first, so a restart can never leave two tickers
// alive.
type Runner struct {
	interval time.Duration
	tick     time.Duration
	reload   func(ctx context.Context)
	notify   func(remaining int, reloaded bool)

	// restartMu serializes Enable/Disable so concurrent toggles cannot leave
	// an orphaned run behind.
	restartMu sync.Mutex

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	remaining int
	enabled   bool
}

// New builds a Runner. reload is invoked for every elapsed interval and must
// be the silent variant of the dashboard load.
func New(interval time.Duration, reload func(ctx context.Context)) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		interval: interval,
		tick:     time.Second,
		reload:   reload,
	}
}

// SetNotify installs an observer called after every countdown tick, with the
// ticks left in the window and whether this tick triggered a reload. Used by
// the websocket feed. Must be set before Enable.
func (r *Runner) SetNotify(fn func(remaining int, reloaded bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// Enable starts the runner, restarting it if already running. The restart is
// idempotent: any existing run is cancelled and drained before the new one
// is scheduled.
func (r *Runner) Enable() {
	r.restartMu.Lock()
	defer r.restartMu.Unlock()
	r.stop()

	r.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	r.remaining = r.window()
	r.enabled = true
	done := r.done
	r.mu.Unlock()

	go r.run(ctx, done)
}

// Disable stops the runner and zeroes the countdown. Safe to call when not
// running.
func (r *Runner) Disable() {
	r.restartMu.Lock()
	defer r.restartMu.Unlock()
	r.stop()
	r.mu.Lock()
	r.remaining = 0
	r.enabled = false
	r.mu.Unlock()
}

// Close tears the runner down unconditionally. Equivalent to Disable; named
// for session teardown call sites.
func (r *Runner) Close() {
	r.Disable()
}

// Kick resets the countdown so the next silent reload is a full interval
// away. Used after a manual refresh; a no-op while disabled.
func (r *Runner) Kick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.enabled {
		r.remaining = r.window()
	}
}

// Enabled reports whether the runner is active.
func (r *Runner) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Remaining returns the ticks left until the next silent reload, floored at
// zero. With the production tick of one second this is a seconds value.
func (r *Runner) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

func (r *Runner) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mu.Lock()
			if r.remaining > 0 {
				r.remaining--
			}
			reloaded := r.remaining == 0
			if reloaded {
				r.remaining = r.window()
			}
			remaining := r.remaining
			notify := r.notify
			r.mu.Unlock()

			if reloaded && r.reload != nil {
				r.reload(ctx)
			}
			if notify != nil {
				notify(remaining, reloaded)
			}
		}
	}
}

// stop cancels the current run, if any, and waits for its goroutine to exit.
func (r *Runner) stop() {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (r *Runner) window() int {
	ticks := int(r.interval / r.tick)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
