package functions

import (
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// throttler is the private state behind a [Throttle] wrapper. It is Idle
// until the first call, Cooling while pending is nil, and PendingTrailing
// while a trailing call is scheduled.
type throttler[A, R any] struct {
	fn   Func[A, R]
	wait time.Duration
	clk  clock.Clock
	log  *zap.Logger

	mu      sync.Mutex
	called  bool
	last    time.Time
	pending *clock.Timer
	result  R
}

// Throttle returns a Func that calls fn at most once per wait window, on the
// leading edge:
//
//   - The first call, and any call made at least wait after the previous
//     invocation while nothing is pending, calls fn immediately.
//   - A call made inside the window schedules one trailing call of fn for
//     the moment the window closes, with that call's arguments.
//   - Calls made while a trailing call is pending do not reschedule it; their
//     arguments are dropped.
//
// Every call returns the result of the most recent completed invocation of
// fn, never waiting for a pending one. Invocations of fn are serialized and
// fn must not call the wrapper it belongs to. The trailing call runs on the
// timer facility's goroutine (see [WithClock]).
func Throttle[A, R any](fn Func[A, R], wait time.Duration, opts ...Option) Func[A, R] {
	cfg := newConfig(opts)
	t := &throttler[A, R]{
		fn:   fn,
		wait: wait,
		clk:  cfg.Clock,
		log:  cfg.Logger,
	}
	return t.call
}

func (t *throttler[A, R]) call(args ...A) R {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clk.Now()
	elapsed := now.Sub(t.last)
	switch {
	case !t.called || (t.pending == nil && elapsed >= t.wait):
		t.log.Debug("throttle: leading call")
		t.invoke(now, args)
	case t.pending != nil:
		t.log.Debug("throttle: call dropped, trailing call pending")
	default:
		remaining := t.wait - elapsed
		bound := slices.Clone(args)
		t.pending = t.clk.AfterFunc(remaining, func() { t.trailing(bound) })
		t.log.Debug("throttle: trailing call scheduled", zap.Duration("in", remaining))
	}
	return t.result
}

func (t *throttler[A, R]) trailing(args []A) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = nil
	t.log.Debug("throttle: trailing call fired")
	t.invoke(t.clk.Now(), args)
}

func (t *throttler[A, R]) invoke(now time.Time, args []A) {
	t.result = t.fn(args...)
	t.last = now
	t.called = true
}
