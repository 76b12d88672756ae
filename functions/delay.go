package functions

import (
	"slices"
	"time"

	"github.com/benbjohnson/clock"
)

var wallClock = clock.New()

// Delay schedules a single call fn(args...) to run no earlier than wait from
// now, on its own goroutine, and returns immediately. The scheduled call
// cannot be canceled, and every call to Delay schedules an independent one.
// args are copied, so later changes to the caller's slice are not seen.
//
// fn's result is discarded. A panic in fn is not recovered.
func Delay[A, R any](fn Func[A, R], wait time.Duration, args ...A) {
	DelayOn(wallClock, fn, wait, args...)
}

// DelayOn is [Delay] on an explicit timer facility.
func DelayOn[A, R any](clk clock.Clock, fn Func[A, R], wait time.Duration, args ...A) {
	bound := slices.Clone(args)
	clk.AfterFunc(wait, func() { fn(bound...) })
}
