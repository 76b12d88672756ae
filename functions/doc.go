// Package functions provides combinators that change when and how often a
// function runs: [Once], [Memoize], [Delay] and [Throttle].
//
// # Wrapped functions
//
// Every combinator works on a [Func], a function that takes an ordered list
// of arguments:
//
//	square := functions.Unary(func(n int) int { return n * n })
//	cached := functions.Memoize(square)
//	cached(12) // computes
//	cached(12) // cache hit
//
// Each call to a combinator returns an independent wrapper with its own
// private state. Two wrappers around the same function never share state,
// and the state lives exactly as long as the wrapper does.
//
// # Concurrency
//
// Wrappers are safe for concurrent use. Each one serializes access to its
// own state with a mutex, which is what keeps the at-most-once guarantees of
// [Once] and [Memoize] and the rate limit of [Throttle] intact when called
// from many goroutines.
//
// # Timers
//
// [Delay] and the trailing call of [Throttle] are scheduled on a timer
// facility, [github.com/benbjohnson/clock.Clock]. The wall clock is used by
// default; pass a mock clock through [WithClock] or [DelayOn] to drive time
// by hand:
//
//	mock := clock.NewMock()
//	saveSoon := functions.Throttle(save, 100*time.Millisecond, functions.WithClock(mock))
//	mock.Add(100 * time.Millisecond) // fires any trailing call
//
// # Failures
//
// The combinators never recover panics raised by the wrapped function. A
// panic reaches whoever triggered the invocation: the caller for leading and
// cached calls, the timer goroutine for delayed and trailing ones.
package functions
