package functions

import "sync"

// once is the private state behind a [Once] wrapper.
type once[A, R any] struct {
	fn Func[A, R]

	mu     sync.Mutex
	called bool
	result R
}

// Once returns a Func that calls fn on its first invocation only. Every
// later invocation, whatever its arguments, returns the result of that first
// call without calling fn again. There is no way to reset the wrapper.
//
// If the first call to fn panics, the panic propagates and the wrapper stays
// uncalled; the next invocation calls fn again. Concurrent invocations are
// serialized, so fn never runs twice even under contention. fn must not call
// the wrapper it belongs to.
func Once[A, R any](fn Func[A, R]) Func[A, R] {
	o := &once[A, R]{fn: fn}
	return o.call
}

func (o *once[A, R]) call(args ...A) R {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.called {
		o.result = o.fn(args...)
		o.called = true
	}
	return o.result
}
