package functions_test

import (
	"testing"
	"time"

	"github.com/hasbyte1/go-underbar/functions"
)

// recorder returns a Func that sends its first argument on the returned
// channel.
func recorder[A any]() (functions.Func[A, A], chan A) {
	ch := make(chan A, 16)
	return functions.Unary(func(a A) A {
		ch <- a
		return a
	}), ch
}

func receive[A any](t *testing.T, ch <-chan A) A {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a call")
		var zero A
		return zero
	}
}

func assertNoCall[A any](t *testing.T, ch <-chan A) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected call with %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met within 1s")
		}
		time.Sleep(time.Millisecond)
	}
}

func mustPanic(t *testing.T, want any, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != want {
			t.Fatalf("recovered %v; want %v", r, want)
		}
	}()
	fn()
}
