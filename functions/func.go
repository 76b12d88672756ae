package functions

// Func is the shape of every function the combinators wrap and return: it
// takes an ordered list of arguments of type A and produces an R.
//
// Functions with a fixed signature can be adapted with a closure, or with
// [Unary] for the common single-argument case.
type Func[A, R any] func(args ...A) R

// Unary adapts fn to a [Func]. The wrapped Func passes its first argument to
// fn (or the zero value when called with none) and ignores the rest.
func Unary[A, R any](fn func(A) R) Func[A, R] {
	return func(args ...A) R {
		var arg A
		if len(args) > 0 {
			arg = args[0]
		}
		return fn(arg)
	}
}
