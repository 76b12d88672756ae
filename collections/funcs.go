package collections

// This file contains the iteration engine: package-level generic functions
// that traverse any [Enumerable], whether it is an ordered [Collection] or a
// keyed [OrderedMap].
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations are stand-alone functions:
//
//	lengths := collections.Map(
//	    collections.MapOf(collections.P("a", "x"), collections.P("b", "yy")),
//	    func(s string) int { return len(s) },
//	) // → [1 2]

// Each calls fn(value, key, c) for every item of c in traversal order.
// Panics raised by fn propagate to the caller.
func Each[K comparable, V any](c Enumerable[K, V], fn func(V, K, Enumerable[K, V])) {
	for k, v := range c.All() {
		fn(v, k, c)
	}
}

// Map applies fn to every value and returns the results as a new
// Collection, preserving order and length. c is left untouched.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[K comparable, V, U any](c Enumerable[K, V], fn func(V) U) *Collection[U] {
	out := make([]U, 0, c.Count())
	Each(c, func(v V, _ K, _ Enumerable[K, V]) {
		out = append(out, fn(v))
	})
	return &Collection[U]{items: out}
}

// Reduce folds c into a single value by calling acc = fn(acc, value) for
// every value in traversal order.
//
// When initial is omitted the accumulator starts as the first value and the
// fold still begins at that first value, so the first value is folded into
// itself:
//
//	collections.Reduce(collections.New(a, b, c), f) == f(f(f(a, a), b), c)
//
// Pass an initial value to get the conventional left fold. An empty c with no
// initial value reduces to the zero value.
func Reduce[K comparable, V any](c Enumerable[K, V], fn func(acc, item V) V, initial ...V) V {
	var acc V
	if len(initial) > 0 {
		acc = initial[0]
	} else {
		for _, v := range c.All() {
			acc = v
			break
		}
	}
	for _, v := range c.All() {
		acc = fn(acc, v)
	}
	return acc
}

// ReduceInto folds c into an accumulator of a different type A, starting
// from initial.
//
//	joined := collections.ReduceInto(collections.New(1, 2, 3),
//	    func(acc string, n int) string { return acc + strconv.Itoa(n) }, "")
func ReduceInto[K comparable, V, A any](c Enumerable[K, V], fn func(acc A, item V) A, initial A) A {
	acc := initial
	for _, v := range c.All() {
		acc = fn(acc, v)
	}
	return acc
}

// Filter returns a new Collection of the values for which test returns true,
// in traversal order.
func Filter[K comparable, V any](c Enumerable[K, V], test func(V) bool) *Collection[V] {
	out := make([]V, 0, c.Count())
	Each(c, func(v V, _ K, _ Enumerable[K, V]) {
		if test(v) {
			out = append(out, v)
		}
	})
	return &Collection[V]{items: out}
}

// Reject is the complement of [Filter]: it keeps the values for which test
// returns false.
func Reject[K comparable, V any](c Enumerable[K, V], test func(V) bool) *Collection[V] {
	return Filter(c, func(v V) bool { return !test(v) })
}

// Every reports whether test holds for every value. An empty c yields true.
// When test is omitted each value's own [Truthy]ness is used.
//
// Every is a fold: test is called for every value even after one fails.
func Every[K comparable, V any](c Enumerable[K, V], test ...func(V) bool) bool {
	if c.Count() == 0 {
		return true
	}
	pass := predicate(test)
	return ReduceInto(c, func(all bool, v V) bool {
		return pass(v) && all
	}, true)
}

// Some reports whether test holds for at least one value. An empty c yields
// false. When test is omitted each value's own [Truthy]ness is used.
func Some[K comparable, V any](c Enumerable[K, V], test ...func(V) bool) bool {
	pass := predicate(test)
	return !Every(c, func(v V) bool { return !pass(v) })
}

func predicate[V any](test []func(V) bool) func(V) bool {
	if len(test) > 0 && test[0] != nil {
		return test[0]
	}
	return func(v V) bool { return Truthy(Identity(v)) }
}
