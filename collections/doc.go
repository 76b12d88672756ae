// Package collections provides the iteration engine of go-underbar: a small
// set of generic traversal and reduction primitives that work the same way
// over ordered sequences and keyed mappings.
//
// # Overview
//
// Two concrete types implement [Enumerable]:
//
//   - [Collection][T], an immutable ordered sequence, keyed by index.
//   - [OrderedMap][K, V], a mapping that iterates in key-insertion order.
//
// The primitives [Each], [Map], [Reduce], [ReduceInto], [Filter], [Reject],
// [Every] and [Some] accept either one:
//
//	nums := collections.New(1, 2, 3, 4)
//	evens := collections.Filter(nums, func(n int) bool { return n%2 == 0 })
//
//	ages := collections.MapOf(collections.P("ann", 31), collections.P("bob", 0))
//	collections.Every(ages) // false: bob's age is not truthy
//
// # Callbacks
//
// [Each] passes (value, key, collection) to its callback. The other
// primitives pass the value only; [Reduce] passes (accumulator, value).
// Callbacks run synchronously and any panic they raise reaches the caller.
//
// # Reduce without an initial value
//
// When [Reduce] is called without an initial value, the accumulator starts
// as the first value and the fold still visits that first value:
//
//	collections.Reduce(collections.New(1, 2, 3), func(acc, n int) int { return acc + n })
//	// → 7, i.e. ((1+1)+2)+3
//
// # Search helpers
//
// [Contains], [IndexOf] and [Uniq] use Go's == for equality, which is
// identity for pointers and value equality for primitives.
package collections
