package collections

import (
	"math"
	"reflect"
)

// NotFound is the index returned by [IndexOf] when the target is absent.
const NotFound = -1

// Identity returns v unchanged. It is the default iterator of [Every] and
// [Some].
func Identity[T any](v T) T { return v }

// Truthy reports whether v counts as "set": false, numeric zero, NaN, the
// empty string, nil pointers, slices, maps, channels, funcs and interfaces,
// and zero-valued structs and arrays are falsy; everything else is truthy.
//
// Note that a non-nil empty slice or map is truthy.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return false
	}
	if k := rv.Kind(); k == reflect.Float32 || k == reflect.Float64 {
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return !rv.IsZero()
}

// Contains reports whether some value of c equals target. Equality is Go's
// ==: identity for pointers, value equality for primitives. Comparing
// interface values that hold uncomparable dynamic types panics.
func Contains[K comparable, V comparable](c Enumerable[K, V], target V) bool {
	return ReduceInto(c, func(found bool, v V) bool {
		if found {
			return true
		}
		return v == target
	}, false)
}

// IndexOf returns the index of the first element equal to target, or
// [NotFound].
func IndexOf[T comparable](items []T, target T) int {
	result := NotFound
	Each[int, T](view(items), func(item T, i int, _ Enumerable[int, T]) {
		if result == NotFound && item == target {
			result = i
		}
	})
	return result
}

// Uniq returns a duplicate-free copy of items, keeping the first occurrence
// of each element. Membership uses ==, so the cost is quadratic in len(items).
func Uniq[T comparable](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if IndexOf(out, item) == NotFound {
			out = append(out, item)
		}
	}
	return out
}
