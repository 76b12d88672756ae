package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element. Returns the zero value and false when
// items is empty.
func First[T any](items []T) (T, bool) {
	v, err := lo.Nth(items, 0)
	return v, err == nil
}

// FirstN returns a copy of the first n elements, or of all of them when n
// exceeds len(items).
func FirstN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return slices.Clone(lo.Subset(items, 0, uint(n)))
}

// Last returns the last element. Returns the zero value and false when
// items is empty.
func Last[T any](items []T) (T, bool) {
	v, err := lo.Nth(items, -1)
	return v, err == nil
}

// LastN returns a copy of the last n elements, or of all of them when n
// exceeds len(items).
func LastN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return slices.Clone(lo.Subset(items, -n, uint(n)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection & invocation
// ─────────────────────────────────────────────────────────────────────────────

// Pluck extracts a value of type U from each element of type T.
//
//	ages := arr.Pluck(people, func(p Person) int { return p.Age })
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return collections.Map(collections.From(items), fn).ToSlice()
}

// PluckPath reads the dot-notation path from every map in items. Missing
// paths yield nil.
//
//	arr.PluckPath(users, "address.city") // → ["London", nil, "Paris"]
func PluckPath(items []map[string]any, path string) []any {
	return Pluck(items, func(m map[string]any) any { return Get(m, path) })
}

// Invoke calls fn(item, args...) for every element and collects the results.
func Invoke[T, U any](items []T, fn func(T, ...any) U, args ...any) []U {
	return Pluck(items, func(item T) U { return fn(item, args...) })
}

// InvokeMethod calls the exported method called name on every element with
// args, and collects each call's first result (nil for methods without
// results). It stops at the first element whose method is missing or cannot
// accept args.
func InvokeMethod(items []any, name string, args ...any) ([]any, error) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	out := make([]any, len(items))
	for i, item := range items {
		v := reflect.ValueOf(item)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %s on nil item %d", ErrMethodNotFound, name, i)
		}
		method := v.MethodByName(name)
		if !method.IsValid() {
			return nil, fmt.Errorf("%w: %s on %T", ErrMethodNotFound, name, item)
		}
		if !acceptsArgs(method.Type(), in) {
			return nil, fmt.Errorf("%w: %s on %T", ErrInvalidArguments, name, item)
		}
		if res := method.Call(in); len(res) > 0 {
			out[i] = res[0].Interface()
		}
	}
	return out, nil
}

func acceptsArgs(mt reflect.Type, in []reflect.Value) bool {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(in) < fixed {
			return false
		}
	} else if len(in) != fixed {
		return false
	}
	for i, v := range in {
		want := mt.In(min(i, mt.NumIn()-1))
		if i >= fixed {
			want = want.Elem()
		}
		if !v.IsValid() || !v.Type().AssignableTo(want) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items. items is not modified.
func Shuffle[T any](items []T) []T {
	return lo.Shuffle(slices.Clone(items))
}

// SortBy returns a copy of items sorted in ascending order of key. The sort
// is stable: elements with equal keys keep their relative order.
//
//	arr.SortBy(people, func(p Person) string { return p.Name })
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return out
}

// SortByPath returns a copy of items sorted in ascending order of the value
// at the dot-notation path. Items whose value is missing or not a K sort
// last. The sort is stable.
//
//	arr.SortByPath[string](users, "name")
func SortByPath[K cmp.Ordered](items []map[string]any, path string) []map[string]any {
	key := func(m map[string]any) (K, bool) {
		k, ok := Get(m, path).(K)
		return k, ok
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b map[string]any) int {
		ka, okA := key(a)
		kb, okB := key(b)
		switch {
		case okA && okB:
			return cmp.Compare(ka, kb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements at each index of arrays into one row. There are as
// many rows as the longest input has elements; shorter inputs contribute the
// zero value.
//
//	arr.Zip([]string{"a", "b", "c"}, []string{"x"}) // → [[a x] [b ""] [c ""]]
func Zip[T any](arrays ...[]T) [][]T {
	longest := lo.Max(lo.Map(arrays, func(a []T, _ int) int { return len(a) }))
	rows := make([][]T, longest)
	for i := range rows {
		row := make([]T, len(arrays))
		for j, a := range arrays {
			if i < len(a) {
				row[j] = a[i]
			}
		}
		rows[i] = row
	}
	return rows
}

// Flatten recursively flattens any nested []any structure into a single
// []any. A non-slice argument yields a one-element result.
func Flatten(nested any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out = append(out, val)
		}
	}
	flatten(nested)
	return out
}

// FlattenOf flattens one level of typed nesting.
func FlattenOf[T any](nested [][]T) []T {
	return lo.Flatten(nested)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the elements of the first array that are present in
// every other array, in the first array's order (duplicates included).
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	others := lo.Map(arrays[1:], func(a []T, _ int) mapset.Set[T] {
		return mapset.NewThreadUnsafeSet(a...)
	})
	return lo.Filter(arrays[0], func(item T, _ int) bool {
		return lo.EveryBy(others, func(s mapset.Set[T]) bool { return s.Contains(item) })
	})
}

// Difference returns the elements of array that are present in none of
// others, in order (duplicates included).
func Difference[T comparable](array []T, others ...[]T) []T {
	excluded := mapset.NewThreadUnsafeSet[T]()
	for _, other := range others {
		excluded.Append(other...)
	}
	return lo.Reject(array, func(item T, _ int) bool { return excluded.Contains(item) })
}
