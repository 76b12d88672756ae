package collections

import "iter"

// Enumerable is the interface satisfied by [Collection][T] (keyed by index)
// and [OrderedMap][K, V] (keyed by K).
//
// Every iteration primitive in this package accepts an Enumerable, so a
// caller never needs to know whether it holds an ordered sequence or a keyed
// mapping. A minimal implementation only needs to provide these two methods.
type Enumerable[K comparable, V any] interface {
	// All yields every (key, value) pair in traversal order: index order for
	// sequences, key-insertion order for mappings.
	All() iter.Seq2[K, V]

	// Count returns the number of items.
	Count() int
}

var (
	_ Enumerable[int, any]    = (*Collection[any])(nil)
	_ Enumerable[string, any] = (*OrderedMap[string, any])(nil)
)
