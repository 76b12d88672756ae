package collections

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Collection is a generic, immutable wrapper around a slice of T. It is the
// ordered-sequence variant of [Enumerable]; its keys are the item indices.
//
// Every constructor copies its input and every transformation returns a new
// Collection, so a Collection handed to [Map], [Filter] and friends is never
// modified by them.
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
type Collection[T any] struct {
	items []T
}

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// view wraps items without copying. Only for read-only traversal inside the
// package.
func view[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// All yields (index, item) for every item in order.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToSlice returns a copy of the underlying slice.
func (c *Collection[T]) ToSlice() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection, falling back to
// the %v form for items that cannot be marshalled.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}
