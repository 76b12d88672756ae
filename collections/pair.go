package collections

import "fmt"

// Pair holds a key and its value. It is the argument type of [MapOf].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is shorthand for building a [Pair].
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// String returns a human-readable representation: "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
