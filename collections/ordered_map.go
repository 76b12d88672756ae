package collections

import (
	"cmp"
	"iter"
	"slices"
)

// OrderedMap is a keyed mapping that remembers the order in which keys were
// first inserted. It is the mapping variant of [Enumerable]: iteration
// visits keys in insertion order.
//
// Re-setting an existing key replaces its value but keeps its position.
// The zero value is an empty map ready to use. An OrderedMap is not safe for
// concurrent mutation.
type OrderedMap[K comparable, V any] struct {
	keyPos map[K]int // position of the key in keys
	keys   []K
	values []V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{keyPos: make(map[K]int)}
}

// MapOf builds an OrderedMap from pairs, in order. A key that appears more
// than once keeps its first position and its last value.
//
//	m := collections.MapOf(collections.P("a", 1), collections.P("b", 2))
func MapOf[K comparable, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// FromMap builds an OrderedMap from a built-in map. Go maps have no
// insertion order, so keys are inserted in ascending order.
func FromMap[K cmp.Ordered, V any](src map[K]V) *OrderedMap[K, V] {
	keys := make([]K, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	m := NewOrderedMap[K, V]()
	for _, k := range keys {
		m.Set(k, src[k])
	}
	return m
}

// Set stores value under key.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if pos, exists := m.keyPos[key]; exists {
		m.values[pos] = value
		return
	}
	if m.keyPos == nil {
		m.keyPos = make(map[K]int)
	}
	m.keyPos[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if pos, ok := m.keyPos[key]; ok {
		return m.values[pos], true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.keyPos[key]
	return ok
}

// Delete removes key, preserving the relative order of the remaining keys.
// It reports whether key was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	pos, ok := m.keyPos[key]
	if !ok {
		return false
	}
	m.keys = slices.Delete(m.keys, pos, pos+1)
	m.values = slices.Delete(m.values, pos, pos+1)
	delete(m.keyPos, key)
	for i := pos; i < len(m.keys); i++ {
		m.keyPos[m.keys[i]] = i
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

// Values returns a copy of the values in key-insertion order.
func (m *OrderedMap[K, V]) Values() []V { return slices.Clone(m.values) }

// Count returns the number of keys.
func (m *OrderedMap[K, V]) Count() int { return len(m.keys) }

// All yields (key, value) in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}
