package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func makeMap(n int) *collections.OrderedMap[string, int] {
	m := collections.NewOrderedMap[string, int]()
	for i := range n {
		m.Set(strconv.Itoa(i), i)
	}
	return m
}

func BenchmarkEach(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		collections.Each(c, func(n, _ int, _ collections.Enumerable[int, int]) { sum += n })
	}
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Filter(c, func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n int) int { return n * 2 })
	}
}

func BenchmarkReduce(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(acc, n int) int { return acc + n }, 0)
	}
}

func BenchmarkReduceOrderedMap(b *testing.B) {
	m := makeMap(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(m, func(acc, n int) int { return acc + n }, 0)
	}
}

func BenchmarkUniq(b *testing.B) {
	items := make([]int, 1_000)
	for i := range items {
		items[i] = i % 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Uniq(items)
	}
}
