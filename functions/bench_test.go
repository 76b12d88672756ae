package functions_test

import (
	"testing"

	"github.com/hasbyte1/go-underbar/functions"
)

func BenchmarkMemoizeHit(b *testing.B) {
	square := functions.Memoize(functions.Unary(func(n int) int { return n * n }))
	square(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		square(42)
	}
}

func BenchmarkMemoizeBoundedMiss(b *testing.B) {
	square := functions.Memoize(functions.Unary(func(n int) int { return n * n }), functions.WithCacheSize(128))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		square(i)
	}
}

func BenchmarkOnce(b *testing.B) {
	fn := functions.Once(func(...int) int { return 1 })
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			fn()
		}
	})
}
