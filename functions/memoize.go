package functions

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// store is the result cache behind a [Memoize] wrapper. Presence is reported
// separately from the value, so a cached zero value is still a hit.
type store[R any] interface {
	Get(key cacheKey) (R, bool)
	Add(key cacheKey, value R) (evicted bool)
}

// mapStore is the unbounded store.
type mapStore[R any] map[cacheKey]R

func (s mapStore[R]) Get(key cacheKey) (R, bool) {
	v, ok := s[key]
	return v, ok
}

func (s mapStore[R]) Add(key cacheKey, value R) bool {
	s[key] = value
	return false
}

// memoizer is the private state behind a [Memoize] wrapper.
type memoizer[A, R any] struct {
	fn  Func[A, R]
	log *zap.Logger

	mu       sync.Mutex
	cache    store[R]
	inflight map[cacheKey]chan struct{}
}

// Memoize returns a Func that caches the result of fn for every distinct
// argument list. The whole argument list is serialized into the cache key,
// so multi-argument calls are supported. Arguments are expected to be
// values whose printed form identifies them (numbers, strings, pointers and
// plain structs of those).
//
// fn runs at most once per key: concurrent callers with the same arguments
// wait for the in-flight call instead of recomputing, while callers with
// different arguments proceed in parallel. If fn panics nothing is cached and
// the panic propagates; a waiting caller then retries. fn may call the
// wrapper recursively with different arguments, but not with its own.
//
// With [WithCacheSize] the cache keeps only the n most recently used results
// and an evicted key is recomputed on its next call.
func Memoize[A, R any](fn Func[A, R], opts ...Option) Func[A, R] {
	cfg := newConfig(opts)
	m := &memoizer[A, R]{
		fn:       fn,
		log:      cfg.Logger,
		inflight: make(map[cacheKey]chan struct{}),
	}
	if cfg.CacheSize > 0 {
		// lru.New only fails for a non-positive size.
		m.cache, _ = lru.New[cacheKey, R](cfg.CacheSize)
	} else {
		m.cache = mapStore[R]{}
	}
	return m.call
}

func (m *memoizer[A, R]) call(args ...A) R {
	key := keyOf(args)
	for {
		m.mu.Lock()
		if v, ok := m.cache.Get(key); ok {
			m.mu.Unlock()
			return v
		}
		if done, running := m.inflight[key]; running {
			m.mu.Unlock()
			<-done
			continue
		}

		done := make(chan struct{})
		m.inflight[key] = done
		m.mu.Unlock()
		return m.compute(key, done, args)
	}
}

func (m *memoizer[A, R]) compute(key cacheKey, done chan struct{}, args []A) R {
	defer func() {
		m.mu.Lock()
		delete(m.inflight, key)
		m.mu.Unlock()
		close(done)
	}()

	m.log.Debug("memoize: cache miss", zap.Stringer("key", key))
	result := m.fn(args...)

	m.mu.Lock()
	if m.cache.Add(key, result) {
		m.log.Debug("memoize: evicted least recently used result")
	}
	m.mu.Unlock()
	return result
}
