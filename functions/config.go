package functions

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Config holds the runtime configuration shared by the combinators that need
// a timer facility, a logger or a cache bound.
type Config struct {
	// Clock is the timer facility used by [Throttle] and [DelayOn]. It must
	// report the current time and fire each AfterFunc callback at most once,
	// no earlier than the requested delay.
	// Defaults to the wall clock.
	Clock clock.Clock

	// Logger receives Debug-level traces of cache and scheduling decisions.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// CacheSize bounds the number of results kept by [Memoize]. When the
	// bound is reached the least recently used result is evicted.
	// Zero or negative means unbounded.
	CacheSize int
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Clock:  clock.New(),
		Logger: zap.NewNop(),
	}
}

// Option is a functional option for configuring a combinator.
type Option func(*Config)

// WithClock sets the timer facility. Tests typically pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(cfg *Config) { cfg.Clock = c }
}

// WithLogger sets the logger used for Debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// WithCacheSize bounds the [Memoize] cache to n entries.
func WithCacheSize(n int) Option {
	return func(cfg *Config) { cfg.CacheSize = n }
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
