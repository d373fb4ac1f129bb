package lcg

import "time"

// Clock reports the current time. It is read once when a Generator is
// created without a seed.
type Clock func() time.Time

// Options configures a Generator
type Options struct {
	seed  *int64
	clock Clock
}

// Option is option setter for Generator
type Option func(*Options)

// DefaultClock is used when no clock is given
var DefaultClock Clock = time.Now

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.clock == nil {
		opt.clock = DefaultClock
	}

	return opt
}

// WithSeed sets the initial state verbatim. Negative and out-of-range
// values are accepted.
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.seed = &seed
	}
}

// WithClock sets the clock used for default seeding
func WithClock(clock Clock) Option {
	return func(opts *Options) {
		opts.clock = clock
	}
}
