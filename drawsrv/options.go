package drawsrv

import (
	"time"

	"github.com/tutils/lcgrand/counter"
	"github.com/tutils/lcgrand/counter/period"
	"github.com/tutils/lcgrand/lcg"
)

// Options is server options
type Options struct {
	addr    string
	clock   lcg.Clock
	counter counter.Counter
}

// Option is option setter for server
type Option func(*Options)

// default server options
var (
	DefaultListenAddress = "ws://0.0.0.0:8080/stream"
	DefaultCounterPeriod = 5 * time.Second
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.clock == nil {
		opt.clock = lcg.DefaultClock
	}
	if opt.counter == nil {
		opt.counter = period.New(DefaultCounterPeriod)
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.addr = addr
	}
}

// WithClock sets the clock that seeds sessions opened without a seed
func WithClock(clock lcg.Clock) Option {
	return func(opts *Options) {
		opts.clock = clock
	}
}

// WithCounter sets the draw counter
func WithCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.counter = c
	}
}
