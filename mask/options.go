package mask

// Options is mask options
type Options struct {
	seed        int64
	sourceNewer SourceNewer
}

// Option is option setter for Mask
type Option func(*Options)

func newOptions(seed int64, opts ...Option) *Options {
	opt := &Options{seed: seed}
	for _, o := range opts {
		o(opt)
	}

	if opt.sourceNewer == nil {
		opt.sourceNewer = lcgSource
	}

	return opt
}

// WithSourceNewer replaces the lcg keystream, e.g. with rand.NewSource
func WithSourceNewer(newer SourceNewer) Option {
	return func(opts *Options) {
		opts.sourceNewer = newer
	}
}
