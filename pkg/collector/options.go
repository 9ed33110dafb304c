package collector

import "time"

// Options configures collector behavior.
type Options struct {
	// DefaultTimeout is stamped on every test at creation, before chain
	// entries run. Zero or negative values use DefaultTimeout.
	DefaultTimeout time.Duration
}

// Option is a functional option for configuring Collector.
type Option func(*Options)

// WithDefaultTimeout sets the timeout stamped on newly created tests.
// Negative values are ignored.
func WithDefaultTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.DefaultTimeout = d
		}
	}
}

func applyDefaults(opts *Options) {
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = DefaultTimeout
	}
}
