package function

import "runtime"

// defaultThreshold is the minimum output count ("jacobian_parallel_threshold")
// at which WithParallelJacobian actually dispatches rows across the pool.
const defaultThreshold = 10

// options holds a Function's resolved Jacobian-dispatch configuration.
type options struct {
	parallel  bool
	threshold int
	poolSize  int
}

func defaultOptions() options {
	return options{
		parallel:  false,
		threshold: defaultThreshold,
		poolSize:  runtime.NumCPU(),
	}
}

// Option configures a Function, following the functional-options
// convention used throughout this module.
type Option func(*options)

// WithParallelJacobian enables worker-pool dispatch of Jacobian rows once
// the output count reaches the configured threshold (default off).
func WithParallelJacobian() Option {
	return func(o *options) { o.parallel = true }
}

// WithJacobianParallelThreshold sets the minimum output count at which
// pooling activates ("jacobian_parallel_threshold", default 10). n must
// be positive; non-positive values are ignored.
func WithJacobianParallelThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.threshold = n
		}
	}
}

// WithPoolSize sets the worker count used when pooling is active (default
// = hardware concurrency). n must be positive; non-positive values are
// ignored.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}
