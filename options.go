package moldist

type options struct {
	workers        int
	forceAllFinite bool
	minkowskiP     float64
	logger         *Logger
}

func defaultOptions() options {
	return options{
		workers:        -1,
		forceAllFinite: true,
		minkowskiP:     3,
		logger:         NoopLogger(),
	}
}

// Option configures DistanceMatrix behavior.
type Option func(*options)

// WithWorkers sets the number of goroutines the general-purpose backend may
// use. Values <= 0 (the default) mean one worker per CPU. The built-in
// fingerprint path is sequential and ignores this option.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithForceAllFinite toggles the NaN/Inf input check. It defaults to true;
// disabling it lets non-finite values flow into the metric kernels, which
// then produce non-finite entries rather than an error.
func WithForceAllFinite(enabled bool) Option {
	return func(o *options) {
		o.forceAllFinite = enabled
	}
}

// WithMinkowskiP sets the exponent for the Minkowski metric. Defaults to 3;
// must be positive. Other metrics ignore it.
func WithMinkowskiP(p float64) Option {
	return func(o *options) {
		o.minkowskiP = p
	}
}

// WithLogger sets the logger used for debug-level route tracing.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
