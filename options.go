package texscale

import "log/slog"

// Option configures a Run.
//
// Example:
//
//	report, err := texscale.Run(ctx, batch,
//	    texscale.WithWorkers(4),
//	    texscale.WithLogger(slog.Default()),
//	)
type Option func(*options)

// options holds optional configuration for Run.
type options struct {
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the default run options.
func defaultOptions() options {
	return options{
		workers: 0,   // GOMAXPROCS
		logger:  nil, // package logger
	}
}

// WithWorkers bounds the number of resources transformed at once.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger for a single Run, overriding the package
// logger installed with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
