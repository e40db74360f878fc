package engine

import "log/slog"

// Option adjusts automaton construction.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger attaches a structured logger used for construction
// diagnostics. Scanning itself never logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) built(msg string, args ...any) {
	if o.log != nil {
		o.log.Debug(msg, args...)
	}
}
