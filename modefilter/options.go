package modefilter

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
const DefaultWorkers = 0

const panicWorkersNegative = "modefilter: WithWorkers: n must be >= 0"

// Option configures a filter run.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int         // 0 ⇒ GOMAXPROCS
	logger  *zap.Logger // never nil after gatherOptions
}

// WithWorkers bounds the number of goroutines filling row bands.
// n == 0 restores the default (GOMAXPROCS); negative n panics.
// The output does not depend on n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes the start/finish debug lines to l. A nil logger
// silences them.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
