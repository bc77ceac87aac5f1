// SPDX-License-Identifier: MIT

package stitch

import "log/slog"

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultParallel runs the independent interpolations sequentially.
	DefaultParallel = false

	// DefaultIndependentAxes sizes the y-axis from the x-span.
	DefaultIndependentAxes = false

	// DefaultCorrectedWeights keeps the cross-assigned overlap weights.
	DefaultCorrectedWeights = false
)

const panicNilLogger = "stitch: WithLogger: logger must not be nil"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of a Stitch call.
type Options struct {
	logger           *slog.Logger
	parallel         bool
	independentAxes  bool
	correctedWeights bool
}

// DefaultOptions returns the documented defaults with slog.Default() as logger.
func DefaultOptions() Options {
	return Options{
		logger:           slog.Default(),
		parallel:         DefaultParallel,
		independentAxes:  DefaultIndependentAxes,
		correctedWeights: DefaultCorrectedWeights,
	}
}

// WithLogger routes warnings and debug records to l. It panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithParallel interpolates the two fields concurrently.
// Results are bitwise identical to the sequential path.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithIndependentAxes derives the y node count from the y-span instead of
// reusing the x node count.
func WithIndependentAxes() Option {
	return func(o *Options) { o.independentAxes = true }
}

// WithCorrectedWeights blends the overlap as f1·W1 + f2·W2.
func WithCorrectedWeights() Option {
	return func(o *Options) { o.correctedWeights = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
