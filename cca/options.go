// SPDX-License-Identifier: MIT
// Package cca: functional options shared by every recognition model.
//
// Policy:
//   - Option constructors validate their argument and PANIC on meaningless
//     values (negative counts, nil logger, unknown strategy). Models never
//     panic at run time.
//   - Options are applied in order; the last writer wins.
//   - Options a model does not use are ignored (e.g. WithNeighbors on SCCA).

package cca

import (
	"log/slog"
)

// Defaults.
const (
	// DefaultComponents is the number of filter columns kept per class.
	DefaultComponents = 1

	// DefaultJobs means "use every available processor".
	DefaultJobs = 0

	// DefaultUpdateUV recomputes filters on every Predict.
	DefaultUpdateUV = true

	// DefaultForceOutputUV stores filters only when the update policy needs
	// them.
	DefaultForceOutputUV = false

	// DefaultNeighbors is the multi-stimulus window width of MSCCA.
	DefaultNeighbors = 12
)

// Panic messages.
const (
	panicComponentsNegative = "cca: WithComponents: n must be >= 0"
	panicJobsNegative       = "cca: WithJobs: n must be >= 0"
	panicWeightsInvalid     = "cca: WithFilterbankWeights: weights must be finite"
	panicCCATypeInvalid     = "cca: WithCCAType: unknown type"
	panicNeighborsInvalid   = "cca: WithNeighbors: n must be >= 1"
	panicLoggerNil          = "cca: WithLogger(nil)"
)

// Option customizes a model at construction.
type Option func(*Options)

// Options is the resolved configuration of a model.
type Options struct {
	components    int       // >= 0; 0 means score-only
	jobs          int       // >= 0; 0 means all processors
	weights       []float64 // nil means uniform
	forceOutputUV bool
	updateUV      bool
	ccaType       CCAType
	neighbors     int // >= 1
	logger        *slog.Logger
}

// Components returns the number of filter columns per class.
func (o Options) Components() int { return o.components }

// Jobs returns the configured worker count (0 = all processors).
func (o Options) Jobs() int { return o.jobs }

// FilterbankWeights returns a copy of the configured weights, or nil.
func (o Options) FilterbankWeights() []float64 { return append([]float64(nil), o.weights...) }

// ForceOutputUV reports whether filters are always stored.
func (o Options) ForceOutputUV() bool { return o.forceOutputUV }

// UpdateUV reports whether filters are recomputed on every Predict.
func (o Options) UpdateUV() bool { return o.updateUV }

// CCAType returns the correlation strategy.
func (o Options) CCAType() CCAType { return o.ccaType }

// Neighbors returns the multi-stimulus window width.
func (o Options) Neighbors() int { return o.neighbors }

// WithComponents sets how many canonical filter columns are kept per class.
// Zero selects the score-only path where supported.
func WithComponents(n int) Option {
	if n < 0 {
		panic(panicComponentsNegative)
	}

	return func(o *Options) { o.components = n }
}

// WithJobs bounds the number of trials scored concurrently; 0 uses every
// processor and 1 runs sequentially.
func WithJobs(n int) Option {
	if n < 0 {
		panic(panicJobsNegative)
	}

	return func(o *Options) { o.jobs = n }
}

// WithFilterbankWeights sets the per-band weights. The slice is copied. Its
// length is checked against the data at Predict time (ErrWeightsShape).
func WithFilterbankWeights(w []float64) Option {
	for _, v := range w {
		if isNonFinite(v) {
			panic(panicWeightsInvalid)
		}
	}
	cp := append([]float64(nil), w...)

	return func(o *Options) { o.weights = cp }
}

// WithForceOutputUV stores filters computed during Predict even when they
// are recomputed on every call.
func WithForceOutputUV(force bool) Option {
	return func(o *Options) { o.forceOutputUV = force }
}

// WithUpdateUV selects whether filters are recomputed on every Predict
// (true) or computed once and reused (false).
func WithUpdateUV(update bool) Option {
	return func(o *Options) { o.updateUV = update }
}

// WithCCAType selects the SCCA correlation strategy.
func WithCCAType(t CCAType) Option {
	if !t.valid() {
		panic(panicCCATypeInvalid)
	}

	return func(o *Options) { o.ccaType = t }
}

// WithNeighbors sets how many frequency-sorted classes MSCCA pools per class.
func WithNeighbors(n int) Option {
	if n < 1 {
		panic(panicNeighborsInvalid)
	}

	return func(o *Options) { o.neighbors = n }
}

// WithLogger sets the logger used for numerical warnings.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		components:    DefaultComponents,
		jobs:          DefaultJobs,
		forceOutputUV: DefaultForceOutputUV,
		updateUV:      DefaultUpdateUV,
		ccaType:       CCATypeQR,
		neighbors:     DefaultNeighbors,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// clone returns o with its own copy of the weights.
func (o Options) clone() Options {
	o.weights = append([]float64(nil), o.weights...)
	if len(o.weights) == 0 {
		o.weights = nil
	}

	return o
}
