// SPDX-License-Identifier: MIT
// Package evaluator: Runner options.
//
// As in package cca, constructors panic on meaningless values and the last
// writer wins.

package evaluator

import "log/slog"

// Defaults, in seconds, of a typical cued-spelling paradigm.
const (
	DefaultBreak   = 0.5
	DefaultLatency = 0.14
	DefaultJobs    = 0
)

const (
	panicTimingInvalid = "evaluator: WithTiming: times must be finite and >= 0"
	panicJobsNegative  = "evaluator: WithJobs: n must be >= 0"
	panicLoggerNil     = "evaluator: WithLogger(nil)"
)

// Option customizes a Runner.
type Option func(*runnerOptions)

type runnerOptions struct {
	tBreak   float64
	tLatency float64
	jobs     int
	logger   *slog.Logger
}

// WithTiming sets the inter-trial break and the visual latency charged to
// every selection by ITR.
func WithTiming(tBreak, tLatency float64) Option {
	if !(tBreak >= 0 && tLatency >= 0) || tBreak > 1e9 || tLatency > 1e9 {
		panic(panicTimingInvalid)
	}

	return func(o *runnerOptions) { o.tBreak, o.tLatency = tBreak, tLatency }
}

// WithJobs bounds how many folds run at once; 0 uses every processor.
func WithJobs(n int) Option {
	if n < 0 {
		panic(panicJobsNegative)
	}

	return func(o *runnerOptions) { o.jobs = n }
}

// WithLogger sets the logger that receives per-fold results.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *runnerOptions) { o.logger = l }
}

func gatherOptions(opts []Option) runnerOptions {
	o := runnerOptions{
		tBreak:   DefaultBreak,
		tLatency: DefaultLatency,
		jobs:     DefaultJobs,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
