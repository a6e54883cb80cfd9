// SPDX-License-Identifier: MIT
// Package cca: the model contract shared by every recognizer.

package cca

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/ssvepcca/internal/parallel"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// Model is a stateful SSVEP classifier.
//
// Lifecycle: a new model is unfit; Fit learns its state (replacing any
// previous state) and Predict may be called any number of times afterwards.
// Predict before Fit returns ErrNotFitted. Depending on its update policy a
// model may mutate its own state during Predict, so a single model value must
// not be used from several goroutines at once; Clone it instead.
type Model interface {
	// ID is a short human-readable name, e.g. "eCCA".
	ID() string

	// Fit learns the model state. freqs are the stimulus frequencies, X and
	// Y labeled training trials and refSig one harmonics×samples reference
	// per class. Which arguments are required depends on the model.
	Fit(freqs []float64, X []signal.Trial, Y []int, refSig []*mat.Dense) error

	// Predict returns one class index in [0, len(refSig)) per trial.
	Predict(X []signal.Trial) ([]int, error)

	// Clone returns an independent deep copy, fitted state included.
	Clone() Model
}

// Scorer is implemented by models that can expose the combined per-class
// scores behind each decision. Predict returns the arg-max of each row.
type Scorer interface {
	PredictScores(X []signal.Trial) ([][]float64, error)
}

// CCAType selects how SCCA computes correlations.
type CCAType int

const (
	// CCATypeQR decomposes the references once at Fit and reuses the QR
	// factors for every trial: faster, more memory.
	CCATypeQR CCAType = iota

	// CCATypeCanoncorr runs a full canonical correlation per trial and class:
	// slower, less memory.
	CCATypeCanoncorr
)

// String returns "qr" or "canoncorr".
func (t CCAType) String() string {
	switch t {
	case CCATypeQR:
		return "qr"
	case CCATypeCanoncorr:
		return "canoncorr"
	default:
		return "unknown"
	}
}

func (t CCAType) valid() bool { return t == CCATypeQR || t == CCATypeCanoncorr }

// ParseCCAType maps "qr" / "canoncorr" (case-insensitive) to a CCAType.
func ParseCCAType(s string) (CCAType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qr":
		return CCATypeQR, nil
	case "canoncorr":
		return CCATypeCanoncorr, nil
	default:
		return 0, ccaErrorf(opParseCCAType, ErrUnknownCCAType)
	}
}

// base carries what every model shares: identity, options and the worker
// pool configuration.
type base struct {
	id     string
	opts   Options
	pool   parallel.Config
	fitted bool
}

func newBase(id string, opts []Option) base {
	o := gatherOptions(opts...)

	return base{id: id, opts: o, pool: parallel.FromJobs(o.jobs)}
}

// ID implements Model.
func (b *base) ID() string { return b.id }

// Options returns the resolved configuration.
func (b *base) Options() Options { return b.opts.clone() }

func (b *base) logger() *slog.Logger { return b.opts.logger }

// clone copies the shared part; the weights get their own storage.
func (b *base) clone() base {
	out := *b
	out.opts = b.opts.clone()

	return out
}

// weightsFor returns the configured weights, or uniform ones for the given
// band count.
func (b *base) weightsFor(bands int) ([]float64, error) {
	if b.opts.weights == nil {
		w := make([]float64, bands)
		for k := range w {
			w[k] = 1
		}
		return w, nil
	}
	if len(b.opts.weights) != bands {
		return nil, ccaErrorf(opWeights, ErrWeightsShape)
	}

	return b.opts.weights, nil
}

// decide turns per-trial score vectors into class decisions.
func decide(scores [][]float64) []int {
	out := make([]int, len(scores))
	for i, s := range scores {
		out[i] = argmax(s)
	}

	return out
}

var (
	_ Model  = (*SCCA)(nil)
	_ Model  = (*ECCA)(nil)
	_ Model  = (*MSCCA)(nil)
	_ Model  = (*OACCA)(nil)
	_ Scorer = (*SCCA)(nil)
	_ Scorer = (*ECCA)(nil)
	_ Scorer = (*MSCCA)(nil)
)
