// SPDX-License-Identifier: MIT
// Package cca: standard CCA (SCCA).
//
// SCCA correlates each trial with the sine-cosine reference of every class
// and picks the class with the largest band-weighted correlation. It needs no
// training trials. Two interchangeable strategies compute the correlations
// (see CCAType); NewSCCA picks one from WithCCAType.
//
// Filter policy:
//   - UpdateUV (default): filters are recomputed on every Predict and kept
//     only with ForceOutputUV.
//   - !UpdateUV: the first Predict computes and stores per-trial filters;
//     later calls reuse them by trial position and are therefore
//     deterministic. A batch longer than the cache fails with ErrFiltersShape.

package cca

import (
	"github.com/katalvlaran/ssvepcca/internal/parallel"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// correlator is the strategy behind SCCA.
type correlator interface {
	fit(refs []signal.Multiband) error
	corr(x signal.Trial, nComponent int, forceUV bool) (*mat.Dense, Filters, error)
	corrWithUV(x signal.Trial, f Filters) (*mat.Dense, error)
	clone() correlator
}

// qrCorrelator caches the reference QR factors at fit time.
type qrCorrelator struct{ refs []SignalQR }

func (c *qrCorrelator) fit(refs []signal.Multiband) error {
	d, err := DecomposeSignals(refs)
	if err != nil {
		return err
	}
	c.refs = d

	return nil
}

func (c *qrCorrelator) corr(x signal.Trial, n int, force bool) (*mat.Dense, Filters, error) {
	return QRCorr(x, c.refs, n, force)
}

func (c *qrCorrelator) corrWithUV(x signal.Trial, f Filters) (*mat.Dense, error) {
	return QRCorrWithUV(x, c.refs, f)
}

func (c *qrCorrelator) clone() correlator {
	return &qrCorrelator{refs: cloneSignalQRs(c.refs)}
}

// canoncorrCorrelator keeps the raw references.
type canoncorrCorrelator struct{ refs []signal.Multiband }

func (c *canoncorrCorrelator) fit(refs []signal.Multiband) error {
	c.refs = refs

	return nil
}

func (c *canoncorrCorrelator) corr(x signal.Trial, n int, force bool) (*mat.Dense, Filters, error) {
	return CanoncorrCorr(x, c.refs, n, force)
}

func (c *canoncorrCorrelator) corrWithUV(x signal.Trial, f Filters) (*mat.Dense, error) {
	return CanoncorrCorrWithUV(x, c.refs, f)
}

func (c *canoncorrCorrelator) clone() correlator {
	return &canoncorrCorrelator{refs: cloneMultibands(c.refs)}
}

func cloneMultibands(in []signal.Multiband) []signal.Multiband {
	if in == nil {
		return nil
	}
	out := make([]signal.Multiband, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// SCCA is the standard CCA recognizer.
type SCCA struct {
	base
	corr correlator
	uv   []Filters // per-trial filters, nil until stored
}

// NewSCCA builds an SCCA model with the strategy chosen by WithCCAType
// (CCATypeQR by default).
func NewSCCA(opts ...Option) *SCCA {
	b := newBase("", opts)
	m := &SCCA{base: b}
	switch b.opts.ccaType {
	case CCATypeCanoncorr:
		m.id = "sCCA (canoncorr)"
		m.corr = &canoncorrCorrelator{}
	default:
		m.id = "sCCA (qr)"
		m.corr = &qrCorrelator{}
	}

	return m
}

// Fit stores (and for the QR strategy decomposes) the references. freqs, X
// and Y are ignored.
func (m *SCCA) Fit(_ []float64, _ []signal.Trial, _ []int, refSig []*mat.Dense) error {
	if err := validateReferences(refSig); err != nil {
		return ccaErrorf(opSCCAFit, err)
	}
	if err := m.corr.fit(signal.SharedList(refSig)); err != nil {
		return ccaErrorf(opSCCAFit, err)
	}
	m.uv = nil
	m.fitted = true

	return nil
}

// Predict implements Model.
func (m *SCCA) Predict(x []signal.Trial) ([]int, error) {
	scores, err := m.PredictScores(x)
	if err != nil {
		return nil, err
	}

	return decide(scores), nil
}

// PredictScores returns Σ_k w_k·r[k,i] for every trial and class.
func (m *SCCA) PredictScores(x []signal.Trial) ([][]float64, error) {
	if !m.fitted {
		return nil, ccaErrorf(opSCCAPredict, ErrNotFitted)
	}
	bands, err := validateTrials(x)
	if err != nil {
		return nil, ccaErrorf(opSCCAPredict, err)
	}
	w, err := m.weightsFor(bands)
	if err != nil {
		return nil, ccaErrorf(opSCCAPredict, err)
	}

	type scored struct {
		r *mat.Dense
		f Filters
	}
	var results []scored
	update := m.opts.updateUV
	if update || m.uv == nil {
		store := m.opts.forceOutputUV || !update
		results, err = parallel.Map(len(x), func(i int) (scored, error) {
			r, f, err := m.corr.corr(x[i], m.opts.components, store)
			return scored{r: r, f: f}, err
		}, m.pool)
		if err != nil {
			return nil, ccaErrorf(opSCCAPredict, err)
		}
		if store {
			m.uv = make([]Filters, len(results))
			for i := range results {
				m.uv[i] = results[i].f
			}
		}
	} else {
		if len(x) > len(m.uv) {
			return nil, ccaErrorf(opSCCAPredict, ErrFiltersShape)
		}
		results, err = parallel.Map(len(x), func(i int) (scored, error) {
			r, err := m.corr.corrWithUV(x[i], m.uv[i])
			return scored{r: r}, err
		}, m.pool)
		if err != nil {
			return nil, ccaErrorf(opSCCAPredict, err)
		}
	}

	out := make([][]float64, len(results))
	for i := range results {
		out[i] = weightedSum(w, results[i].r)
	}

	return out, nil
}

// Filters returns a copy of the stored per-trial filters, or nil.
func (m *SCCA) Filters() []Filters { return cloneFiltersList(m.uv) }

// Clone implements Model.
func (m *SCCA) Clone() Model {
	return &SCCA{base: m.base.clone(), corr: m.corr.clone(), uv: cloneFiltersList(m.uv)}
}
