// SPDX-License-Identifier: MIT
// Package cca: extended CCA (eCCA).
//
// eCCA fuses four correlations per trial X, class reference Y_ref and class
// template Y_tpl:
//
//	r1  X vs Y_ref   with (U1, V1) learned between X and Y_ref
//	r2  X vs Y_tpl   with (U2, U2), U2 learned between X and Y_tpl
//	r3  X vs Y_tpl   with (U1, U1)
//	r4  X vs Y_tpl   with (U3, U3), U3 learned at Fit between Y_tpl and Y_ref
//
// and decides by the band-weighted sum of signed squares. The spatial filters
// act on channels, so every template term uses a U for both sides.
//
// Under !UpdateUV the per-trial U1/V1 and U2 are stored by the first Predict
// and reused by trial position afterwards.

package cca

import (
	"github.com/katalvlaran/ssvepcca/internal/parallel"
	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// ECCA is the extended CCA recognizer.
type ECCA struct {
	base
	ref   []SignalQR
	tmpl  []SignalQR
	bands int
	u3    Filters   // template-vs-reference filters, [band][class]
	uv1   []Filters // per-trial (U1, V1)
	uu2   []Filters // per-trial (U2, U2)
}

// NewECCA builds an eCCA model.
func NewECCA(opts ...Option) *ECCA {
	return &ECCA{base: newBase("eCCA", opts)}
}

// Fit builds class templates from X/Y, decomposes references and templates
// and learns U3/V3 between every template band and its reference.
//
// Errors: ErrMissingReference, ErrMissingTrials, ErrMissingLabels,
// ErrLabelCount, ErrComponents.
func (m *ECCA) Fit(_ []float64, x []signal.Trial, y []int, refSig []*mat.Dense) error {
	if err := validateReferences(refSig); err != nil {
		return ccaErrorf(opECCAFit, err)
	}
	if err := validateLabeled(x, y, len(refSig)); err != nil {
		return ccaErrorf(opECCAFit, err)
	}
	templates, _, err := signal.GenTemplate(x, y)
	if err != nil {
		return ccaErrorf(opECCAFit, err)
	}
	ref, err := DecomposeSignals(signal.SharedList(refSig))
	if err != nil {
		return ccaErrorf(opECCAFit, err)
	}
	tmpl, err := DecomposeSignals(signal.TemplateList(templates))
	if err != nil {
		return ccaErrorf(opECCAFit, err)
	}

	bands, classes := templates[0].Bands(), len(templates)
	u3 := NewFilters(bands, classes)
	err = parallel.For(bands*classes, func(j int) error {
		k, i := j/classes, j%classes
		can, err := linalg.CanonCorr(templates[i][k].T(), refSig[i].T(), true)
		if err != nil {
			return err
		}
		u, v, err := leadingFilters(can, m.opts.components)
		if err != nil {
			return err
		}
		u3.U[k][i], u3.V[k][i] = u, v
		return nil
	}, m.pool)
	if err != nil {
		return ccaErrorf(opECCAFit, err)
	}

	m.ref, m.tmpl, m.bands, m.u3 = ref, tmpl, bands, u3
	m.uv1, m.uu2 = nil, nil
	m.fitted = true

	return nil
}

// Predict implements Model.
func (m *ECCA) Predict(x []signal.Trial) ([]int, error) {
	scores, err := m.PredictScores(x)
	if err != nil {
		return nil, err
	}

	return decide(scores), nil
}

// PredictScores returns the fused signed-square scores of every trial.
func (m *ECCA) PredictScores(x []signal.Trial) ([][]float64, error) {
	if !m.fitted {
		return nil, ccaErrorf(opECCAPredict, ErrNotFitted)
	}
	bands, err := validateTrials(x)
	if err != nil {
		return nil, ccaErrorf(opECCAPredict, err)
	}
	if bands != m.bands {
		return nil, ccaErrorf(opECCAPredict, ErrBandMismatch)
	}
	w, err := m.weightsFor(bands)
	if err != nil {
		return nil, ccaErrorf(opECCAPredict, err)
	}

	update := m.opts.updateUV
	newUV1 := update || m.uv1 == nil
	newUU2 := update || m.uu2 == nil
	if (!newUV1 && len(x) > len(m.uv1)) || (!newUU2 && len(x) > len(m.uu2)) {
		return nil, ccaErrorf(opECCAPredict, ErrFiltersShape)
	}

	type scored struct {
		score []float64
		uv1   Filters
		uu2   Filters
	}
	n := m.opts.components
	u3u3 := Filters{U: m.u3.U, V: m.u3.U}
	results, err := parallel.Map(len(x), func(i int) (scored, error) {
		var (
			r1  *mat.Dense
			uv1 Filters
			uu2 Filters
			err error
		)
		if newUV1 {
			r1, uv1, err = QRCorr(x[i], m.ref, n, true)
		} else {
			uv1 = m.uv1[i]
			r1, err = QRCorrWithUV(x[i], m.ref, uv1)
		}
		if err != nil {
			return scored{}, err
		}
		if newUU2 {
			var f2 Filters
			if _, f2, err = QRCorr(x[i], m.tmpl, n, true); err != nil {
				return scored{}, err
			}
			uu2 = Filters{U: f2.U, V: f2.U}
		} else {
			uu2 = m.uu2[i]
		}
		r2, err := QRCorrWithUV(x[i], m.tmpl, uu2)
		if err != nil {
			return scored{}, err
		}
		r3, err := QRCorrWithUV(x[i], m.tmpl, Filters{U: uv1.U, V: uv1.U})
		if err != nil {
			return scored{}, err
		}
		r4, err := QRCorrWithUV(x[i], m.tmpl, u3u3)
		if err != nil {
			return scored{}, err
		}

		return scored{score: signedSquareSum(w, r1, r2, r3, r4), uv1: uv1, uu2: uu2}, nil
	}, m.pool)
	if err != nil {
		return nil, ccaErrorf(opECCAPredict, err)
	}

	out := make([][]float64, len(results))
	for i := range results {
		out[i] = results[i].score
	}
	if newUV1 {
		m.uv1 = make([]Filters, len(results))
		for i := range results {
			m.uv1[i] = results[i].uv1
		}
	}
	if newUU2 {
		m.uu2 = make([]Filters, len(results))
		for i := range results {
			m.uu2[i] = results[i].uu2
		}
	}

	return out, nil
}

// TemplateFilters returns a copy of the fit-time U3/V3 filters.
func (m *ECCA) TemplateFilters() Filters { return m.u3.Clone() }

// Clone implements Model.
func (m *ECCA) Clone() Model {
	return &ECCA{
		base:  m.base.clone(),
		ref:   cloneSignalQRs(m.ref),
		tmpl:  cloneSignalQRs(m.tmpl),
		bands: m.bands,
		u3:    m.u3.Clone(),
		uv1:   cloneFiltersList(m.uv1),
		uu2:   cloneFiltersList(m.uu2),
	}
}
