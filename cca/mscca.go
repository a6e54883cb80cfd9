// SPDX-License-Identifier: MIT
// Package cca: multi-stimulus CCA (ms-CCA).
//
// Classes are ordered by stimulus frequency. For every class, the references
// and templates of a window of n_neighbor frequency-adjacent classes are
// concatenated along time and one (U, V) pair per band is learned between the
// two concatenations. The window is centred on the class where possible and
// shifted (then clamped) at the edges of [0, stimulus_num).
//
// Predict fuses
//
//	r1  X vs Y_ref  with (U, V)
//	r2  X vs Y_tpl  with (U, U)
//
// by the band-weighted sum of signed squares.

package cca

import (
	"github.com/katalvlaran/ssvepcca/internal/parallel"
	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// MSCCA is the multi-stimulus CCA recognizer.
type MSCCA struct {
	base
	ref     []signal.Multiband
	tmpl    []signal.Multiband
	bands   int
	filters Filters
}

// NewMSCCA builds an ms-CCA model. WithNeighbors sets the window width
// (DefaultNeighbors).
func NewMSCCA(opts ...Option) *MSCCA {
	return &MSCCA{base: newBase("ms-CCA", opts)}
}

// neighborWindow returns the half-open range [start, end) of sorted class
// positions pooled for the class at sorted position c out of s classes.
func neighborWindow(c, s, n int) (start, end int) {
	d0 := n / 2
	switch {
	case c < d0:
		start, end = 0, n
	case c < s-d0:
		start, end = c-d0, c-d0+n
	default:
		start, end = s-n, s
	}

	return max(start, 0), min(end, s)
}

// Fit learns one (U, V) pair per band and class.
//
// Errors: ErrMissingFreqs (also when len(freqs) != len(refSig)),
// ErrMissingReference, ErrMissingTrials, ErrMissingLabels, ErrLabelCount,
// ErrComponents.
func (m *MSCCA) Fit(freqs []float64, x []signal.Trial, y []int, refSig []*mat.Dense) error {
	if len(freqs) == 0 {
		return ccaErrorf(opMSCCAFit, ErrMissingFreqs)
	}
	if err := validateReferences(refSig); err != nil {
		return ccaErrorf(opMSCCAFit, err)
	}
	if len(freqs) != len(refSig) {
		return ccaErrorf(opMSCCAFit, ErrMissingFreqs)
	}
	if err := validateLabeled(x, y, len(refSig)); err != nil {
		return ccaErrorf(opMSCCAFit, err)
	}
	templates, _, err := signal.GenTemplate(x, y)
	if err != nil {
		return ccaErrorf(opMSCCAFit, err)
	}
	ref := signal.SharedList(refSig)
	tmpl := signal.TemplateList(templates)

	classes := len(refSig)
	_, order, _ := signal.SortFreqs(freqs)
	msRef := make([]signal.Multiband, classes)
	msTmpl := make([]signal.Multiband, classes)
	for c := 0; c < classes; c++ {
		start, end := neighborWindow(c, classes, m.opts.neighbors)
		refParts := make([]signal.Multiband, 0, end-start)
		tmplParts := make([]signal.Multiband, 0, end-start)
		for _, idx := range order[start:end] {
			refParts = append(refParts, ref[idx])
			tmplParts = append(tmplParts, tmpl[idx])
		}
		if msRef[c], err = signal.Concat(refParts); err != nil {
			return ccaErrorf(opMSCCAFit, err)
		}
		if msTmpl[c], err = signal.Concat(tmplParts); err != nil {
			return ccaErrorf(opMSCCAFit, err)
		}
	}

	bands := templates[0].Bands()
	filters := NewFilters(bands, classes)
	err = parallel.For(bands*classes, func(j int) error {
		k, c := j/classes, j%classes
		t, err := msTmpl[c].Band(k)
		if err != nil {
			return err
		}
		r, err := msRef[c].Band(k)
		if err != nil {
			return err
		}
		can, err := linalg.CanonCorr(t.T(), r.T(), true)
		if err != nil {
			return err
		}
		u, v, err := leadingFilters(can, m.opts.components)
		if err != nil {
			return err
		}
		// sorted position c belongs to class order[c]
		filters.U[k][order[c]], filters.V[k][order[c]] = u, v
		return nil
	}, m.pool)
	if err != nil {
		return ccaErrorf(opMSCCAFit, err)
	}

	m.ref, m.tmpl, m.bands, m.filters = ref, tmpl, bands, filters
	m.fitted = true

	return nil
}

// Predict implements Model.
func (m *MSCCA) Predict(x []signal.Trial) ([]int, error) {
	scores, err := m.PredictScores(x)
	if err != nil {
		return nil, err
	}

	return decide(scores), nil
}

// PredictScores returns the fused signed-square scores of every trial.
func (m *MSCCA) PredictScores(x []signal.Trial) ([][]float64, error) {
	if !m.fitted {
		return nil, ccaErrorf(opMSCCAPredict, ErrNotFitted)
	}
	bands, err := validateTrials(x)
	if err != nil {
		return nil, ccaErrorf(opMSCCAPredict, err)
	}
	if bands != m.bands {
		return nil, ccaErrorf(opMSCCAPredict, ErrBandMismatch)
	}
	w, err := m.weightsFor(bands)
	if err != nil {
		return nil, ccaErrorf(opMSCCAPredict, err)
	}

	uu := Filters{U: m.filters.U, V: m.filters.U}
	out, err := parallel.Map(len(x), func(i int) ([]float64, error) {
		r1, err := CanoncorrCorrWithUV(x[i], m.ref, m.filters)
		if err != nil {
			return nil, err
		}
		r2, err := CanoncorrCorrWithUV(x[i], m.tmpl, uu)
		if err != nil {
			return nil, err
		}
		return signedSquareSum(w, r1, r2), nil
	}, m.pool)
	if err != nil {
		return nil, ccaErrorf(opMSCCAPredict, err)
	}

	return out, nil
}

// Filters returns a copy of the learned filters, [band][class].
func (m *MSCCA) Filters() Filters { return m.filters.Clone() }

// Clone implements Model.
func (m *MSCCA) Clone() Model {
	return &MSCCA{
		base:    m.base.clone(),
		ref:     cloneMultibands(m.ref),
		tmpl:    cloneMultibands(m.tmpl),
		bands:   m.bands,
		filters: m.filters.Clone(),
	}
}
