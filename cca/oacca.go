// SPDX-License-Identifier: MIT
// Package cca: online adaptive CCA (OACCA).
//
// OACCA scores a stream of trials one at a time and adapts after every
// decision. For trial X and band k:
//
//  1. r_cca: QR-based CCA against every reference with forced filters,
//     giving U_cca, V_cca. The instantaneous decision is the arg-max of the
//     band-weighted signed squares of r_cca.
//  2. r_ms:  corr(U_msᵀ·X, V_msᵀ·Y_i) with the multi-stimulus pair, once one
//     exists.
//  3. r_pf:  corr(U0ᵀ·X, V_cca,iᵀ·Y_i) with the prototype filter U0, once one
//     exists.
//  4. The blended decision is the arg-max of the signed-square sum over the
//     available terms.
//  5. Only when both decisions agree: S0 += Σ_c u_c·u_cᵀ/‖u_c‖² over the
//     columns of U_cca of the decided class, and U0 becomes the leading
//     eigenvectors of S0. On disagreement U0 and S0 are left untouched.
//  6. For the blended class p, with X and Y_p mean-removed per row:
//     Cxx += X·Xᵀ, Cyy += Y_p·Y_pᵀ, Cxy += X·Y_pᵀ and
//     [0 Cxy; Cyx 0]·w = λ·[Cxx 0; 0 Cyy]·w gives U_ms (first rows of w) and
//     V_ms (last rows). Trivial eigenvectors (all entries of one sign and
//     magnitude) are skipped; if too few remain the previous pair is kept.
//
// Trials are processed strictly in order; the per-band work of steps 5 and 6
// runs on the worker pool. Steps 5 and 6 update a copy of the band state that
// replaces the model's only when both succeed, so a failed Step leaves the
// model as it was. Imaginary eigen residue and degenerate solutions
// are logged as warnings and never returned as errors.

package cca

import (
	"github.com/katalvlaran/ssvepcca/internal/parallel"
	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// trivialTol is the relative tolerance of linalg.IsTrivial for the
// multi-stimulus eigenvectors.
const trivialTol = 1e-8

// StepResult reports one OACCA iteration.
type StepResult struct {
	Instant int       // decision from r_cca alone
	Blended int       // decision from every available term; the prediction
	Updated bool      // whether the prototype filter was updated
	Scores  []float64 // blended per-class scores
}

// oaccaBand is the adaptive state of one filter-bank band.
type oaccaBand struct {
	s0  *mat.Dense // channels×channels
	u0  *mat.Dense // channels×n, nil before the first agreement
	cxx *mat.Dense // channels×channels
	cyy *mat.Dense // rows×rows
	cxy *mat.Dense // channels×rows
	msU *mat.Dense // channels×n, nil until solved
	msV *mat.Dense // rows×n
}

func (b oaccaBand) clone() oaccaBand {
	return oaccaBand{
		s0: copyOrNil(b.s0), u0: copyOrNil(b.u0),
		cxx: copyOrNil(b.cxx), cyy: copyOrNil(b.cyy), cxy: copyOrNil(b.cxy),
		msU: copyOrNil(b.msU), msV: copyOrNil(b.msV),
	}
}

func cloneBands(in []oaccaBand) []oaccaBand {
	if in == nil {
		return nil
	}
	out := make([]oaccaBand, len(in))
	for k := range in {
		out[k] = in[k].clone()
	}

	return out
}

func copyOrNil(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.DenseCopyOf(m)
}

// OACCA is the online adaptive CCA recognizer.
type OACCA struct {
	base
	ref      []SignalQR
	channels int
	bands    []oaccaBand // nil until the first trial fixes the layout
	trials   int
}

// NewOACCA builds an OACCA model.
func NewOACCA(opts ...Option) *OACCA {
	return &OACCA{base: newBase("OACCA", opts)}
}

// Fit decomposes the references and resets the adaptive state. When labeled
// trials are given, the multi-stimulus covariances are warm-started with the
// true labels and U_ms/V_ms solved once; the prototype filter always starts
// empty.
//
// Errors: ErrComponents for zero components, ErrMissingReference;
// ErrMissingLabels when X is given without Y,
// ErrMissingTrials for Y without X, ErrLabelCount, ErrBandMismatch.
func (m *OACCA) Fit(_ []float64, x []signal.Trial, y []int, refSig []*mat.Dense) error {
	if m.opts.components < 1 {
		return ccaErrorf(opOACCAFit, ErrComponents)
	}
	if err := validateReferences(refSig); err != nil {
		return ccaErrorf(opOACCAFit, err)
	}
	ref, err := DecomposeSignals(signal.SharedList(refSig))
	if err != nil {
		return ccaErrorf(opOACCAFit, err)
	}

	var (
		bands    []oaccaBand
		channels int
	)
	switch {
	case len(x) == 0 && len(y) == 0:
	case len(y) == 0:
		return ccaErrorf(opOACCAFit, ErrMissingLabels)
	default:
		if err := validateLabeled(x, y, len(refSig)); err != nil {
			return ccaErrorf(opOACCAFit, err)
		}
		for j, t := range x {
			if bands, channels, err = stateFor(ref, bands, channels, t); err != nil {
				return ccaErrorf(opOACCAFit, err)
			}
			if err := m.accumulate(ref, bands, t, y[j]); err != nil {
				return ccaErrorf(opOACCAFit, err)
			}
		}
		if err := m.solveMultiStimulus(bands); err != nil {
			return ccaErrorf(opOACCAFit, err)
		}
	}
	m.ref, m.bands, m.channels, m.trials = ref, bands, channels, 0
	m.fitted = true

	return nil
}

// Predict runs Step over x in order and returns the blended decisions.
func (m *OACCA) Predict(x []signal.Trial) ([]int, error) {
	if !m.fitted {
		return nil, ccaErrorf(opOACCAPredict, ErrNotFitted)
	}
	out := make([]int, len(x))
	for i, t := range x {
		res, err := m.Step(t)
		if err != nil {
			return nil, ccaErrorf(opOACCAPredict, err)
		}
		out[i] = res.Blended
	}

	return out, nil
}

// Step scores one trial and adapts the state.
func (m *OACCA) Step(x signal.Trial) (StepResult, error) {
	if !m.fitted {
		return StepResult{}, ccaErrorf(opOACCAStep, ErrNotFitted)
	}
	bands, channels, err := stateFor(m.ref, cloneBands(m.bands), m.channels, x)
	if err != nil {
		return StepResult{}, ccaErrorf(opOACCAStep, err)
	}
	w, err := m.weightsFor(x.Bands())
	if err != nil {
		return StepResult{}, ccaErrorf(opOACCAStep, err)
	}
	n := m.opts.components
	classes := len(m.ref)

	rCCA, fCCA, err := QRCorr(x, m.ref, n, true)
	if err != nil {
		return StepResult{}, ccaErrorf(opOACCAStep, err)
	}
	instant := argmax(signedSquareSum(w, rCCA))

	terms := []*mat.Dense{rCCA}
	if bands[0].msU != nil {
		ms := NewFilters(len(bands), classes)
		for k, b := range bands {
			for i := 0; i < classes; i++ {
				ms.U[k][i], ms.V[k][i] = b.msU, b.msV
			}
		}
		rMS, err := QRCorrWithUV(x, m.ref, ms)
		if err != nil {
			return StepResult{}, ccaErrorf(opOACCAStep, err)
		}
		terms = append(terms, rMS)
	}
	if bands[0].u0 != nil {
		pf := NewFilters(len(bands), classes)
		for k, b := range bands {
			for i := 0; i < classes; i++ {
				pf.U[k][i], pf.V[k][i] = b.u0, fCCA.V[k][i]
			}
		}
		rPF, err := QRCorrWithUV(x, m.ref, pf)
		if err != nil {
			return StepResult{}, ccaErrorf(opOACCAStep, err)
		}
		terms = append(terms, rPF)
	}
	scores := signedSquareSum(w, terms...)
	blended := argmax(scores)

	res := StepResult{Instant: instant, Blended: blended, Scores: scores}
	if instant == blended {
		if err := m.updatePrototype(bands, fCCA, blended); err != nil {
			return StepResult{}, ccaErrorf(opOACCAStep, err)
		}
		res.Updated = true
	}
	if err := m.accumulate(m.ref, bands, x, blended); err != nil {
		return StepResult{}, ccaErrorf(opOACCAStep, err)
	}
	if err := m.solveMultiStimulus(bands); err != nil {
		return StepResult{}, ccaErrorf(opOACCAStep, err)
	}
	m.bands, m.channels = bands, channels
	m.trials++

	return res, nil
}

// stateFor validates x against the band layout and returns the state to
// update: bands itself, or zeroed state sized from x and ref when bands is
// nil.
func stateFor(ref []SignalQR, bands []oaccaBand, channels int, x signal.Trial) ([]oaccaBand, int, error) {
	if err := x.Validate(); err != nil {
		return nil, 0, err
	}
	ch, _ := x.Dims()
	if bands != nil {
		if x.Bands() != len(bands) || ch != channels {
			return nil, 0, ErrBandMismatch
		}
		return bands, channels, nil
	}

	rows := ref[0].Rows()
	bands = make([]oaccaBand, x.Bands())
	for k := range bands {
		bands[k] = oaccaBand{
			s0:  mat.NewDense(ch, ch, nil),
			cxx: mat.NewDense(ch, ch, nil),
			cyy: mat.NewDense(rows, rows, nil),
			cxy: mat.NewDense(ch, rows, nil),
		}
	}

	return bands, ch, nil
}

// updatePrototype folds the normalized filter columns of class p into S0
// and refreshes U0, band by band.
func (m *OACCA) updatePrototype(bands []oaccaBand, f Filters, p int) error {
	n := m.opts.components

	return parallel.For(len(bands), func(k int) error {
		b := &bands[k]
		u := f.U[k][p]
		ch, cols := u.Dims()
		col := make([]float64, ch)
		for c := 0; c < cols; c++ {
			mat.Col(col, c, u)
			v := mat.NewVecDense(ch, col)
			nrm2 := mat.Dot(v, v)
			if nrm2 == 0 {
				continue
			}
			var outer mat.Dense
			outer.Outer(1/nrm2, v, v)
			b.s0.Add(b.s0, &outer)
		}
		eig, err := linalg.TopEigenvectors(b.s0, n)
		if err != nil {
			return err
		}
		if eig.Complex {
			m.logger().Warn("oacca: complex eigenvectors in prototype update, keeping real part",
				"band", k, "trial", m.trials)
		}
		b.u0 = eig.Vectors
		return nil
	}, m.pool)
}

// accumulate adds the covariance blocks of trial x against the reference of
// class p.
func (m *OACCA) accumulate(ref []SignalQR, bands []oaccaBand, x signal.Trial, p int) error {
	return parallel.For(len(bands), func(k int) error {
		b := &bands[k]
		_, yp, err := ref[p].Band(k)
		if err != nil {
			return err
		}
		xc, _ := linalg.CenterColumns(x[k].T())
		_, xl := x[k].Dims()
		if _, yl := yp.Dims(); yl != xl {
			return linalg.ErrDimensionMismatch
		}
		// xc and yc are samples×variables, so Xᵀ·X etc. give the blocks.
		var tmp mat.Dense
		tmp.Mul(xc.T(), xc)
		b.cxx.Add(b.cxx, &tmp)
		tmp.Reset()
		tmp.Mul(yp, yp.T())
		b.cyy.Add(b.cyy, &tmp)
		tmp.Reset()
		tmp.Mul(xc.T(), yp.T())
		b.cxy.Add(b.cxy, &tmp)
		return nil
	}, m.pool)
}

// solveMultiStimulus re-solves the generalized eigenproblem of every band.
func (m *OACCA) solveMultiStimulus(bands []oaccaBand) error {
	n := m.opts.components

	return parallel.For(len(bands), func(k int) error {
		b := &bands[k]
		ch, _ := b.cxx.Dims()
		rows, _ := b.cyy.Dims()
		size := ch + rows

		a := mat.NewDense(size, size, nil)
		a.Slice(0, ch, ch, size).(*mat.Dense).Copy(b.cxy)
		a.Slice(ch, size, 0, ch).(*mat.Dense).Copy(b.cxy.T())
		bb := mat.NewDense(size, size, nil)
		bb.Slice(0, ch, 0, ch).(*mat.Dense).Copy(b.cxx)
		bb.Slice(ch, size, ch, size).(*mat.Dense).Copy(b.cyy)

		eig, err := linalg.GeneralizedEigen(a, bb, size)
		if err != nil {
			return err
		}
		if eig.Complex {
			m.logger().Warn("oacca: complex eigenvectors in multi-stimulus update, keeping real part",
				"band", k, "trial", m.trials)
		}

		picked := make([]int, 0, n)
		col := make([]float64, size)
		for j := 0; j < size && len(picked) < n; j++ {
			mat.Col(col, j, eig.Vectors)
			if linalg.IsTrivial(col, trivialTol) {
				continue
			}
			picked = append(picked, j)
		}
		if len(picked) < n {
			m.logger().Warn("oacca: degenerate multi-stimulus solution, keeping previous filters",
				"band", k, "trial", m.trials)
			return nil
		}

		u := mat.NewDense(ch, n, nil)
		v := mat.NewDense(rows, n, nil)
		for c, j := range picked {
			mat.Col(col, j, eig.Vectors)
			u.SetCol(c, col[:ch])
			v.SetCol(c, col[ch:])
		}
		b.msU, b.msV = u, v
		return nil
	}, m.pool)
}

// Trials returns how many trials Step has processed since Fit.
func (m *OACCA) Trials() int { return m.trials }

// Prototype returns a copy of the prototype filter U0 of band k, or nil
// before the first update.
func (m *OACCA) Prototype(k int) *mat.Dense {
	if k < 0 || k >= len(m.bands) {
		return nil
	}

	return copyOrNil(m.bands[k].u0)
}

// PrototypeCovariance returns a copy of S0 of band k, or nil before the
// state exists.
func (m *OACCA) PrototypeCovariance(k int) *mat.Dense {
	if k < 0 || k >= len(m.bands) {
		return nil
	}

	return copyOrNil(m.bands[k].s0)
}

// MultiStimulusFilters returns copies of U_ms and V_ms of band k, or nils
// before they are solved.
func (m *OACCA) MultiStimulusFilters(k int) (u, v *mat.Dense) {
	if k < 0 || k >= len(m.bands) {
		return nil, nil
	}

	return copyOrNil(m.bands[k].msU), copyOrNil(m.bands[k].msV)
}

// Clone implements Model.
func (m *OACCA) Clone() Model {
	out := &OACCA{
		base:     m.base.clone(),
		ref:      cloneSignalQRs(m.ref),
		channels: m.channels,
		trials:   m.trials,
	}
	out.bands = cloneBands(m.bands)

	return out
}
