// SPDX-License-Identifier: MIT
// Package cca: correlation evaluators.
//
// Every evaluator scores one trial against one signal per class and returns
// a bands×classes matrix R. For band k and class i it projects the trial band
// X_k (channels×samples) through U and the class signal Y (rows×samples)
// through V, flattens both projections row by row and stores their Pearson
// correlation in R[k,i].
//
// Two families:
//   - CanoncorrCorr / QRCorr learn U and V for every (band, class) from the
//     trial itself. With zero components and no forced filters they skip the
//     projection and store the leading canonical correlation instead.
//   - CanoncorrCorrWithUV / QRCorrWithUV apply stored filters.
//
// The QR variants take SignalQR values built once by DecomposeSignals and
// correlate against the cached mean-removed signal.

package cca

import (
	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// Filters holds one spatial filter U (channels×n) and one weight matrix V
// (rows×n) per band and class, indexed [band][class].
type Filters struct {
	U [][]*mat.Dense
	V [][]*mat.Dense
}

// NewFilters allocates an empty bands×classes layout.
func NewFilters(bands, classes int) Filters {
	f := Filters{U: make([][]*mat.Dense, bands), V: make([][]*mat.Dense, bands)}
	for k := 0; k < bands; k++ {
		f.U[k] = make([]*mat.Dense, classes)
		f.V[k] = make([]*mat.Dense, classes)
	}

	return f
}

// Empty reports whether f holds no filters.
func (f Filters) Empty() bool { return len(f.U) == 0 }

// Clone returns a deep copy.
func (f Filters) Clone() Filters {
	if f.Empty() {
		return Filters{}
	}

	return Filters{U: cloneGrid(f.U), V: cloneGrid(f.V)}
}

// check verifies a complete bands×classes layout.
func (f Filters) check(bands, classes int) error {
	if len(f.U) != bands || len(f.V) != bands {
		return ErrFiltersShape
	}
	for k := 0; k < bands; k++ {
		if len(f.U[k]) != classes || len(f.V[k]) != classes {
			return ErrFiltersShape
		}
		for i := 0; i < classes; i++ {
			if f.U[k][i] == nil || f.V[k][i] == nil {
				return ErrFiltersShape
			}
		}
	}

	return nil
}

func cloneGrid(g [][]*mat.Dense) [][]*mat.Dense {
	out := make([][]*mat.Dense, len(g))
	for k := range g {
		out[k] = make([]*mat.Dense, len(g[k]))
		for i, m := range g[k] {
			if m != nil {
				out[k][i] = mat.DenseCopyOf(m)
			}
		}
	}

	return out
}

func cloneFiltersList(in []Filters) []Filters {
	if in == nil {
		return nil
	}
	out := make([]Filters, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// CanoncorrCorr scores trial x against the class signals y, running a full
// canonical correlation for every band and class.
//
// Inputs:
//   - nComponent: filter columns kept; 0 selects the score-only path unless
//     forceUV is set.
//   - forceUV: always compute filters.
//
// Returns:
//   - R (bands×classes) and, unless on the score-only path, the filters used.
//
// Errors:
//   - ErrComponents when nComponent is 0 with forceUV, or exceeds what the
//     data supports (min(channels, rows)).
//   - signal.ErrEmptyTrial / ErrShape, signal.ErrUnknownSignal,
//     linalg.ErrDimensionMismatch when sample counts differ.
func CanoncorrCorr(x signal.Trial, y []signal.Multiband, nComponent int, forceUV bool) (*mat.Dense, Filters, error) {
	if err := x.Validate(); err != nil {
		return nil, Filters{}, ccaErrorf(opCanoncorrCorr, err)
	}
	bands, classes := x.Bands(), len(y)
	if classes == 0 {
		return nil, Filters{}, ccaErrorf(opCanoncorrCorr, ErrMissingReference)
	}
	scoreOnly := nComponent == 0 && !forceUV
	if nComponent == 0 && forceUV {
		return nil, Filters{}, ccaErrorf(opCanoncorrCorr, ErrComponents)
	}

	r := mat.NewDense(bands, classes, nil)
	var f Filters
	if !scoreOnly {
		f = NewFilters(bands, classes)
	}
	for k := 0; k < bands; k++ {
		xk := x[k]
		for i := 0; i < classes; i++ {
			yk, err := y[i].Band(k)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opCanoncorrCorr, err)
			}
			can, err := linalg.CanonCorr(xk.T(), yk.T(), !scoreOnly)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opCanoncorrCorr, err)
			}
			if scoreOnly {
				r.Set(k, i, can.R[0])
				continue
			}
			u, v, err := leadingFilters(can, nComponent)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opCanoncorrCorr, err)
			}
			rv, err := linalg.ProjectionCorr(xk, yk, u, v)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opCanoncorrCorr, err)
			}
			r.Set(k, i, rv)
			f.U[k][i], f.V[k][i] = u, v
		}
	}

	return r, f, nil
}

// CanoncorrCorrWithUV scores trial x against y with stored filters f.
func CanoncorrCorrWithUV(x signal.Trial, y []signal.Multiband, f Filters) (*mat.Dense, error) {
	if err := x.Validate(); err != nil {
		return nil, ccaErrorf(opCanoncorrCorrWithUV, err)
	}
	bands, classes := x.Bands(), len(y)
	if classes == 0 {
		return nil, ccaErrorf(opCanoncorrCorrWithUV, ErrMissingReference)
	}
	if err := f.check(bands, classes); err != nil {
		return nil, ccaErrorf(opCanoncorrCorrWithUV, err)
	}

	r := mat.NewDense(bands, classes, nil)
	for k := 0; k < bands; k++ {
		for i := 0; i < classes; i++ {
			yk, err := y[i].Band(k)
			if err != nil {
				return nil, ccaErrorf(opCanoncorrCorrWithUV, err)
			}
			rv, err := linalg.ProjectionCorr(x[k], yk, f.U[k][i], f.V[k][i])
			if err != nil {
				return nil, ccaErrorf(opCanoncorrCorrWithUV, err)
			}
			r.Set(k, i, rv)
		}
	}

	return r, nil
}

// QRCorr is CanoncorrCorr on precomputed signal decompositions: only the
// trial band is factored per call.
func QRCorr(x signal.Trial, y []SignalQR, nComponent int, forceUV bool) (*mat.Dense, Filters, error) {
	if err := x.Validate(); err != nil {
		return nil, Filters{}, ccaErrorf(opQRCorr, err)
	}
	bands, classes := x.Bands(), len(y)
	if classes == 0 {
		return nil, Filters{}, ccaErrorf(opQRCorr, ErrMissingReference)
	}
	scoreOnly := nComponent == 0 && !forceUV
	if nComponent == 0 && forceUV {
		return nil, Filters{}, ccaErrorf(opQRCorr, ErrComponents)
	}

	r := mat.NewDense(bands, classes, nil)
	var f Filters
	if !scoreOnly {
		f = NewFilters(bands, classes)
	}
	for k := 0; k < bands; k++ {
		xk := x[k]
		_, samples := xk.Dims()
		xqr, err := linalg.QRRemoveMean(xk.T())
		if err != nil {
			return nil, Filters{}, ccaErrorf(opQRCorr, err)
		}
		for i := 0; i < classes; i++ {
			yqr, yc, err := y[i].Band(k)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opQRCorr, err)
			}
			can, err := linalg.CanonCorrQR(xqr, yqr, samples, !scoreOnly)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opQRCorr, err)
			}
			if scoreOnly {
				r.Set(k, i, can.R[0])
				continue
			}
			u, v, err := leadingFilters(can, nComponent)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opQRCorr, err)
			}
			rv, err := linalg.ProjectionCorr(xk, yc, u, v)
			if err != nil {
				return nil, Filters{}, ccaErrorf(opQRCorr, err)
			}
			r.Set(k, i, rv)
			f.U[k][i], f.V[k][i] = u, v
		}
	}

	return r, f, nil
}

// QRCorrWithUV scores trial x against the cached mean-removed signals of y
// with stored filters f.
func QRCorrWithUV(x signal.Trial, y []SignalQR, f Filters) (*mat.Dense, error) {
	if err := x.Validate(); err != nil {
		return nil, ccaErrorf(opQRCorrWithUV, err)
	}
	bands, classes := x.Bands(), len(y)
	if classes == 0 {
		return nil, ccaErrorf(opQRCorrWithUV, ErrMissingReference)
	}
	if err := f.check(bands, classes); err != nil {
		return nil, ccaErrorf(opQRCorrWithUV, err)
	}

	r := mat.NewDense(bands, classes, nil)
	for k := 0; k < bands; k++ {
		for i := 0; i < classes; i++ {
			_, yc, err := y[i].Band(k)
			if err != nil {
				return nil, ccaErrorf(opQRCorrWithUV, err)
			}
			rv, err := linalg.ProjectionCorr(x[k], yc, f.U[k][i], f.V[k][i])
			if err != nil {
				return nil, ccaErrorf(opQRCorrWithUV, err)
			}
			r.Set(k, i, rv)
		}
	}

	return r, nil
}

// leadingFilters copies the first n columns of A and B.
func leadingFilters(can linalg.Canonical, n int) (u, v *mat.Dense, err error) {
	ar, ac := can.A.Dims()
	br, bc := can.B.Dims()
	if n < 1 || n > ac || n > bc {
		return nil, nil, ErrComponents
	}

	return mat.DenseCopyOf(can.A.Slice(0, ar, 0, n)), mat.DenseCopyOf(can.B.Slice(0, br, 0, n)), nil
}
