// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TestCanonCorr_RangeAndOrder: correlations lie in [0,1] and are sorted descending.
func TestCanonCorr_RangeAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for trial := 0; trial < 5; trial++ {
		x := randDense(rng, 120, 6)
		y := randDense(rng, 120, 4)
		res, err := linalg.CanonCorr(x, y, false)
		require.NoError(t, err)
		require.Len(t, res.R, 4)
		for i, r := range res.R {
			assert.GreaterOrEqual(t, r, 0.0)
			assert.LessOrEqual(t, r, 1.0)
			if i > 0 {
				assert.GreaterOrEqual(t, res.R[i-1], r, "descending order")
			}
		}
		assert.Nil(t, res.A)
		assert.Nil(t, res.B)
	}
}

// TestCanonCorr_OrthonormalInvariance: rotating the columns of X and Y by
// orthonormal matrices leaves the canonical correlations unchanged.
func TestCanonCorr_OrthonormalInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x := randDense(rng, 200, 5)
	y := randDense(rng, 200, 3)
	// Inject shared structure so the leading correlation is far from zero.
	for i := 0; i < 200; i++ {
		y.Set(i, 0, y.At(i, 0)+2*x.At(i, 1))
	}

	base, err := linalg.CanonCorr(x, y, false)
	require.NoError(t, err)

	var xr, yr mat.Dense
	xr.Mul(x, randOrthogonal(rng, 5))
	yr.Mul(y, randOrthogonal(rng, 3))
	rot, err := linalg.CanonCorr(&xr, &yr, false)
	require.NoError(t, err)

	assert.InDeltaSlice(t, base.R, rot.R, 1e-10)
}

// TestCanonCorr_Filters: the first canonical variates correlate at R[0] and
// have unit variance, as in MATLAB canoncorr.
func TestCanonCorr_Filters(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	n := 150
	x := randDense(rng, n, 4)
	y := randDense(rng, n, 2)
	for i := 0; i < n; i++ {
		y.Set(i, 1, y.At(i, 1)+x.At(i, 0)-x.At(i, 3))
	}

	res, err := linalg.CanonCorr(x, y, true)
	require.NoError(t, err)
	ar, ac := res.A.Dims()
	br, bc := res.B.Dims()
	assert.Equal(t, 4, ar)
	assert.Equal(t, 2, br)
	assert.Equal(t, ac, bc, "A and B share the component count")

	var u, v mat.Dense
	u.Mul(centered(x), res.A.ColView(0))
	v.Mul(centered(y), res.B.ColView(0))
	uc := mat.Col(nil, 0, &u)
	vc := mat.Col(nil, 0, &v)

	assert.InDelta(t, res.R[0], stat.Correlation(uc, vc, nil), 1e-9)
	assert.InDelta(t, 1.0, stat.Variance(uc, nil), 1e-9)
	assert.InDelta(t, 1.0, stat.Variance(vc, nil), 1e-9)

	plain, err := linalg.CanonCorr(x, y, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, plain.R, res.R, 1e-12, "forceUV must not change correlations")
}

// TestCanonCorr_RankDeficient: identical columns collapse to rank one; the
// single filter still yields a positively correlated variate and the
// coefficient widths keep their full-rank shape with zero padding.
func TestCanonCorr_RankDeficient(t *testing.T) {
	n := 250
	x := mat.NewDense(n, 4, nil)
	y := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		s := math.Sin(2 * math.Pi * 10 * float64(i) / 250)
		for j := 0; j < 4; j++ {
			x.Set(i, j, s)
		}
		y.Set(i, 0, math.Sin(2*math.Pi*10*float64(i)/250+0.4))
		y.Set(i, 1, math.Cos(2*math.Pi*10*float64(i)/250+0.4))
	}

	res, err := linalg.CanonCorr(x, y, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.R[0], 1e-9)
	ar, ac := res.A.Dims()
	assert.Equal(t, []int{4, 2}, []int{ar, ac}, "min(K1, K2) columns")
	br, bc := res.B.Dims()
	assert.Equal(t, []int{2, 2}, []int{br, bc})
	for i := 0; i < ar; i++ {
		assert.Zero(t, res.A.At(i, 1), "dropped direction is zero")
	}

	var u, v mat.Dense
	u.Mul(centered(x), res.A.ColView(0))
	v.Mul(centered(y), res.B.ColView(0))
	r := stat.Correlation(mat.Col(nil, 0, &u), mat.Col(nil, 0, &v), nil)
	assert.InDelta(t, 1.0, r, 1e-9)
}

// TestCanonCorr_Identical: a signal is perfectly correlated with itself.
func TestCanonCorr_Identical(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	x := randDense(rng, 80, 3)
	res, err := linalg.CanonCorr(x, x, false)
	require.NoError(t, err)
	for _, r := range res.R {
		assert.InDelta(t, 1.0, r, 1e-12)
	}
}

// TestCanonCorr_Errors covers shape and numeric policy violations.
func TestCanonCorr_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	_, err := linalg.CanonCorr(randDense(rng, 10, 2), randDense(rng, 11, 2), false)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.CanonCorr(nil, randDense(rng, 10, 2), false)
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)

	bad := randDense(rng, 10, 2)
	bad.Set(3, 1, math.Inf(1))
	_, err = linalg.CanonCorr(randDense(rng, 10, 2), bad, true)
	assert.ErrorIs(t, err, linalg.ErrNaNInf)
}

// TestCanonCorrQR_MatchesCanonCorr: the precomputed-QR entry point is the same
// computation.
func TestCanonCorrQR_MatchesCanonCorr(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	x := randDense(rng, 60, 3)
	y := randDense(rng, 60, 4)
	qx, err := linalg.QRRemoveMean(x)
	require.NoError(t, err)
	qy, err := linalg.QRRemoveMean(y)
	require.NoError(t, err)

	viaQR, err := linalg.CanonCorrQR(qx, qy, 60, true)
	require.NoError(t, err)
	direct, err := linalg.CanonCorr(x, y, true)
	require.NoError(t, err)

	assert.InDeltaSlice(t, direct.R, viaQR.R, 1e-14)
	requireDenseClose(t, direct.A, viaQR.A, 1e-12, "A")
	requireDenseClose(t, direct.B, viaQR.B, 1e-12, "B")

	_, err = linalg.CanonCorrQR(qx, linalg.QR{Q: mat.NewDense(5, 1, nil)}, 60, false)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestPearson covers the happy path and argument checks.
func TestPearson(t *testing.T) {
	r, err := linalg.Pearson([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, tol)

	r, err = linalg.Pearson([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, tol)

	_, err = linalg.Pearson([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.Pearson(nil, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)
	_, err = linalg.Pearson([]float64{}, []float64{})
	assert.ErrorIs(t, err, linalg.ErrEmpty)
}

// TestProjectionCorr flattens d×n projections row by row before correlating.
func TestProjectionCorr(t *testing.T) {
	x := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		0, 0, 0, 0,
	})
	y := mat.NewDense(1, 4, []float64{2, 4, 6, 8})
	u := mat.NewDense(2, 1, []float64{1, 5})
	v := mat.NewDense(1, 1, []float64{-1})
	r, err := linalg.ProjectionCorr(x, y, u, v)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, tol)

	_, err = linalg.ProjectionCorr(x, y, mat.NewDense(3, 1, nil), v)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
