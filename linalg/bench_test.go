// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssvepcca/linalg"
)

// benchmarkCanonCorr runs CanonCorr on an n×p EEG-like block against an n×q
// reference block.
func benchmarkCanonCorr(b *testing.B, n, p, q int, forceUV bool) {
	rng := rand.New(rand.NewSource(1))
	x := randDense(rng, n, p)
	y := randDense(rng, n, q)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linalg.CanonCorr(x, y, forceUV); err != nil {
			b.Fatalf("CanonCorr failed: %v", err)
		}
	}
}

// BenchmarkCanonCorr_ValuesOnly: 1 s at 250 Hz, 9 channels, 5 harmonics.
func BenchmarkCanonCorr_ValuesOnly(b *testing.B) { benchmarkCanonCorr(b, 250, 9, 10, false) }

// BenchmarkCanonCorr_WithFilters: same shape, coefficient matrices included.
func BenchmarkCanonCorr_WithFilters(b *testing.B) { benchmarkCanonCorr(b, 250, 9, 10, true) }

// BenchmarkQRRemoveMean: the per-trial cost the QR evaluators pay once.
func BenchmarkQRRemoveMean(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	x := randDense(rng, 250, 9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linalg.QRRemoveMean(x); err != nil {
			b.Fatalf("QRRemoveMean failed: %v", err)
		}
	}
}
