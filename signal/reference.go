// SPDX-License-Identifier: MIT
// Package signal: sine-cosine reference signals and frequency ordering.
//
// A reference for stimulus frequency f with initial phase φ and H harmonics is
// the 2H×L matrix
//
//	row 2(h−1)   : sin(2π·h·f·t + h·φ)
//	row 2(h−1)+1 : cos(2π·h·f·t + h·φ)      t = i / srate, i = 0..L−1
//
// for h = 1..H.

package signal

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const tau = 2.0 * math.Pi

// Reference builds the sine-cosine reference of one stimulus.
//
// Errors: ErrBadParam when freq, srate, length or harmonics is not positive.
//
// Complexity: O(harmonics·length).
func Reference(freq, phase, srate float64, length, harmonics int) (*mat.Dense, error) {
	if freq <= 0 || srate <= 0 || length < 1 || harmonics < 1 {
		return nil, signalErrorf(opReference, ErrBadParam)
	}
	out := mat.NewDense(2*harmonics, length, nil)
	for h := 1; h <= harmonics; h++ {
		hf := float64(h)
		for i := 0; i < length; i++ {
			theta := tau*hf*freq*float64(i)/srate + hf*phase
			out.Set(2*(h-1), i, math.Sin(theta))
			out.Set(2*(h-1)+1, i, math.Cos(theta))
		}
	}

	return out, nil
}

// References builds one reference per stimulus. phases may be nil (all
// zero); otherwise it must match freqs in length.
func References(freqs, phases []float64, srate float64, length, harmonics int) ([]*mat.Dense, error) {
	if len(freqs) == 0 {
		return nil, signalErrorf(opReferences, ErrBadParam)
	}
	if phases != nil && len(phases) != len(freqs) {
		return nil, signalErrorf(opReferences, ErrShape)
	}
	out := make([]*mat.Dense, len(freqs))
	for i, f := range freqs {
		var phi float64
		if phases != nil {
			phi = phases[i]
		}
		ref, err := Reference(f, phi, srate, length, harmonics)
		if err != nil {
			return nil, signalErrorf(opReferences, err)
		}
		out[i] = ref
	}

	return out, nil
}

// SortFreqs returns freqs in ascending order together with two permutations:
// order[i] is the original index of the i-th smallest frequency and
// inverse[j] is the sorted position of original entry j. Ties keep their
// input order.
func SortFreqs(freqs []float64) (sorted []float64, order, inverse []int) {
	n := len(freqs)
	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return freqs[order[a]] < freqs[order[b]] })

	sorted = make([]float64, n)
	inverse = make([]int, n)
	for pos, idx := range order {
		sorted[pos] = freqs[idx]
		inverse[idx] = pos
	}

	return sorted, order, inverse
}

// SuggestedFilterbankWeights returns w_k = k^-1.25 + 0.25 for k = 1..n, the
// usual weighting of filter-bank sub-bands. n < 1 yields nil.
func SuggestedFilterbankWeights(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for k := range out {
		out[k] = math.Pow(float64(k+1), -1.25) + 0.25
	}

	return out
}
