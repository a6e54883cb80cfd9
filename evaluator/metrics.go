// SPDX-License-Identifier: MIT
// Package evaluator: classification metrics.

package evaluator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Accuracy returns the fraction of positions where yPred equals yTrue.
//
// Errors: ErrEmpty, ErrLengthMismatch.
func Accuracy(yTrue, yPred []int) (float64, error) {
	if len(yTrue) == 0 {
		return 0, evaluatorErrorf(opAccuracy, ErrEmpty)
	}
	if len(yTrue) != len(yPred) {
		return 0, evaluatorErrorf(opAccuracy, ErrLengthMismatch)
	}
	hits := 0
	for i, y := range yTrue {
		if yPred[i] == y {
			hits++
		}
	}

	return float64(hits) / float64(len(yTrue)), nil
}

// ITR returns the Wolpaw information transfer rate in bits/min for n targets
// selected with accuracy acc. One selection takes
//
//	T = tw + tBreak + tLatency + tComp   (seconds)
//
// and carries
//
//	B = log2 n + acc·log2 acc + (1−acc)·log2((1−acc)/(n−1))
//
// bits. acc = 1 gives log2 n; acc below chance (1/n) gives 0.
//
// Errors: ErrBadParam for n < 2, acc ∉ [0, 1], a negative time or T ≤ 0.
func ITR(tw, tBreak, tLatency, tComp float64, n int, acc float64) (float64, error) {
	if n < 2 || math.IsNaN(acc) || acc < 0 || acc > 1 {
		return 0, evaluatorErrorf(opITR, ErrBadParam)
	}
	for _, v := range []float64{tw, tBreak, tLatency, tComp} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, evaluatorErrorf(opITR, ErrBadParam)
		}
	}
	total := tw + tBreak + tLatency + tComp
	if total <= 0 {
		return 0, evaluatorErrorf(opITR, ErrBadParam)
	}

	nf := float64(n)
	var bits float64
	switch {
	case acc == 1:
		bits = math.Log2(nf)
	case acc < 1/nf:
		return 0, nil
	default:
		bits = math.Log2(nf) + acc*math.Log2(acc) + (1-acc)*math.Log2((1-acc)/(nf-1))
	}

	return 60 / total * bits, nil
}

// ConfusionMatrix counts predictions: entry (i, j) is the number of trials
// of true class i predicted as class j.
//
// Errors: ErrBadParam for classes < 1, ErrEmpty, ErrLengthMismatch,
// ErrLabelRange.
func ConfusionMatrix(yTrue, yPred []int, classes int) (*mat.Dense, error) {
	if classes < 1 {
		return nil, evaluatorErrorf(opConfusionMatrix, ErrBadParam)
	}
	if len(yTrue) == 0 {
		return nil, evaluatorErrorf(opConfusionMatrix, ErrEmpty)
	}
	if len(yTrue) != len(yPred) {
		return nil, evaluatorErrorf(opConfusionMatrix, ErrLengthMismatch)
	}
	cm := mat.NewDense(classes, classes, nil)
	for i, t := range yTrue {
		p := yPred[i]
		if t < 0 || t >= classes || p < 0 || p >= classes {
			return nil, evaluatorErrorf(opConfusionMatrix, ErrLabelRange)
		}
		cm.Set(t, p, cm.At(t, p)+1)
	}

	return cm, nil
}
