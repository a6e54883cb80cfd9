// SPDX-License-Identifier: MIT
// Package evaluator: summary statistics over repeated observations.

package evaluator

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrorKind selects how error bars are computed.
type ErrorKind int

const (
	// ErrorStd uses the population standard deviation.
	ErrorStd ErrorKind = iota
	// ErrorCI95 uses CI95.
	ErrorCI95
)

// String returns "std" or "ci95".
func (k ErrorKind) String() string {
	switch k {
	case ErrorStd:
		return "std"
	case ErrorCI95:
		return "ci95"
	default:
		return "unknown"
	}
}

// ParseErrorKind accepts "std" and "ci95" (also "95ci"), case-insensitively.
func ParseErrorKind(s string) (ErrorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "std":
		return ErrorStd, nil
	case "ci95", "95ci":
		return ErrorCI95, nil
	default:
		return 0, evaluatorErrorf(opParseErrorKind, ErrUnknownErrorKind)
	}
}

// MeanStd returns the mean and the population standard deviation of x.
func MeanStd(x []float64) (mean, std float64, err error) {
	if len(x) == 0 {
		return 0, 0, evaluatorErrorf(opMeanStd, ErrEmpty)
	}
	mean, variance := stat.PopMeanVariance(x, nil)

	return mean, math.Sqrt(variance), nil
}

// CI95 returns the confidence half-width SEM·t, with SEM the population
// standard deviation over √N and t the 0.95 quantile of Student's t with
// N−1 degrees of freedom.
//
// Errors: ErrTooFew when len(x) < 2.
func CI95(x []float64) (float64, error) {
	n := len(x)
	if n < 2 {
		return 0, evaluatorErrorf(opCI95, ErrTooFew)
	}
	_, std, err := MeanStd(x)
	if err != nil {
		return 0, evaluatorErrorf(opCI95, err)
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(0.95)

	return std / math.Sqrt(float64(n)) * t, nil
}

// ColumnStats returns the per-column mean and error of an observations ×
// variables table. Rows must share one length.
//
// Errors: ErrEmpty, ErrLengthMismatch, ErrTooFew (ErrorCI95 with one row),
// ErrUnknownErrorKind.
func ColumnStats(obs [][]float64, kind ErrorKind) (means, errs []float64, err error) {
	if len(obs) == 0 || len(obs[0]) == 0 {
		return nil, nil, evaluatorErrorf(opColumnStats, ErrEmpty)
	}
	if kind != ErrorStd && kind != ErrorCI95 {
		return nil, nil, evaluatorErrorf(opColumnStats, ErrUnknownErrorKind)
	}
	vars := len(obs[0])
	for _, row := range obs {
		if len(row) != vars {
			return nil, nil, evaluatorErrorf(opColumnStats, ErrLengthMismatch)
		}
	}

	means = make([]float64, vars)
	errs = make([]float64, vars)
	col := make([]float64, len(obs))
	for j := 0; j < vars; j++ {
		for i, row := range obs {
			col[i] = row[j]
		}
		m, s, err := MeanStd(col)
		if err != nil {
			return nil, nil, evaluatorErrorf(opColumnStats, err)
		}
		means[j] = m
		if kind == ErrorStd {
			errs[j] = s
			continue
		}
		if errs[j], err = CI95(col); err != nil {
			return nil, nil, evaluatorErrorf(opColumnStats, err)
		}
	}

	return means, errs, nil
}
