// SPDX-License-Identifier: MIT

// Package plot draws experiment summaries with gonum.org/v1/plot.
//
// Every builder takes plain numbers (observations, means, confusion counts)
// and returns a *plot.Plot from gonum that callers may decorate further
// before calling Save. Nothing here feeds back into recognition.
//
//   - Hist            density histograms with an optional fitted normal curve.
//   - Bar             mean bars per variable.
//   - BarWithErrorbar grouped mean bars with std or CI95 error bars.
//   - ShadowLine      mean lines with a shaded error band.
//   - ConfusionHeatMap a confusion matrix as a heat map.
package plot
