// SPDX-License-Identifier: MIT
// Package signal: class templates.

package signal

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// GenTemplate averages the trials of every class into a template.
//
// Classes are the distinct labels of y in ascending order; templates[i] is the
// mean trial of classes[i]. All trials must share the band count and the
// per-band shape.
//
// Errors:
//   - ErrEmptyTrial for no trials or an invalid trial.
//   - ErrLabelCount when len(y) != len(x).
//   - ErrShape when trials disagree in shape.
//
// Complexity: O(T·B·C·L) for T trials of B bands, C channels, L samples.
func GenTemplate(x []Trial, y []int) (templates []Trial, classes []int, err error) {
	if len(x) == 0 {
		return nil, nil, signalErrorf(opGenTemplate, ErrEmptyTrial)
	}
	if len(y) != len(x) {
		return nil, nil, signalErrorf(opGenTemplate, ErrLabelCount)
	}
	if err = x[0].Validate(); err != nil {
		return nil, nil, signalErrorf(opGenTemplate, err)
	}
	nb := x[0].Bands()
	ch, n := x[0].Dims()
	for _, t := range x[1:] {
		if err = t.Validate(); err != nil {
			return nil, nil, signalErrorf(opGenTemplate, err)
		}
		c, l := t.Dims()
		if t.Bands() != nb || c != ch || l != n {
			return nil, nil, signalErrorf(opGenTemplate, ErrShape)
		}
	}

	index := make(map[int]int)
	for _, label := range y {
		if _, ok := index[label]; !ok {
			index[label] = len(classes)
			classes = append(classes, label)
		}
	}
	sort.Ints(classes)
	for i, label := range classes {
		index[label] = i
	}

	templates = make([]Trial, len(classes))
	counts := make([]float64, len(classes))
	for i := range templates {
		templates[i] = make(Trial, nb)
		for k := range templates[i] {
			templates[i][k] = mat.NewDense(ch, n, nil)
		}
	}
	for j, t := range x {
		c := index[y[j]]
		counts[c]++
		for k, band := range t {
			templates[c][k].Add(templates[c][k], band)
		}
	}
	for c := range templates {
		for k := range templates[c] {
			templates[c][k].Scale(1/counts[c], templates[c][k])
		}
	}

	return templates, classes, nil
}
