// SPDX-License-Identifier: MIT
// Package signal: trials and multiband reference/template values.

package signal

import (
	"gonum.org/v1/gonum/mat"
)

// Trial is one EEG trial already split by the filter bank: element k is the
// channels×samples matrix of band k.
type Trial []*mat.Dense

// Bands returns the number of filter-bank bands.
func (t Trial) Bands() int { return len(t) }

// Dims returns channels and samples of the first band, or zeros for an empty
// trial.
func (t Trial) Dims() (channels, samples int) {
	if len(t) == 0 || t[0] == nil {
		return 0, 0
	}

	return t[0].Dims()
}

// Validate checks that every band is present, non-empty and shaped like the
// first one.
func (t Trial) Validate() error {
	if len(t) == 0 {
		return signalErrorf(opValidate, ErrEmptyTrial)
	}
	var r0, c0 int
	for k, band := range t {
		if band == nil || band.IsEmpty() {
			return signalErrorf(opValidate, ErrEmptyTrial)
		}
		r, c := band.Dims()
		if k == 0 {
			r0, c0 = r, c
			continue
		}
		if r != r0 || c != c0 {
			return signalErrorf(opValidate, ErrShape)
		}
	}

	return nil
}

// Clone returns a deep copy of t.
func (t Trial) Clone() Trial {
	if t == nil {
		return nil
	}
	out := make(Trial, len(t))
	for k, band := range t {
		if band != nil {
			out[k] = mat.DenseCopyOf(band)
		}
	}

	return out
}

// Multiband is the signal a trial is correlated against for one class. It is
// either shared (a sine-cosine reference used for every band) or per band (a
// template with one matrix per band). The zero value is neither and every
// accessor reports ErrUnknownSignal for it.
type Multiband struct {
	shared *mat.Dense
	bands  []*mat.Dense
}

// Shared wraps a single matrix that serves every band.
func Shared(m *mat.Dense) Multiband { return Multiband{shared: m} }

// PerBand wraps one matrix per band.
func PerBand(bands []*mat.Dense) Multiband { return Multiband{bands: bands} }

// SharedList wraps every reference matrix with Shared.
func SharedList(ms []*mat.Dense) []Multiband {
	out := make([]Multiband, len(ms))
	for i, m := range ms {
		out[i] = Shared(m)
	}

	return out
}

// TemplateList wraps every template trial with PerBand.
func TemplateList(ts []Trial) []Multiband {
	out := make([]Multiband, len(ts))
	for i, t := range ts {
		out[i] = PerBand(t)
	}

	return out
}

// IsShared reports whether m holds a single shared matrix.
func (m Multiband) IsShared() bool { return m.shared != nil }

// Valid reports whether m is either shared or has at least one band.
func (m Multiband) Valid() bool { return m.shared != nil || len(m.bands) > 0 }

// NumBands returns the number of stored bands; 0 for a shared value.
func (m Multiband) NumBands() int { return len(m.bands) }

// Band returns the matrix to use for filter-bank band k.
func (m Multiband) Band(k int) (*mat.Dense, error) {
	switch {
	case m.shared != nil:
		return m.shared, nil
	case k >= 0 && k < len(m.bands) && m.bands[k] != nil:
		return m.bands[k], nil
	default:
		return nil, signalErrorf(opBand, ErrUnknownSignal)
	}
}

// Rows returns the number of rows (harmonics or channels) of the signal.
func (m Multiband) Rows() int {
	d, err := m.Band(0)
	if err != nil {
		return 0
	}
	r, _ := d.Dims()

	return r
}

// Clone returns a deep copy of m.
func (m Multiband) Clone() Multiband {
	if m.shared != nil {
		return Shared(mat.DenseCopyOf(m.shared))
	}
	if m.bands == nil {
		return Multiband{}
	}

	return PerBand(Trial(m.bands).Clone())
}

// Concat joins parts along time (columns). All parts must share the layout,
// the row count and, for per-band values, the band count.
func Concat(parts []Multiband) (Multiband, error) {
	if len(parts) == 0 || !parts[0].Valid() {
		return Multiband{}, signalErrorf(opConcat, ErrUnknownSignal)
	}
	shared := parts[0].IsShared()
	nb := parts[0].NumBands()
	for _, p := range parts[1:] {
		if !p.Valid() || p.IsShared() != shared || p.NumBands() != nb {
			return Multiband{}, signalErrorf(opConcat, ErrUnknownSignal)
		}
		if p.Rows() != parts[0].Rows() {
			return Multiband{}, signalErrorf(opConcat, ErrShape)
		}
	}

	if shared {
		return Shared(augment(parts, 0)), nil
	}
	bands := make([]*mat.Dense, nb)
	for k := range bands {
		bands[k] = augment(parts, k)
	}

	return PerBand(bands), nil
}

// augment concatenates band k of every part horizontally. Parts are known to
// be valid for k.
func augment(parts []Multiband, k int) *mat.Dense {
	first, _ := parts[0].Band(k)
	out := mat.DenseCopyOf(first)
	for _, p := range parts[1:] {
		next, _ := p.Band(k)
		var joined mat.Dense
		joined.Augment(out, next)
		out = &joined
	}

	return out
}
