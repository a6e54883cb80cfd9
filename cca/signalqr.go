// SPDX-License-Identifier: MIT
// Package cca: fit-time QR cache of reference/template signals.

package cca

import (
	"github.com/katalvlaran/ssvepcca/linalg"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// SignalQR caches, for one class, the QR decomposition of its reference or
// template (samples × rows, mean removed) together with the mean-removed
// signal rebuilt from it (rows × samples). A shared reference holds a single
// entry used for every band; a template holds one entry per band.
type SignalQR struct {
	shared   bool
	qr       []linalg.QR
	centered []*mat.Dense
}

// DecomposeSignals decomposes every class signal once so that QRCorr and
// QRCorrWithUV can score trials without refactoring the signals.
//
// Errors: signal.ErrUnknownSignal for an invalid Multiband; linalg errors for
// non-finite input.
func DecomposeSignals(y []signal.Multiband) ([]SignalQR, error) {
	out := make([]SignalQR, len(y))
	for i, m := range y {
		if !m.Valid() {
			return nil, ccaErrorf(opDecomposeSignals, signal.ErrUnknownSignal)
		}
		var mats []*mat.Dense
		if m.IsShared() {
			s, _ := m.Band(0)
			mats = []*mat.Dense{s}
		} else {
			mats = make([]*mat.Dense, m.NumBands())
			for k := range mats {
				b, err := m.Band(k)
				if err != nil {
					return nil, ccaErrorf(opDecomposeSignals, err)
				}
				mats[k] = b
			}
		}
		qrs, err := linalg.QRList(mats)
		if err != nil {
			return nil, ccaErrorf(opDecomposeSignals, err)
		}
		inv := linalg.QRInverseBands(qrs)
		centered := make([]*mat.Dense, len(inv))
		for k, c := range inv {
			centered[k] = mat.DenseCopyOf(c.T())
		}
		out[i] = SignalQR{shared: m.IsShared(), qr: qrs, centered: centered}
	}

	return out, nil
}

// Band returns the decomposition and the mean-removed signal for band k.
func (s SignalQR) Band(k int) (linalg.QR, *mat.Dense, error) {
	if s.shared && len(s.qr) == 1 {
		return s.qr[0], s.centered[0], nil
	}
	if k < 0 || k >= len(s.qr) {
		return linalg.QR{}, nil, signal.ErrUnknownSignal
	}

	return s.qr[k], s.centered[k], nil
}

// Rows returns the number of signal rows (harmonics or channels).
func (s SignalQR) Rows() int {
	if len(s.centered) == 0 {
		return 0
	}
	r, _ := s.centered[0].Dims()

	return r
}

// Clone returns a deep copy.
func (s SignalQR) Clone() SignalQR {
	out := SignalQR{shared: s.shared}
	if s.qr != nil {
		out.qr = make([]linalg.QR, len(s.qr))
		for k := range s.qr {
			out.qr[k] = s.qr[k].Clone()
		}
	}
	if s.centered != nil {
		out.centered = make([]*mat.Dense, len(s.centered))
		for k, c := range s.centered {
			out.centered[k] = mat.DenseCopyOf(c)
		}
	}

	return out
}

func cloneSignalQRs(in []SignalQR) []SignalQR {
	if in == nil {
		return nil
	}
	out := make([]SignalQR, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}
