// Package ssvepcca recognizes steady-state visually evoked potentials (SSVEP)
// with canonical correlation analysis, from the linear algebra kernels up to
// offline cross-validation and an online adaptive speller.
//
// What is inside?
//
//	A filter-bank aware toolkit that brings together:
//		• Kernels: mean-removed pivoted QR, canoncorr, pseudo-inverse, eigen
//		• Signals: sine-cosine references, class templates, synthetic EEG
//		• Recognizers: sCCA (QR or canoncorr), eCCA, ms-CCA, OACCA
//		• Evaluation: accuracy, Wolpaw ITR, confusion, leave-one-block-out
//		• Plots: histograms, grouped bars with error bars, bands, heat maps
//
// Layout:
//
//	linalg/        QRRemoveMean, CanonCorr(QR), Pinv, MLDivide, eigenvectors
//	signal/        Trial, Multiband, References, GenTemplate, synthesis
//	cca/           the Model interface and the four recognizers
//	evaluator/     metrics, statistics and the cross-validation Runner
//	plot/          gonum/plot figures for experiment results
//	config/        YAML experiment description
//	cmd/ssvepsim/  command line driver for synthetic experiments
//	examples/      runnable offline and online scenarios
//
// Quick example:
//
//	refs, _ := signal.References(freqs, nil, 250, 250, 5)
//	m := cca.NewECCA(cca.WithFilterbankWeights(signal.SuggestedFilterbankWeights(3)))
//	_ = m.Fit(freqs, train, labels, refs)
//	pred, _ := m.Predict(test)
//
// Every model is safe to Clone and the clones are independent, so folds and
// subjects can be evaluated in parallel.
//
//	go get github.com/katalvlaran/ssvepcca
package ssvepcca
