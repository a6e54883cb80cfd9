// SPDX-License-Identifier: MIT

// Package evaluator scores recognizers offline.
//
// Metrics:
//
//   - Accuracy and ConfusionMatrix compare predicted and true labels.
//   - ITR is the Wolpaw information transfer rate in bits/min, charging each
//     selection its window, inter-trial break, latency and compute time.
//
// Summaries:
//
//   - MeanStd and CI95 summarise repeated observations (population standard
//     deviation; CI95 is SEM·t(0.95, N−1)).
//   - ColumnStats applies either to every column of an observation table.
//
// Protocol:
//
//   - LeaveOneBlockOut and SelectBlocks split block-structured datasets.
//   - Runner fits a fresh clone of every model per held-out block and
//     collects one Result per (model, fold); Summarize folds them per model.
package evaluator
