// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/ssvepcca/config"
	"github.com/katalvlaran/ssvepcca/evaluator"
	"github.com/katalvlaran/ssvepcca/plot"
	"github.com/katalvlaran/ssvepcca/signal"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

func newRunCmd(root *rootFlags) *cobra.Command {
	var (
		configPath string
		plotPath   string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a leave-one-block-out experiment on synthetic data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if plotPath != "" {
				cfg.Plot.Path = plotPath
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Log, root.verbose)

			return runExperiment(cfg, logger, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML experiment file")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write an accuracy bar chart to this file")

	return cmd
}

// runExperiment synthesizes the dataset, evaluates every model and reports
// per-model summaries to out.
func runExperiment(cfg config.Config, logger *slog.Logger, out io.Writer) error {
	s := cfg.Signal
	length := s.Length()
	data, err := signal.SynthesizeDataset(cfg.Stimulus.Freqs, cfg.Stimulus.Phases, cfg.Blocks, s.Srate, length,
		signal.WithChannels(s.Channels),
		signal.WithBands(s.Bands),
		signal.WithHarmonics(s.Harmonics),
		signal.WithAmplitude(s.Amplitude),
		signal.WithNoise(s.Noise),
		signal.WithSeed(s.Seed),
	)
	if err != nil {
		return err
	}
	refs, err := signal.References(cfg.Stimulus.Freqs, cfg.Stimulus.Phases, s.Srate, length, s.RefHarmonics)
	if err != nil {
		return err
	}
	models, err := buildModels(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("experiment",
		"stimuli", len(cfg.Stimulus.Freqs), "blocks", cfg.Blocks,
		"channels", s.Channels, "bands", s.Bands, "samples", length,
		"noise", s.Noise, "models", len(models))

	runner := evaluator.NewRunner(
		evaluator.WithTiming(cfg.Timing.Break, cfg.Timing.Latency),
		evaluator.WithJobs(cfg.Jobs),
		evaluator.WithLogger(logger),
	)
	results, err := runner.Run(models, evaluator.Task{
		Freqs:  cfg.Stimulus.Freqs,
		Refs:   refs,
		Data:   data,
		Window: s.Window,
	})
	if err != nil {
		return err
	}

	summaries := evaluator.Summarize(results)
	fmt.Fprintf(out, "%-18s %5s %18s %22s\n", "model", "folds", "acc % (±ci95)", "itr bits/min (±ci95)")
	for _, sum := range summaries {
		logger.Info("summary",
			"model", sum.Label,
			"acc_mean", sum.Accuracy.Mean, "acc_std", sum.Accuracy.Std,
			"itr_mean", sum.ITR.Mean, "itr_std", sum.ITR.Std)
		fmt.Fprintf(out, "%-18s %5d %10.2f (±%5.2f) %13.2f (±%6.2f)\n",
			sum.Label, sum.Folds,
			100*sum.Accuracy.Mean, 100*sum.Accuracy.CI95,
			sum.ITR.Mean, sum.ITR.CI95)
	}

	if cfg.Plot.Path == "" {
		return nil
	}
	if err := writeAccuracyPlot(cfg, results, summaries); err != nil {
		return err
	}
	logger.Info("plot written", "path", cfg.Plot.Path)

	return nil
}

// writeAccuracyPlot draws one bar per model: the mean fold accuracy with
// its error bar.
func writeAccuracyPlot(cfg config.Config, results []evaluator.Result, summaries []evaluator.Summary) error {
	kind, err := evaluator.ParseErrorKind(cfg.Plot.ErrorKind)
	if err != nil {
		return err
	}
	folds := cfg.Blocks
	names := make([]string, len(summaries))
	col := make(map[int]int, len(summaries))
	for i, sum := range summaries {
		names[i] = sum.Label
		col[sum.Index] = i
	}
	// observations are folds, variables are models
	table := make([][]float64, folds)
	for i := range table {
		table[i] = make([]float64, len(summaries))
	}
	for _, res := range results {
		table[res.Fold][col[res.Index]] = 100 * res.Accuracy
	}

	opts := plot.DefaultOptions()
	opts.Title = "Leave-one-block-out accuracy"
	opts.YLabel = "accuracy (%)"
	opts.XTicks = names
	opts.ErrorKind = kind
	p, err := plot.BarWithErrorbar([][][]float64{table}, opts)
	if err != nil {
		return err
	}

	return plot.Save(p, vg.Length(cfg.Plot.Width)*vg.Inch, vg.Length(cfg.Plot.Height)*vg.Inch, cfg.Plot.Path)
}
