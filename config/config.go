// SPDX-License-Identifier: MIT
// Package config: the experiment document, its defaults and validation.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/ssvepcca/evaluator"
	"github.com/katalvlaran/ssvepcca/signal"
	"gopkg.in/yaml.v3"
)

// Config is one synthetic leave-one-block-out experiment.
type Config struct {
	Stimulus   Stimulus   `yaml:"stimulus"`
	Signal     Signal     `yaml:"signal"`
	Blocks     int        `yaml:"blocks"`
	Timing     Timing     `yaml:"timing"`
	Filterbank Filterbank `yaml:"filterbank"`
	Models     []Model    `yaml:"models"`
	Jobs       int        `yaml:"jobs"`
	Log        Log        `yaml:"log"`
	Plot       Plot       `yaml:"plot"`
}

// Stimulus lists the target frequencies (Hz) and optional phases (rad).
type Stimulus struct {
	Freqs  []float64 `yaml:"freqs"`
	Phases []float64 `yaml:"phases,omitempty"`
}

// Signal describes the synthetic recordings and the references.
type Signal struct {
	Srate        float64 `yaml:"srate"`         // Hz
	Window       float64 `yaml:"window"`        // seconds per trial
	Channels     int     `yaml:"channels"`      // electrodes
	Bands        int     `yaml:"bands"`         // filter-bank sub-bands
	Harmonics    int     `yaml:"harmonics"`     // harmonics in the synthetic response
	RefHarmonics int     `yaml:"ref_harmonics"` // harmonics in the references
	Noise        float64 `yaml:"noise"`         // Gaussian noise σ
	Amplitude    float64 `yaml:"amplitude"`
	Seed         int64   `yaml:"seed"`
}

// Length returns the trial length in samples.
func (s Signal) Length() int { return int(math.Round(s.Window * s.Srate)) }

// Timing is charged to every selection by the ITR.
type Timing struct {
	Break   float64 `yaml:"break"`
	Latency float64 `yaml:"latency"`
}

// Filterbank selects the per-band weights: explicit Weights win, otherwise
// Suggested picks k^-1.25 + 0.25, otherwise bands are weighted equally.
type Filterbank struct {
	Weights   []float64 `yaml:"weights,omitempty"`
	Suggested bool      `yaml:"suggested"`
}

// Log configures the slog handler of the CLI.
type Log struct {
	Level  LogLevel `yaml:"level"`
	Format string   `yaml:"format"` // text or json
}

// Plot configures the optional accuracy bar chart; an empty Path disables it.
type Plot struct {
	Path      string  `yaml:"path"`
	ErrorKind string  `yaml:"error_kind"`
	Width     float64 `yaml:"width"`  // inches
	Height    float64 `yaml:"height"` // inches
}

// Default returns the built-in experiment: eight stimuli at 8..15 Hz, nine
// channels, three sub-bands, six blocks, sCCA, eCCA and ms-CCA.
func Default() Config {
	return Config{
		Stimulus: Stimulus{Freqs: []float64{8, 9, 10, 11, 12, 13, 14, 15}},
		Signal: Signal{
			Srate:        250,
			Window:       1,
			Channels:     9,
			Bands:        3,
			Harmonics:    3,
			RefHarmonics: 5,
			Noise:        1,
			Amplitude:    1,
			Seed:         1,
		},
		Blocks:     6,
		Timing:     Timing{Break: evaluator.DefaultBreak, Latency: evaluator.DefaultLatency},
		Filterbank: Filterbank{Suggested: true},
		Models: []Model{
			{Kind: KindSCCAQR, Components: 1, UpdateUV: true, Neighbors: 12},
			{Kind: KindECCA, Components: 1, UpdateUV: true, Neighbors: 12},
			{Kind: KindMSCCA, Components: 1, UpdateUV: true, Neighbors: 12},
		},
		Log:  Log{Level: LogLevel(slog.LevelInfo), Format: "text"},
		Plot: Plot{ErrorKind: "std", Width: 6.4, Height: 4.8},
	}
}

// Weights resolves the filter-bank weights; nil means uniform.
func (c Config) Weights() []float64 {
	switch {
	case c.Filterbank.Weights != nil:
		return append([]float64(nil), c.Filterbank.Weights...)
	case c.Filterbank.Suggested:
		return signal.SuggestedFilterbankWeights(c.Signal.Bands)
	default:
		return nil
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, configErrorf(opLoad, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, configErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return cfg, nil
}

// Decode reads one YAML document over Default and validates the result.
// An empty document yields the defaults. Unknown keys are errors.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, configErrorf(opDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if len(c.Stimulus.Freqs) == 0 {
		return configErrorf(opValidate, ErrNoFreqs)
	}
	for _, f := range c.Stimulus.Freqs {
		if !(f > 0) || math.IsInf(f, 0) {
			return configErrorf(opValidate, ErrNoFreqs)
		}
	}
	if c.Stimulus.Phases != nil && len(c.Stimulus.Phases) != len(c.Stimulus.Freqs) {
		return configErrorf(opValidate, ErrNoFreqs)
	}

	s := c.Signal
	if !(s.Srate > 0) || !(s.Window > 0) || s.Length() < 1 ||
		s.Channels < 1 || s.Bands < 1 || s.Harmonics < 1 || s.RefHarmonics < 1 ||
		s.Noise < 0 || !(s.Amplitude > 0) || c.Blocks < 2 {
		return configErrorf(opValidate, ErrSignal)
	}
	if c.Timing.Break < 0 || c.Timing.Latency < 0 {
		return configErrorf(opValidate, ErrTiming)
	}
	if w := c.Filterbank.Weights; w != nil {
		if len(w) != s.Bands {
			return configErrorf(opValidate, ErrWeights)
		}
		for _, v := range w {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return configErrorf(opValidate, ErrWeights)
			}
		}
	}

	if len(c.Models) == 0 {
		return configErrorf(opValidate, ErrNoModels)
	}
	for i, m := range c.Models {
		if err := m.validate(); err != nil {
			return configErrorf(opValidate, fmt.Errorf("models[%d]: %w", i, err))
		}
	}
	if c.Jobs < 0 {
		return configErrorf(opValidate, ErrSignal)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return configErrorf(opValidate, ErrLogLevel)
	}
	if _, err := evaluator.ParseErrorKind(c.Plot.ErrorKind); err != nil {
		return configErrorf(opValidate, ErrPlot)
	}
	if !(c.Plot.Width > 0) || !(c.Plot.Height > 0) {
		return configErrorf(opValidate, ErrPlot)
	}

	return nil
}
