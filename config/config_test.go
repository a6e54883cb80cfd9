// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ssvepcca/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 250, cfg.Signal.Length())
	assert.Len(t, cfg.Weights(), cfg.Signal.Bands)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level.Level())
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Overrides(t *testing.T) {
	doc := `
stimulus:
  freqs: [8, 10, 12]
signal:
  window: 0.5
  bands: 2
blocks: 4
filterbank:
  weights: [1, 0.5]
models:
  - kind: ECCA
  - kind: scca-canoncorr
    components: 0
    update_uv: false
  - kind: mscca
    neighbors: 2
log:
  level: debug
  format: json
plot:
  path: acc.png
  error_kind: ci95
`
	cfg, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []float64{8, 10, 12}, cfg.Stimulus.Freqs)
	assert.Equal(t, 125, cfg.Signal.Length())
	assert.Equal(t, 250.0, cfg.Signal.Srate, "untouched keys keep defaults")
	assert.Equal(t, 4, cfg.Blocks)
	assert.Equal(t, []float64{1, 0.5}, cfg.Weights())

	require.Len(t, cfg.Models, 3)
	assert.Equal(t, config.Model{Kind: config.KindECCA, Components: 1, UpdateUV: true, Neighbors: 12}, cfg.Models[0])
	assert.Equal(t, config.KindSCCACanoncorr, cfg.Models[1].Kind)
	assert.Zero(t, cfg.Models[1].Components)
	assert.False(t, cfg.Models[1].UpdateUV)
	assert.Equal(t, 2, cfg.Models[2].Neighbors)
	assert.Equal(t, 1, cfg.Models[2].Components)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level.Level())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "acc.png", cfg.Plot.Path)
}

func TestDecode_Errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		err  error
	}{
		{"no freqs", "stimulus:\n  freqs: []\n", config.ErrNoFreqs},
		{"phases length", "stimulus:\n  phases: [0]\n", config.ErrNoFreqs},
		{"one block", "blocks: 1\n", config.ErrSignal},
		{"zero srate", "signal:\n  srate: 0\n", config.ErrSignal},
		{"negative noise", "signal:\n  noise: -1\n", config.ErrSignal},
		{"negative break", "timing:\n  break: -0.1\n", config.ErrTiming},
		{"weights length", "filterbank:\n  weights: [1]\n", config.ErrWeights},
		{"weights nan", "filterbank:\n  weights: [1, .nan, 1]\n", config.ErrWeights},
		{"no models", "models: []\n", config.ErrNoModels},
		{"unknown kind", "models:\n  - kind: trca\n", config.ErrUnknownModel},
		{"ecca score-only", "models:\n  - kind: ecca\n    components: 0\n", config.ErrModel},
		{"zero neighbors", "models:\n  - kind: mscca\n    neighbors: 0\n", config.ErrModel},
		{"bad level", "log:\n  level: loud\n", config.ErrLogLevel},
		{"bad format", "log:\n  format: xml\n", config.ErrLogLevel},
		{"bad error kind", "plot:\n  error_kind: sem\n", config.ErrPlot},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.Decode(strings.NewReader("colour: red\n"))
	assert.Error(t, err, "unknown top-level key")
	_, err = config.Decode(strings.NewReader("models:\n  - kind: ecca\n    colour: red\n"))
	assert.Error(t, err, "unknown model key")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Blocks)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestKinds_RoundTrip(t *testing.T) {
	out, err := yaml.Marshal(config.Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: ecca")
	assert.Contains(t, string(out), "level: info")

	back, err := config.Decode(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Models, back.Models)

	var k config.ModelKind
	assert.ErrorIs(t, k.SetString("nope"), config.ErrUnknownModel)
	assert.Equal(t, "unknown", config.ModelKind(42).String())

	var l config.LogLevel
	require.NoError(t, l.SetString("WARNING"))
	assert.Equal(t, "warn", l.String())
}
