// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ssvepcca/cca"
	"github.com/katalvlaran/ssvepcca/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallExperiment = `
stimulus:
  freqs: [8, 10, 12]
signal:
  window: 0.5
  channels: 4
  bands: 2
  noise: 0.2
blocks: 3
models:
  - kind: scca-qr
  - kind: ecca
  - kind: oacca
log:
  level: warn
`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_WritesSummaryAndPlot(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(smallExperiment), 0o600))
	plotPath := filepath.Join(dir, "acc.png")

	stdout, stderr, err := execute(t, "run", "--config", cfgPath, "--plot", plotPath)
	require.NoError(t, err, stderr)
	for _, id := range []string{"sCCA (qr)", "eCCA", "OACCA"} {
		assert.Contains(t, stdout, id)
	}
	assert.NotContains(t, stderr, "level=INFO", "warn level hides info records")

	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_SameKindTwice(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sim.yaml")
	doc := `
stimulus:
  freqs: [8, 10, 12]
signal:
  window: 0.5
  channels: 4
  bands: 1
  noise: 0.2
blocks: 3
models:
  - kind: scca-qr
    components: 0
  - kind: scca-qr
    components: 1
log:
  level: warn
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o600))

	stdout, stderr, err := execute(t, "run", "-c", cfgPath, "--plot", filepath.Join(dir, "acc.png"))
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "sCCA (qr) #0")
	assert.Contains(t, stdout, "sCCA (qr) #1")
}

func TestRun_VerboseLogsFolds(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(smallExperiment), 0o600))

	_, stderr, err := execute(t, "run", "-c", cfgPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "fold finished")
	assert.Contains(t, stderr, "summary")
}

func TestRun_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("blocks: 1\n"), 0o600))

	_, _, err := execute(t, "run", "--config", cfgPath)
	assert.ErrorIs(t, err, config.ErrSignal)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ssvepsim dev\n", stdout)
}

func TestBuildModels(t *testing.T) {
	cfg := config.Default()
	cfg.Models = []config.Model{
		{Kind: config.KindSCCAQR, Components: 0, UpdateUV: true, Neighbors: 1},
		{Kind: config.KindSCCACanoncorr, Components: 1, Neighbors: 1},
		{Kind: config.KindECCA, Components: 1, Neighbors: 1},
		{Kind: config.KindMSCCA, Components: 1, Neighbors: 4},
		{Kind: config.KindOACCA, Components: 1, Neighbors: 1},
	}
	cfg.Jobs = 2
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	models, err := buildModels(cfg, logger)
	require.NoError(t, err)
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID()
	}
	assert.Equal(t, []string{"sCCA (qr)", "sCCA (canoncorr)", "eCCA", "ms-CCA", "OACCA"}, ids)

	ms := models[3].(*cca.MSCCA)
	assert.Equal(t, 4, ms.Options().Neighbors())
	assert.Equal(t, 2, ms.Options().Jobs())
	assert.Len(t, ms.Options().FilterbankWeights(), cfg.Signal.Bands)
	sc := models[1].(*cca.SCCA)
	assert.False(t, sc.Options().UpdateUV())

	cfg.Models = []config.Model{{Kind: config.ModelKind(9)}}
	_, err = buildModels(cfg, logger)
	assert.ErrorIs(t, err, config.ErrUnknownModel)
}
