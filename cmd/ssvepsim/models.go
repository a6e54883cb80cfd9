// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ssvepcca/cca"
	"github.com/katalvlaran/ssvepcca/config"
)

// buildModels turns the configured entries into unfitted recognizers.
func buildModels(cfg config.Config, logger *slog.Logger) ([]cca.Model, error) {
	weights := cfg.Weights()
	out := make([]cca.Model, 0, len(cfg.Models))
	for i, m := range cfg.Models {
		opts := []cca.Option{
			cca.WithComponents(m.Components),
			cca.WithJobs(cfg.Jobs),
			cca.WithUpdateUV(m.UpdateUV),
			cca.WithForceOutputUV(m.ForceOutputUV),
			cca.WithNeighbors(m.Neighbors),
			cca.WithLogger(logger),
		}
		if weights != nil {
			opts = append(opts, cca.WithFilterbankWeights(weights))
		}

		switch m.Kind {
		case config.KindSCCAQR:
			out = append(out, cca.NewSCCA(append(opts, cca.WithCCAType(cca.CCATypeQR))...))
		case config.KindSCCACanoncorr:
			out = append(out, cca.NewSCCA(append(opts, cca.WithCCAType(cca.CCATypeCanoncorr))...))
		case config.KindECCA:
			out = append(out, cca.NewECCA(opts...))
		case config.KindMSCCA:
			out = append(out, cca.NewMSCCA(opts...))
		case config.KindOACCA:
			out = append(out, cca.NewOACCA(opts...))
		default:
			return nil, fmt.Errorf("models[%d]: %w", i, config.ErrUnknownModel)
		}
	}

	return out, nil
}
