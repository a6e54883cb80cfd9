// SPDX-License-Identifier: MIT
// Package config: per-model settings.

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Model configures one recognizer. Fields a kind does not use are ignored.
type Model struct {
	Kind          ModelKind `yaml:"kind"`
	Components    int       `yaml:"components"`
	UpdateUV      bool      `yaml:"update_uv"`
	ForceOutputUV bool      `yaml:"force_output_uv"`
	Neighbors     int       `yaml:"neighbors"`
}

// DefaultModel is the starting point of every models entry.
func DefaultModel() Model {
	return Model{Kind: KindSCCAQR, Components: 1, UpdateUV: true, Neighbors: 12}
}

var modelKeys = map[string]bool{
	"kind": true, "components": true, "update_uv": true,
	"force_output_uv": true, "neighbors": true,
}

// UnmarshalYAML decodes an entry over DefaultModel. Node decoding does not
// inherit the document's strict mode, so keys are checked here.
func (m *Model) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if key := value.Content[i].Value; !modelKeys[key] {
				return fmt.Errorf("line %d: field %s not found in type config.Model", value.Content[i].Line, key)
			}
		}
	}
	type plain Model
	p := plain(DefaultModel())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = Model(p)

	return nil
}

func (m Model) validate() error {
	if m.Kind < KindSCCAQR || m.Kind > KindOACCA {
		return ErrUnknownModel
	}
	if m.Components < 0 || m.Neighbors < 1 {
		return ErrModel
	}
	// only sCCA has a score-only mode
	if m.Components == 0 && m.Kind != KindSCCAQR && m.Kind != KindSCCACanoncorr {
		return ErrModel
	}

	return nil
}
