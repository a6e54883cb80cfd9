// SPDX-License-Identifier: MIT

// Package config is the YAML description of a synthetic offline experiment
// run by cmd/ssvepsim.
//
// Loading is three-staged: Default fills every field, the YAML document
// overrides what it names (unknown keys are rejected), and Validate checks
// the result. A minimal file only lists its models:
//
//	models:
//	  - kind: ecca
//	  - kind: scca-qr
//	    components: 2
package config
