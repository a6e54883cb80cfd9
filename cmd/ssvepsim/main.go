// SPDX-License-Identifier: MIT

// Command ssvepsim runs synthetic leave-one-block-out SSVEP experiments.
//
//	ssvepsim run --config sim.yaml [--plot acc.png] [--verbose]
//	ssvepsim version
//
// Without --config the built-in experiment of package config is used.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
