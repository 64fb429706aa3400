// SPDX-License-Identifier: MIT
// Package main provides the tmdlattice CLI: inspect the parameter registry
// and build lattices from the published model presets.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
