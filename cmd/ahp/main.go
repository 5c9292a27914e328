// SPDX-License-Identifier: MIT

// Command ahp evaluates AHP pairwise comparisons and hierarchies described in
// YAML documents.
//
//	ahp priorities -f criteria.yaml
//	ahp rank -f model.yaml --format json
//	ahp scale
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
