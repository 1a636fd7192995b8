// Command metronav answers route queries over a metro network from the
// command line: shortest distance, shortest time, and full routes with their
// line interchanges.
package main

import (
	"os"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
