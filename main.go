// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keysmith.
//
// Usage:
//
//	go run . [flags]
//	./keysmith generate --digits -l 4 -p 3
//
// Without a subcommand Keysmith opens the interactive generator on a
// terminal and prints a single key otherwise. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/keysmith/internal/logging"
	"github.com/toeirei/keysmith/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
