// Package main is the entry point for the shipops CLI.
package main

import (
	"os"

	"shipops/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
