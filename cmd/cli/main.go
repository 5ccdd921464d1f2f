// Package main is the entry point for the wedding-billing CLI.
package main

import (
	"os"

	"wedding-billing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
