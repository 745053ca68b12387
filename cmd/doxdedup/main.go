// Package main provides the doxdedup CLI.
package main

import (
	"os"

	"github.com/doxutil/doxdedup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
