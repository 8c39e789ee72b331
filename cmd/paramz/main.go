// Package main is the entry point for the paramz CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/paramz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
