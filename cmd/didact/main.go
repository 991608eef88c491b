// Package main is the entry point for the didact CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/didact/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
