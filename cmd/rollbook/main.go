// Package main is the entry point for the rollbook binary.
package main

import (
	"os"

	"github.com/halmaawali/rollbook/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
