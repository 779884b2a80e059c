// Package main is the entry point for the horalog CLI.
package main

import (
	"os"

	"github.com/f3rmion/horalog/cmd/horalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
