// Package main is the entry point for the printshop-quote CLI.
package main

import (
	"os"

	"printshop-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
