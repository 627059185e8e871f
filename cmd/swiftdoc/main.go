// Package main is the entry point for the swiftdoc CLI.
package main

import (
	"os"

	"swiftdoc/cmd/swiftdoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
