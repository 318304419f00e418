// Package main provides the entrypoint for gh-content-models.
package main

import (
	"os"

	"github.com/isometry/gh-content-models/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
