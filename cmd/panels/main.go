// Package main provides the panels CLI for loading, rendering and browsing
// panel layouts.
//
// Usage:
//
//	panels list                        List panel kinds and their defaults
//	panels render [scene...]           Lay out scene files and print the result
//	panels bench                       Benchmark bubble packing
//	panels gallery [scene...]          Browse sample scenes interactively
//
// Examples:
//
//	panels render scenes/orbit.yaml
//	panels render --sample bubble --format ascii
//	panels render -f json a.yaml b.toml
//	panels bench --items 200 --iterations 100
//	panels gallery
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := NewCli()
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(new(LogFormatter))
	log.SetLevel(log.InfoLevel)
}
