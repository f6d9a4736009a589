// Package main provides the clusterviz CLI.
//
// Usage:
//
//	clusterviz [flags] <command> [args]
//
// Commands:
//
//	cluster  - partition points from a file into k clusters
//	nearest  - find the point closest to a query
//	session  - interactive loop: cluster, then query the same points
//
// Configuration:
//
//	Flags override CLUSTERVIZ_* environment variables, which override
//	.clusterviz.yaml in the working or home directory. A .env file in the
//	working directory is loaded first.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/clusterviz/cmd/clusterviz/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
