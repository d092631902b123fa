// Package main is the entry point for the tap CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/charliekarafotias/tap/cmd"
)

// Version information, injected at build time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.BuildDate = buildDate

	rootCmd := cmd.NewRootCmd()
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if !cmd.IsExitError(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
