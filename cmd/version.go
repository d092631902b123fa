package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, injected at build time by main.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tap's version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tap %s (%s, built %s)\n", Version, Commit, BuildDate)
			return nil
		},
	}
}
