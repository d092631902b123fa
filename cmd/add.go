package cmd

import (
	"github.com/spf13/cobra"
)

// NewAddCmd creates the add subcommand.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <parent> <link> <value>",
		Short: "Add a new link under a parent, failing if it already exists",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newDataStore(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			if err := store.AddLink(args[0], args[1], args[2]); err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			printSuccess(cmd.OutOrStdout(), "added "+args[1]+" under "+args[0])
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
