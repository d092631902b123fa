package cmd

import (
	"github.com/spf13/cobra"
)

// NewUpsertCmd creates the upsert subcommand.
func NewUpsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upsert <parent> <link> <value>",
		Short: "Add or replace a link under a parent",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newDataStore(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			if err := store.UpsertLink(args[0], args[1], args[2]); err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			printSuccess(cmd.OutOrStdout(), "upserted "+args[1]+" under "+args[0])
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
