package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewParentsCmd creates the parents subcommand, listing every parent
// currently indexed.
func NewParentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parents",
		Short: "List every parent currently in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newDataStore(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			for _, p := range store.Parents() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
