package cmd

import (
	"github.com/spf13/cobra"
)

// NewRmCmd creates the rm subcommand. A bare parent removes the whole
// parent; parent plus link removes just that link.
func NewRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <parent> [link]",
		Short: "Remove a link, or an entire parent when no link is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newDataStore(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			var link *string
			if len(args) == 2 {
				link = &args[1]
			}

			if err := store.Delete(args[0], link); err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			if link != nil {
				printSuccess(cmd.OutOrStdout(), "removed "+*link+" from "+args[0])
			} else {
				printSuccess(cmd.OutOrStdout(), "removed "+args[0])
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
