package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charliekarafotias/tap/internal/tapstore"
)

// NewShowCmd creates the show subcommand. It uses ReadDataStore, the
// indexed single-parent read path, rather than DataStore's linear scan.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <parent> [link]",
		Short: "Show all links under a parent, or a single link's value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveStoreDir(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			parent := args[0]
			store, err := tapstore.NewReadDataStore(dir, parent)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				link, err := store.ReadLink(parent, args[1])
				if err != nil {
					code := printError(cmd.ErrOrStderr(), err)
					return &exitError{code: code}
				}
				fmt.Fprintln(out, link.Value)
				return nil
			}

			links, err := store.ReadParent(parent)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}
			for _, l := range links {
				fmt.Fprintf(out, "%s|%s\n", l.Name, l.Value)
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
