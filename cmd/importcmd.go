package cmd

import (
	"github.com/spf13/cobra"

	"github.com/charliekarafotias/tap/internal/tapstore"
)

// NewImportCmd creates the import subcommand, backed by TapImporter rather
// than DataStore.Import: it is a distinct top-level entry point that
// upserts one record at a time.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path.tap>",
		Short: "Import records from a tap-format source file, overwriting conflicts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newDataStore(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			if err := tapstore.NewTapImporter(store).Import(args[0]); err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			printSuccess(cmd.OutOrStdout(), "imported "+args[0])
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
