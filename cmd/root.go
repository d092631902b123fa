package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/charliekarafotias/tap/internal/tapstore"
)

// NewRootCmd creates the root tap command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tap",
		Short:         "tap - a persistent two-file bookmark store",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewAddCmd())
	root.AddCommand(NewUpsertCmd())
	root.AddCommand(NewRmCmd())
	root.AddCommand(NewShowCmd())
	root.AddCommand(NewParentsCmd())
	root.AddCommand(NewImportCmd())
	root.AddCommand(NewHereCmd())
	root.AddCommand(NewVersionCmd())
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// resolveStoreDir determines the directory override a command should pass
// to tapstore.NewDataStore/NewReadDataStore: the --dir flag wins, then
// ~/.tap.yml's store_dir, then nil (PathResolver's executable-relative
// default).
func resolveStoreDir(cmd *cobra.Command) (*string, error) {
	dirFlag, _ := cmd.Flags().GetString("dir")
	if dirFlag != "" {
		return &dirFlag, nil
	}
	cfg, err := loadConfig(os.UserHomeDir)
	if err != nil {
		return nil, err
	}
	return storeDirOverride(cfg), nil
}

// newDataStore resolves the configured store directory and constructs a
// tapstore.DataStore for cmd.
func newDataStore(cmd *cobra.Command) (*tapstore.DataStore, error) {
	dir, err := resolveStoreDir(cmd)
	if err != nil {
		return nil, err
	}
	return tapstore.NewDataStore(dir)
}

// addDirFlag registers the --dir override flag shared by every subcommand
// that touches the store.
func addDirFlag(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "directory holding .tap_data/.tap_index (default: next to the tap executable, or ~/.tap.yml's store_dir)")
}
