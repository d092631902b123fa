package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charliekarafotias/tap/internal/tapstore"
)

// HereIO handles the environment lookups and external process launch the
// here command needs, so tests can inject deterministic behavior instead of
// touching the real working directory or spawning a real process.
type HereIO interface {
	Getwd() (string, error)
	OpenLink(command, value string) error
}

// osHereIO implements HereIO against the real OS.
type osHereIO struct{}

func (osHereIO) Getwd() (string, error) { return os.Getwd() }

func (osHereIO) OpenLink(command, value string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		parts = []string{"xdg-open"}
	}
	substituted := false
	for i, p := range parts {
		if strings.Contains(p, "%s") {
			parts[i] = strings.ReplaceAll(p, "%s", value)
			substituted = true
		}
	}
	if !substituted {
		parts = append(parts, value)
	}
	return exec.Command(parts[0], parts[1:]...).Run()
}

const defaultOpenCommand = "xdg-open"

// NewHereCmd creates the here subcommand: the parent is the current
// working directory's base name, and a matched link's value is handed to
// the configured open command. The core store never inspects the working
// directory itself — that lookup and the resulting open-link action both
// belong to this CLI layer.
func NewHereCmd() *cobra.Command {
	return newHereCmdWithIO(osHereIO{})
}

func newHereCmdWithIO(io HereIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "here [link]",
		Short: "Show or open links under the parent named for the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveStoreDir(cmd)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			cwd, err := io.Getwd()
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}
			parent := filepath.Base(cwd)

			store, err := tapstore.NewReadDataStore(dir, parent)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			if len(args) == 0 {
				links, err := store.ReadParent(parent)
				if err != nil {
					code := printError(cmd.ErrOrStderr(), err)
					return &exitError{code: code}
				}
				for _, l := range links {
					cmd.Println(l.Name + "|" + l.Value)
				}
				return nil
			}

			link, err := store.ReadLink(parent, args[0])
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}

			cfg, err := loadConfig(os.UserHomeDir)
			if err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}
			openCommand := cfg.OpenCommand
			if openCommand == "" {
				openCommand = defaultOpenCommand
			}

			if err := io.OpenLink(openCommand, link.Value); err != nil {
				code := printError(cmd.ErrOrStderr(), err)
				return &exitError{code: code}
			}
			printSuccess(cmd.OutOrStdout(), "opened "+link.Name)
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
