package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config is the optional ~/.tap.yml document. Every field is optional; a
// missing or unreadable config file is not an error, the CLI just falls
// back to PathResolver's defaults.
type config struct {
	// StoreDir overrides the directory tap's data and index files live in,
	// fed through the same directory-override channel DataStore already
	// accepts from callers (tests, or here a config file instead of a flag).
	StoreDir string `yaml:"store_dir"`
	// OpenCommand overrides the external command `tap here` execs to open
	// a link value. A %s placeholder is substituted with the value; a
	// command without one gets the value appended as its last argument.
	// "xdg-open" is used when unset.
	OpenCommand string `yaml:"open_command"`
}

// loadConfig reads ~/.tap.yml if present and parses it. A missing file
// yields a zero-value config, not an error.
func loadConfig(userHomeDir func() (string, error)) (config, error) {
	home, err := userHomeDir()
	if err != nil {
		return config{}, nil
	}

	path := filepath.Join(home, ".tap.yml")
	content, err := os.ReadFile(path)
	if err != nil {
		return config{}, nil
	}

	var cfg config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// storeDirOverride returns a non-nil *string suitable for DataStore's dir
// parameter when cfg names a store directory, or nil to fall back to
// PathResolver's executable-relative default.
func storeDirOverride(cfg config) *string {
	if cfg.StoreDir == "" {
		return nil
	}
	dir := cfg.StoreDir
	return &dir
}
