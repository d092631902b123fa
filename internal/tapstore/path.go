package tapstore

import (
	"os"
	"path/filepath"
)

const (
	defaultDataFileName  = ".tap_data"
	defaultIndexFileName = ".tap_index"
)

// executablePath is indirected so tests can inject a deterministic path
// instead of relying on the real executable location.
var executablePath = os.Executable

// DefaultPaths resolves the default data and index file locations:
// alongside the current executable, named .tap_data and .tap_index.
func DefaultPaths() (dataPath, indexPath string, err error) {
	exe, osErr := executablePath()
	if osErr != nil {
		return "", "", wrapError(KindExecutablePathNotFound, "could not determine current executable path", osErr)
	}
	dir := filepath.Dir(exe)
	if dir == "" || dir == "." {
		return "", "", newError(KindExecutablePathParentDirectoryNotFound, "could not determine executable's parent directory")
	}
	return filepath.Join(dir, defaultDataFileName), filepath.Join(dir, defaultIndexFileName), nil
}

// PathsInDir resolves the data and index file locations inside an explicit
// directory override, bypassing executable-path resolution entirely. This
// is the channel DataStore's constructor uses when callers (tests, or a CLI
// config override) supply a directory.
func PathsInDir(dir string) (dataPath, indexPath string) {
	return filepath.Join(dir, defaultDataFileName), filepath.Join(dir, defaultIndexFileName)
}

// validateTapExtension requires path's extension to be exactly ".tap"
// (case-sensitive).
func validateTapExtension(path string) error {
	if filepath.Ext(path) != ".tap" {
		return newError(KindInvalidFileExtension, "import source must have a .tap extension")
	}
	return nil
}
