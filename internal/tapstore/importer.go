package tapstore

import (
	"errors"
	"fmt"
	"os"
)

// TapImporter is a thin wrapper over the data file parser and a loop of
// DataStore.UpsertLink calls. It is a distinct top-level entry point from
// DataStore.Import, so it performs its own extension validation and
// triggers one persist cycle per imported record rather than one persist
// cycle for the whole source.
type TapImporter struct {
	store *DataStore
}

// NewTapImporter wraps store for tap-format imports.
func NewTapImporter(store *DataStore) *TapImporter {
	return &TapImporter{store: store}
}

// Import validates that path has a .tap extension, parses it with the same
// parser DataFile.Load uses, and upserts each parsed (parent, link, value)
// record into the wrapped store in turn. Conflicts overwrite the local
// value, matching DataStore.Import's behavior.
func (t *TapImporter) Import(path string) error {
	if err := validateTapExtension(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return wrapError(KindFileOpenFailed, fmt.Sprintf("import source %s does not exist", path), err)
		}
		return wrapError(KindFileOpenFailed, fmt.Sprintf("could not stat import source %s", path), err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return wrapError(KindFileReadFailed, fmt.Sprintf("could not read import source %s", path), err)
	}

	parsed, err := parseDataFile(string(content))
	if err != nil {
		return err
	}

	for _, p := range parsed {
		for _, l := range p.Links {
			if err := t.store.UpsertLink(p.Name, l.Name, l.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
