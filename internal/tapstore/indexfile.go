package tapstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// IndexFile owns the persistent map from parent name to byte offset within
// the most recently written data file.
type IndexFile struct {
	path    string
	entries []IndexEntry
}

// LoadIndexFile opens the index file at path, creating it empty if it does
// not exist.
func LoadIndexFile(path string) (*IndexFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			created, cerr := os.Create(path)
			if cerr != nil {
				return nil, wrapError(KindFileCreateFailed, fmt.Sprintf("could not create index file %s", path), cerr)
			}
			_ = created.Close()
			return &IndexFile{path: path}, nil
		}
		return nil, wrapError(KindFileOpenFailed, fmt.Sprintf("could not open index file %s", path), err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, wrapError(KindFileReadFailed, fmt.Sprintf("could not read index file %s", path), err)
	}
	entries, err := parseIndexFile(string(content))
	if err != nil {
		return nil, err
	}
	return &IndexFile{path: path, entries: entries}, nil
}

// Update replaces the entire index state with entries, preserving their
// order. Callers pass the canonical order returned by DataFile.Save.
func (f *IndexFile) Update(entries []IndexEntry) {
	f.entries = entries
}

// Save serializes the index sorted by trimmed parent name and rewrites the
// index file in a single whole-file write.
func (f *IndexFile) Save() error {
	rendered := serializeIndexFile(f.entries)
	if err := os.WriteFile(f.path, []byte(rendered), 0o644); err != nil {
		return wrapError(KindFileWriteFailed, fmt.Sprintf("could not write index file %s", f.path), err)
	}
	return nil
}

// FindParentOffsetAndLength locates parent's entry and computes the byte
// length of its region in the data file: the distance to the next entry's
// offset, or 0 (meaning "read to EOF") when parent is the last entry.
func (f *IndexFile) FindParentOffsetAndLength(parent string) (offset int64, length int64, err error) {
	sorted := make([]IndexEntry, len(f.entries))
	copy(sorted, f.entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for i, e := range sorted {
		if trim(e.Parent) != trim(parent) {
			continue
		}
		if i == len(sorted)-1 {
			return e.Offset, 0, nil
		}
		return e.Offset, sorted[i+1].Offset - e.Offset, nil
	}
	return 0, 0, newError(KindParseError, fmt.Sprintf("parent entity %q not found in index", parent))
}

// Parents returns the ordered list of parent names currently indexed.
func (f *IndexFile) Parents() []string {
	names := make([]string, len(f.entries))
	for i, e := range f.entries {
		names[i] = trim(e.Parent)
	}
	return names
}

