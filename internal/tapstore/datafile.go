package tapstore

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Slice restricts a DataFile load to a byte range within the file: read
// exactly Length bytes starting at Offset, or to EOF when Length is 0. This
// is how ReadDataStore performs an indexed, single-parent load.
type Slice struct {
	Offset int64
	Length int64
}

// ImportKind selects the source format accepted by DataFile.Import. Tap is
// the only format this core understands; adapters for other browsers'
// bookmark export formats are a separate, unimplemented concern.
type ImportKind int

const (
	ImportKindTap ImportKind = iota
)

// DataFile owns the in-memory parent/link state and the data file's
// on-disk bytes at path.
type DataFile struct {
	path  string
	state []Parent
}

// LoadDataFile opens the data file at path. If slice is non-nil, only the
// requested byte range is read and parsed — used for indexed, single-parent
// reads. If the file does not exist, it is created empty and state starts
// empty.
func LoadDataFile(path string, slice *Slice) (*DataFile, error) {
	content, err := readFileOrSlice(path, slice)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return &DataFile{path: path}, nil
	}
	state, err := parseDataFile(string(content))
	if err != nil {
		return nil, err
	}
	return &DataFile{path: path, state: state}, nil
}

// readFileOrSlice returns nil, nil when the file did not exist and was just
// created; otherwise it returns the requested bytes (whole file, or the
// slice).
func readFileOrSlice(path string, slice *Slice) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			created, cerr := os.Create(path)
			if cerr != nil {
				return nil, wrapError(KindFileCreateFailed, fmt.Sprintf("could not create data file %s", path), cerr)
			}
			_ = created.Close()
			return nil, nil
		}
		return nil, wrapError(KindFileOpenFailed, fmt.Sprintf("could not open data file %s", path), err)
	}
	defer f.Close()

	if slice == nil {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, wrapError(KindFileReadFailed, fmt.Sprintf("could not read data file %s", path), err)
		}
		return data, nil
	}

	if _, err := f.Seek(slice.Offset, io.SeekStart); err != nil {
		return nil, wrapError(KindFileSeekFailed, fmt.Sprintf("could not seek to offset %d in %s", slice.Offset, path), err)
	}

	if slice.Length == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, wrapError(KindFileReadFailed, fmt.Sprintf("could not read data file %s to EOF", path), err)
		}
		return data, nil
	}

	if _, err := f.Stat(); err != nil {
		return nil, wrapError(KindFileReadMetadataFailed, fmt.Sprintf("could not stat data file %s", path), err)
	}
	buf := make([]byte, slice.Length)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, wrapError(KindFileReadFailed, fmt.Sprintf("could not read %d bytes at offset %d in %s", slice.Length, slice.Offset, path), err)
	}
	return buf[:n], nil
}

// AddLink adds a new link under parent. If parent does not yet exist it is
// created. If link already exists under parent, LinkAlreadyExists is
// returned and state is left unchanged.
func (d *DataFile) AddLink(parent, link, value string) error {
	if err := validateParent(parent); err != nil {
		return err
	}
	if err := validateLink(link); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	for i := range d.state {
		if trim(d.state[i].Name) != trim(parent) {
			continue
		}
		for _, l := range d.state[i].Links {
			if trim(l.Name) == trim(link) {
				return newError(KindLinkAlreadyExists, fmt.Sprintf("link %q already exists for parent %q", link, parent))
			}
		}
		d.state[i].Links = append(d.state[i].Links, Link{Name: trim(link), Value: trim(value)})
		return nil
	}

	d.state = append(d.state, Parent{
		Name:  trim(parent),
		Links: []Link{{Name: trim(link), Value: trim(value)}},
	})
	return nil
}

// UpsertLink ensures parent exists (creating it if absent) and either
// replaces the existing trimmed value for link, or appends link as new.
func (d *DataFile) UpsertLink(parent, link, value string) error {
	if err := validateParent(parent); err != nil {
		return err
	}
	if err := validateLink(link); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	for i := range d.state {
		if trim(d.state[i].Name) != trim(parent) {
			continue
		}
		for j := range d.state[i].Links {
			if trim(d.state[i].Links[j].Name) == trim(link) {
				d.state[i].Links[j].Value = trim(value)
				return nil
			}
		}
		d.state[i].Links = append(d.state[i].Links, Link{Name: trim(link), Value: trim(value)})
		return nil
	}

	d.state = append(d.state, Parent{
		Name:  trim(parent),
		Links: []Link{{Name: trim(link), Value: trim(value)}},
	})
	return nil
}

// Remove deletes a single link from parent, or the whole parent when link
// is nil. Removing a parent's last link also removes the parent.
func (d *DataFile) Remove(parent string, link *string) error {
	if err := validateParent(parent); err != nil {
		return err
	}

	idx := d.findParent(parent)
	if idx < 0 {
		return newError(KindParentEntityNotFound, fmt.Sprintf("parent entity %q not found", parent))
	}

	if link == nil {
		d.state = append(d.state[:idx], d.state[idx+1:]...)
		return nil
	}

	if err := validateLink(*link); err != nil {
		return err
	}

	links := d.state[idx].Links
	linkIdx := -1
	for i, l := range links {
		if trim(l.Name) == trim(*link) {
			linkIdx = i
			break
		}
	}
	if linkIdx < 0 {
		return newError(KindLinkNotFound, fmt.Sprintf("link %q not found for parent %q", *link, parent))
	}

	d.state[idx].Links = append(links[:linkIdx], links[linkIdx+1:]...)
	if len(d.state[idx].Links) == 0 {
		d.state = append(d.state[:idx], d.state[idx+1:]...)
	}
	return nil
}

// Get returns all link/value pairs for parent (link == nil), or the single
// pair for (parent, *link).
func (d *DataFile) Get(parent string, link *string) ([]Link, error) {
	if err := validateParent(parent); err != nil {
		return nil, err
	}

	idx := d.findParent(parent)
	if idx < 0 {
		return nil, newError(KindParentEntityNotFound, fmt.Sprintf("parent entity %q not found", parent))
	}

	if link == nil {
		out := make([]Link, len(d.state[idx].Links))
		copy(out, d.state[idx].Links)
		return out, nil
	}

	for _, l := range d.state[idx].Links {
		if trim(l.Name) == trim(*link) {
			return []Link{l}, nil
		}
	}
	return nil, newError(KindLinkNotFound, fmt.Sprintf("link %q not found for parent %q", *link, parent))
}

// Import reads a tap-format source file (identical format to the store's
// own data file) and folds its records into the receiver via UpsertLink, so
// conflicting values are overwritten by the imported source. Only
// ImportKindTap is supported; browser formats are out of scope.
func (d *DataFile) Import(kind ImportKind, path string) error {
	if kind != ImportKindTap {
		return newError(KindInvalidFileExtension, "only the tap import format is supported")
	}
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

	imported, err := parseDataFile(string(content))
	if err != nil {
		return err
	}

	for _, p := range imported {
		for _, l := range p.Links {
			if err := d.UpsertLink(p.Name, l.Name, l.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save serializes the current state in canonical order, rewrites the data
// file in a single whole-file write, updates the in-memory state to the
// now-canonical order, and returns the byte offset of each parent's header
// in the just-written bytes.
func (d *DataFile) Save() ([]IndexEntry, error) {
	rendered, sorted, offsets := serializeDataFile(d.state)
	if err := os.WriteFile(d.path, []byte(rendered), 0o644); err != nil {
		return nil, wrapError(KindFileWriteFailed, fmt.Sprintf("could not write data file %s", d.path), err)
	}
	d.state = sorted
	return offsets, nil
}

func (d *DataFile) findParent(parent string) int {
	for i := range d.state {
		if trim(d.state[i].Name) == trim(parent) {
			return i
		}
	}
	return -1
}
