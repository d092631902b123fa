package tapstore

import "fmt"

// ReadDataStore is the read-only façade optimized for single-parent
// queries: it opens the index once, seeks to the requested parent's byte
// range in the data file, and parses only that slice. It never writes and
// never holds the data file handle open beyond construction.
type ReadDataStore struct {
	parent string
	data   *DataFile
}

// NewReadDataStore opens the index file (dir override, or the executable's
// directory when dir is nil), locates parent's byte range, and loads only
// that slice of the data file.
func NewReadDataStore(dir *string, parent string) (*ReadDataStore, error) {
	dataPath, indexPath, err := resolvePaths(dir)
	if err != nil {
		return nil, err
	}

	index, err := LoadIndexFile(indexPath)
	if err != nil {
		return nil, err
	}

	offset, length, err := index.FindParentOffsetAndLength(parent)
	if err != nil {
		return nil, err
	}

	data, err := LoadDataFile(dataPath, &Slice{Offset: offset, Length: length})
	if err != nil {
		return nil, err
	}

	return &ReadDataStore{parent: parent, data: data}, nil
}

// ReadLink returns the (link, value) pair for link under the store's
// bound parent. ParentEntityNotFound is returned if the seeked slice
// parsed to a different parent than expected (a stale index pointing at
// the wrong offset).
func (r *ReadDataStore) ReadLink(parent, link string) (Link, error) {
	if err := r.checkParent(parent); err != nil {
		return Link{}, err
	}
	links, err := r.data.Get(parent, &link)
	if err != nil {
		return Link{}, err
	}
	return links[0], nil
}

// ReadParent returns the full ordered list of (link, value) pairs for
// parent.
func (r *ReadDataStore) ReadParent(parent string) ([]Link, error) {
	if err := r.checkParent(parent); err != nil {
		return nil, err
	}
	return r.data.Get(parent, nil)
}

// Links returns just the link names under parent.
func (r *ReadDataStore) Links(parent string) ([]string, error) {
	pairs, err := r.ReadParent(parent)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(pairs))
	for i, l := range pairs {
		names[i] = l.Name
	}
	return names, nil
}

func (r *ReadDataStore) checkParent(parent string) error {
	if trim(parent) != trim(r.parent) {
		return newError(KindParentEntityNotFound, fmt.Sprintf(
			"read data store was constructed for parent %q, not %q", r.parent, parent))
	}
	return nil
}
