package tapstore

// DataStore is the read/write façade composing a DataFile and an
// IndexFile: every mutation rewrites the data file in full, installs the
// resulting offsets into the index, and rewrites the index file in full.
// If any step fails the error is surfaced and partial state may remain —
// there is no rollback, so a failure partway through a save can leave the
// data file and index file out of sync with each other.
type DataStore struct {
	data  *DataFile
	index *IndexFile
}

// NewDataStore constructs a DataStore. When dir is non-nil, the data and
// index files live at dir/.tap_data and dir/.tap_index; otherwise they
// live alongside the current executable. Both files are created empty if
// missing.
func NewDataStore(dir *string) (*DataStore, error) {
	dataPath, indexPath, err := resolvePaths(dir)
	if err != nil {
		return nil, err
	}

	data, err := LoadDataFile(dataPath, nil)
	if err != nil {
		return nil, err
	}
	index, err := LoadIndexFile(indexPath)
	if err != nil {
		return nil, err
	}
	return &DataStore{data: data, index: index}, nil
}

func resolvePaths(dir *string) (dataPath, indexPath string, err error) {
	if dir != nil {
		d, i := PathsInDir(*dir)
		return d, i, nil
	}
	return DefaultPaths()
}

// persist rewrites the data file, installs the fresh offsets into the
// index, and rewrites the index file. This is the single transaction
// helper shared by every mutating DataStore operation.
func (s *DataStore) persist() error {
	offsets, err := s.data.Save()
	if err != nil {
		return err
	}
	s.index.Update(offsets)
	return s.index.Save()
}

// AddLink adds a new link under parent, failing with LinkAlreadyExists if
// it is already present.
func (s *DataStore) AddLink(parent, link, value string) error {
	if err := s.data.AddLink(parent, link, value); err != nil {
		return err
	}
	return s.persist()
}

// UpsertLink adds or replaces a link under parent.
func (s *DataStore) UpsertLink(parent, link, value string) error {
	if err := s.data.UpsertLink(parent, link, value); err != nil {
		return err
	}
	return s.persist()
}

// Delete removes a single link (link non-nil) or an entire parent (link
// nil).
func (s *DataStore) Delete(parent string, link *string) error {
	if err := s.data.Remove(parent, link); err != nil {
		return err
	}
	return s.persist()
}

// Import folds the records of a tap-format source file at path into the
// store, overwriting conflicting local values.
func (s *DataStore) Import(path string, kind ImportKind) error {
	if err := s.data.Import(kind, path); err != nil {
		return err
	}
	return s.persist()
}

// ReadLinkSlow returns a single link's value without consulting the index.
// Intended only for fallbacks and diagnostics; ReadDataStore is the
// indexed, fast path for single-parent reads.
func (s *DataStore) ReadLinkSlow(parent, link string) (Link, error) {
	links, err := s.data.Get(parent, &link)
	if err != nil {
		return Link{}, err
	}
	return links[0], nil
}

// ReadParentSlow returns every link under parent without consulting the
// index.
func (s *DataStore) ReadParentSlow(parent string) ([]Link, error) {
	return s.data.Get(parent, nil)
}

// Parents returns the ordered list of parent names currently indexed, used
// by the "show all parents" command.
func (s *DataStore) Parents() []string {
	return s.index.Parents()
}
