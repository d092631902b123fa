package tapstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempIndexPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".tap_index")
}

func TestLoadIndexFile_MissingFileCreatesEmpty(t *testing.T) {
	path := tempIndexPath(t)
	idx, err := LoadIndexFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.entries) != 0 {
		t.Fatalf("entries = %+v, want empty", idx.entries)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
}

func TestLoadIndexFile_ParsesExisting(t *testing.T) {
	path := tempIndexPath(t)
	if err := os.WriteFile(path, []byte("parent1|0\nparent2|14\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	idx, err := LoadIndexFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.entries) != 2 || idx.entries[0].Parent != "parent1" || idx.entries[1].Offset != 14 {
		t.Fatalf("entries = %+v", idx.entries)
	}
}

func TestIndexFile_UpdateAndSave(t *testing.T) {
	path := tempIndexPath(t)
	idx, _ := LoadIndexFile(path)
	idx.Update([]IndexEntry{{Parent: "parent1", Offset: 0}, {Parent: "parent2", Offset: 14}})
	if err := idx.Save(); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "parent1|0\nparent2|14\n"
	if string(content) != want {
		t.Fatalf("content = %q, want %q", content, want)
	}
}

func TestIndexFile_RoundTrip(t *testing.T) {
	path := tempIndexPath(t)
	idx, _ := LoadIndexFile(path)
	idx.Update([]IndexEntry{{Parent: "b", Offset: 10}, {Parent: "a", Offset: 0}})
	if err := idx.Save(); err != nil {
		t.Fatal(err)
	}
	reloaded, err := LoadIndexFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.entries) != 2 || reloaded.entries[0].Parent != "a" || reloaded.entries[1].Parent != "b" {
		t.Fatalf("reloaded = %+v", reloaded.entries)
	}
}

func TestIndexFile_FindParentOffsetAndLength_NotLast(t *testing.T) {
	idx := &IndexFile{entries: []IndexEntry{{Parent: "repo", Offset: 0}, {Parent: "search-engines", Offset: 26}}}
	offset, length, err := idx.FindParentOffsetAndLength("repo")
	if err != nil {
		t.Fatal(err)
	}
	if offset != 0 || length != 26 {
		t.Fatalf("offset=%d length=%d, want 0,26", offset, length)
	}
}

func TestIndexFile_FindParentOffsetAndLength_LastEntryReturnsZeroLength(t *testing.T) {
	idx := &IndexFile{entries: []IndexEntry{{Parent: "repo", Offset: 0}, {Parent: "search-engines", Offset: 26}}}
	offset, length, err := idx.FindParentOffsetAndLength("search-engines")
	if err != nil {
		t.Fatal(err)
	}
	if offset != 26 || length != 0 {
		t.Fatalf("offset=%d length=%d, want 26,0", offset, length)
	}
}

func TestIndexFile_FindParentOffsetAndLength_NotFound(t *testing.T) {
	idx := &IndexFile{}
	_, _, err := idx.FindParentOffsetAndLength("missing")
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindParseError {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestIndexFile_Parents(t *testing.T) {
	idx := &IndexFile{entries: []IndexEntry{{Parent: "a", Offset: 0}, {Parent: "b", Offset: 10}}}
	got := idx.Parents()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Parents() = %v", got)
	}
}
