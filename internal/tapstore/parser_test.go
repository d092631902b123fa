package tapstore

import (
	"errors"
	"testing"
)

func TestParseDataFile_Empty(t *testing.T) {
	state, err := parseDataFile("")
	if err != nil {
		t.Fatalf("parseDataFile(empty) error = %v", err)
	}
	if len(state) != 0 {
		t.Fatalf("parseDataFile(empty) = %v, want empty", state)
	}
}

func TestParseDataFile_OneParent(t *testing.T) {
	state, err := parseDataFile("parent1->\nlink1|value1\nlink2|value2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Parent{{
		Name: "parent1",
		Links: []Link{
			{Name: "link1", Value: "value1"},
			{Name: "link2", Value: "value2"},
		},
	}}
	if !parentsEqual(state, want) {
		t.Fatalf("parseDataFile = %+v, want %+v", state, want)
	}
}

func TestParseDataFile_TwoParents(t *testing.T) {
	content := "search engines->\ngoogle|www.google.com\nyahoo|www.yahoo.com\ncoding->\ngh|https://github.com"
	state, err := parseDataFile(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Parent{
		{Name: "search engines", Links: []Link{
			{Name: "google", Value: "www.google.com"},
			{Name: "yahoo", Value: "www.yahoo.com"},
		}},
		{Name: "coding", Links: []Link{{Name: "gh", Value: "https://github.com"}}},
	}
	if !parentsEqual(state, want) {
		t.Fatalf("parseDataFile = %+v, want %+v", state, want)
	}
}

func TestParseDataFile_OrphanLinkIsParseError(t *testing.T) {
	_, err := parseDataFile("orphan|value\n")
	requireParseError(t, err)
}

func TestParseDataFile_InvalidLine(t *testing.T) {
	_, err := parseDataFile("search engines->\ngoogle|www.google.com\ninvalid link")
	requireParseError(t, err)
}

func TestParseDataFile_EmptyParentDropped(t *testing.T) {
	state, err := parseDataFile("invalid parent->\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state) != 0 {
		t.Fatalf("parseDataFile(header with no links) = %v, want empty", state)
	}
}

func TestParseDataFile_RandomText(t *testing.T) {
	_, err := parseDataFile("Something that is completely not a data file was read")
	requireParseError(t, err)
}

func TestParseIndexFile(t *testing.T) {
	entries, err := parseIndexFile("parent1|0\nparent2|14\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []IndexEntry{{Parent: "parent1", Offset: 0}, {Parent: "parent2", Offset: 14}}
	if len(entries) != len(want) {
		t.Fatalf("parseIndexFile = %+v, want %+v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("parseIndexFile[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseIndexFile_NonIntegerOffset(t *testing.T) {
	_, err := parseIndexFile("parent1|abc\n")
	requireParseError(t, err)
}

func TestParseIndexFile_MissingSeparator(t *testing.T) {
	_, err := parseIndexFile("parent1 0\n")
	requireParseError(t, err)
}

func TestParseIndexFile_NegativeOffsetRejected(t *testing.T) {
	_, err := parseIndexFile("parent1|-5\n")
	requireParseError(t, err)
}

func requireParseError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected ParseError, got nil")
	}
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindParseError {
		t.Fatalf("error = %v, want ParseError", err)
	}
}

func parentsEqual(a, b []Parent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || len(a[i].Links) != len(b[i].Links) {
			return false
		}
		for j := range a[i].Links {
			if a[i].Links[j] != b[i].Links[j] {
				return false
			}
		}
	}
	return true
}
