package tapstore

import (
	"errors"
	"testing"
)

func TestValidateParent(t *testing.T) {
	for _, name := range []string{
		"search-engines", "repo", "Sure, spaces also are valid!", "parent-entity",
	} {
		if err := validateParent(name); err != nil {
			t.Errorf("validateParent(%q) = %v, want nil", name, err)
		}
	}

	for _, name := range []string{
		"-a", "--add", "-d", "--delete", "--export", "--help", "-i", "--init",
		"--import", "-s", "--show", "-u", "--update", "--upsert", "-v",
		"--version", "--parent-entity", "here", "|",
	} {
		err := validateParent(name)
		if err == nil {
			t.Fatalf("validateParent(%q) = nil, want ReservedKeyword error", name)
		}
		var se *Error
		if !errors.As(err, &se) || se.Kind != KindReservedKeyword {
			t.Errorf("validateParent(%q) kind = %v, want ReservedKeyword", name, err)
		}
	}
}

func TestValidateLink(t *testing.T) {
	if err := validateLink("google"); err != nil {
		t.Errorf("validateLink(google) = %v, want nil", err)
	}
	err := validateLink("search|engines")
	if err == nil {
		t.Fatal("validateLink with pipe = nil, want error")
	}
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindReservedKeyword {
		t.Errorf("validateLink kind = %v, want ReservedKeyword", err)
	}
}

func TestValidateValue(t *testing.T) {
	if err := validateValue("https://google.com"); err != nil {
		t.Errorf("validateValue(url) = %v, want nil", err)
	}
	if err := validateValue("line1\nline2"); err == nil {
		t.Fatal("validateValue with newline = nil, want error")
	}
}
