package tapstore

import (
	"fmt"
	"strings"
)

// validateParent rejects a reserved token as a parent name. The check is
// exact-equality against the untrimmed input: the CLI dispatcher that
// motivates this restriction sees raw argv, not a trimmed string.
func validateParent(parent string) error {
	if _, ok := reserved[parent]; ok {
		return newError(KindReservedKeyword, fmt.Sprintf("parent entity name %q is reserved", parent))
	}
	return nil
}

// validateLink rejects a link name containing '|', the data file's field
// separator.
func validateLink(link string) error {
	if strings.Contains(link, "|") {
		return newError(KindReservedKeyword, fmt.Sprintf("link name %q contains a vertical bar '|' which is reserved", link))
	}
	return nil
}

// validateValue rejects a link value containing a newline, which would
// break the one-line-per-record data file format.
func validateValue(value string) error {
	if strings.Contains(value, "\n") {
		return newError(KindReservedKeyword, "link value must not contain a newline")
	}
	return nil
}
