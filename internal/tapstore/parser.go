package tapstore

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDataFile parses the canonical (or tolerant-whitespace) textual data
// file format into an ordered sequence of parents, each with an ordered
// sequence of links.
//
//	<parent>->
//	  <link>|<value>
//
// Blank lines are ignored. A line ending in "->" (and containing no '|')
// starts a new parent; leading/trailing whitespace on the header line is
// part of the stored (untrimmed) name, trimmed later on store/compare. A
// line containing '|' is a link line, split on the first '|' into
// (link, value), both stored trimmed. A link line before any parent header is a parse error. A
// parent header followed by no link lines before EOF or the next header is
// silently dropped — an empty parent is never represented in state. Any
// other non-blank line is a parse error.
func parseDataFile(content string) ([]Parent, error) {
	var state []Parent
	var curParent string
	var curLinks []Link
	haveParent := false

	flush := func() {
		if haveParent && len(curLinks) > 0 {
			state = append(state, Parent{Name: curParent, Links: curLinks})
		}
		curLinks = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case strings.HasSuffix(line, "->") && !strings.Contains(line, "|"):
			flush()
			curParent = strings.TrimSuffix(line, "->")
			haveParent = true
			if err := validateParent(trim(curParent)); err != nil {
				return nil, err
			}
		case strings.Contains(line, "|"):
			if !haveParent {
				return nil, newError(KindParseError, fmt.Sprintf(
					"link line %q has no preceding parent header", line))
			}
			link, value, _ := strings.Cut(line, "|")
			if err := validateLink(trim(link)); err != nil {
				return nil, err
			}
			curLinks = append(curLinks, Link{Name: trim(link), Value: trim(value)})
		default:
			return nil, newError(KindParseError, fmt.Sprintf(
				"line %q does not match expected format of 'parent->' or '  link|value'", line))
		}
	}
	flush()

	return state, nil
}

// parseIndexFile parses the index file format, one entry per line of
// "<parent>|<offset>". A malformed or non-integer offset is a parse error.
func parseIndexFile(content string) ([]IndexEntry, error) {
	var entries []IndexEntry
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.Contains(line, "|") {
			return nil, newError(KindParseError, fmt.Sprintf(
				"line %q does not match expected format of 'parent|offset'", line))
		}
		parent, offsetStr, _ := strings.Cut(line, "|")
		offset, err := parseOffset(offsetStr)
		if err != nil {
			return nil, newError(KindParseError, fmt.Sprintf(
				"line %q does not have a valid offset: %v", line, err))
		}
		entries = append(entries, IndexEntry{Parent: parent, Offset: offset})
	}
	return entries, nil
}

// parseOffset parses a non-negative decimal integer, rejecting signs so that
// a literal "-5" is a parse error rather than silently accepted by strconv.
func parseOffset(s string) (int64, error) {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, fmt.Errorf("offset %q is not a non-negative decimal integer", s)
	}
	return strconv.ParseInt(s, 10, 64)
}
