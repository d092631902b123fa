// Package tapstore implements the persistent two-file key-value store
// behind the tap bookmark manager: a text data file holding every
// (parent -> link -> value) record, and an index file mapping each parent
// to the byte offset of its header in the data file.
package tapstore

import "strings"

// Link is a single named pointer owned by exactly one Parent.
type Link struct {
	Name  string
	Value string
}

// Parent is a named group owning an ordered sequence of Links.
type Parent struct {
	Name  string
	Links []Link
}

// IndexEntry maps a parent name to the byte offset of its header line in
// the most recently serialized data file.
type IndexEntry struct {
	Parent string
	Offset int64
}

// reserved is the process-wide set of tokens that cannot be used as parent
// names, because the CLI dispatcher (out of scope for this package) uses
// the first argument to choose a command.
var reserved = map[string]struct{}{
	"-a":              {},
	"--add":           {},
	"-d":              {},
	"--delete":        {},
	"--export":        {},
	"--help":          {},
	"-i":              {},
	"--init":          {},
	"--import":        {},
	"-s":              {},
	"--show":          {},
	"-u":              {},
	"--update":        {},
	"--upsert":        {},
	"-v":              {},
	"--version":       {},
	"--parent-entity": {},
	"here":            {},
	"|":               {},
}

// trim is the canonical whitespace-trimming used for names and values
// throughout the store: both on store (write) and on comparison (read).
func trim(s string) string {
	return strings.TrimSpace(s)
}
