package tapstore

import (
	"sort"
	"strconv"
	"strings"
)

// serializeDataFile renders parents into the canonical on-disk format:
// parents sorted by trimmed name, links within each parent sorted by
// trimmed name, two-space link indentation, LF line endings, no blank
// lines or trailing separators. It returns the rendered bytes alongside
// the byte offset of each parent's header in those bytes, counted from 0.
//
// serializeDataFile does not mutate its input; callers that need the
// canonical order reflected back into their own state (DataFile.Save does)
// should use the returned, freshly sorted copy.
func serializeDataFile(parents []Parent) (string, []Parent, []IndexEntry) {
	sorted := make([]Parent, len(parents))
	copy(sorted, parents)
	sort.Slice(sorted, func(i, j int) bool {
		return trim(sorted[i].Name) < trim(sorted[j].Name)
	})
	for i := range sorted {
		links := make([]Link, len(sorted[i].Links))
		copy(links, sorted[i].Links)
		sort.Slice(links, func(a, b int) bool {
			return trim(links[a].Name) < trim(links[b].Name)
		})
		sorted[i].Links = links
	}

	var buf strings.Builder
	offsets := make([]IndexEntry, 0, len(sorted))
	for _, p := range sorted {
		offsets = append(offsets, IndexEntry{Parent: trim(p.Name), Offset: int64(buf.Len())})
		buf.WriteString(trim(p.Name))
		buf.WriteString("->\n")
		for _, l := range p.Links {
			buf.WriteString("  ")
			buf.WriteString(trim(l.Name))
			buf.WriteByte('|')
			buf.WriteString(trim(l.Value))
			buf.WriteByte('\n')
		}
	}
	return buf.String(), sorted, offsets
}

// serializeIndexFile renders index entries sorted by trimmed parent name,
// one "<parent>|<offset>" line per entry with a trailing newline.
func serializeIndexFile(entries []IndexEntry) string {
	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return trim(sorted[i].Parent) < trim(sorted[j].Parent)
	})

	var buf strings.Builder
	for _, e := range sorted {
		buf.WriteString(trim(e.Parent))
		buf.WriteByte('|')
		buf.WriteString(strconv.FormatInt(e.Offset, 10))
		buf.WriteByte('\n')
	}
	return buf.String()
}
