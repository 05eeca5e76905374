package fla

import (
	"strings"

	"github.com/tsawler/fla/domdoc"
)

// FormatWarnings joins warnings into one human-readable string, one per
// line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// CountWarnings totals the omitted items per kind. A warning standing for
// several items, such as a run of curve segments, adds its Count.
func CountWarnings(warnings []Warning) map[domdoc.WarningKind]int {
	counts := make(map[domdoc.WarningKind]int)
	for _, w := range warnings {
		n := w.Count
		if n < 1 {
			n = 1
		}
		counts[w.Kind] += n
	}
	return counts
}
