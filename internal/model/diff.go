package model

import (
	"fmt"
	"strings"
)

// DiffKind marks a diff line as removed or added.
type DiffKind string

const (
	// DiffRemoved marks a line present in the original content only.
	DiffRemoved DiffKind = "-"
	// DiffAdded marks a line present in the fixed content only.
	DiffAdded DiffKind = "+"
)

// DiffLine is one changed line at a given 1-indexed row.
type DiffLine struct {
	Kind DiffKind
	Row  int
	Text string
}

// Diff is a positional comparison of two content snapshots. Only changed
// rows appear; unchanged rows produce no lines.
type Diff struct {
	Lines []DiffLine
}

// Empty reports whether the two snapshots compared equal line by line.
func (d Diff) Empty() bool {
	return len(d.Lines) == 0
}

// String renders the diff with "--- Original" / "+++ Fixed" headers followed
// by one "- " or "+ " prefixed line per change.
func (d Diff) String() string {
	var b strings.Builder

	b.WriteString("--- Original\n")
	b.WriteString("+++ Fixed\n")

	for _, line := range d.Lines {
		fmt.Fprintf(&b, "%s %s\n", line.Kind, line.Text)
	}

	return b.String()
}
