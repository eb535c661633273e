// Package model defines the data structures for lint remediation.
package model

// Path represents a file system path.
type Path string

// Location pinpoints a finding inside a file. Row and Column are 1-indexed
// into the file content as it was when the linter scanned it; they are not
// re-validated after the content mutates.
type Location struct {
	Row    uint
	Column uint
}

// Issue is a single linter finding. Instances are created once from linter
// output and are read-only afterwards.
type Issue struct {
	Filename string
	Code     string
	Message  string
	Location Location
}

// IssueGroup maps a filename to the ordered issues reported for that file.
// Order within a group follows the linter's emission order.
type IssueGroup map[string][]Issue
