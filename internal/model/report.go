package model

import "time"

// FixStatus represents the outcome of one remediation attempt.
type FixStatus string

const (
	// FixApplied means the service returned replacement content and it was
	// adopted as the file's current content.
	FixApplied FixStatus = "fixed"
	// FixFailed means the remediation call failed; the content was left
	// unchanged and processing moved on to the next issue.
	FixFailed FixStatus = "failed"
)

// FileStatus represents the terminal state of one file's remediation.
type FileStatus string

const (
	// FileRemediated means every issue was attempted and the write phase
	// resolved without error.
	FileRemediated FileStatus = "remediated"
	// FileReadFailed means the initial content load failed; no fixes were
	// attempted and no write occurred.
	FileReadFailed FileStatus = "read-failed"
	// FileWriteFailed means the final write failed after all issues were
	// attempted.
	FileWriteFailed FileStatus = "write-failed"
)

// FixReport records one remediation attempt for one issue.
type FixReport struct {
	Issue  Issue
	Status FixStatus
	Diff   string // rendered positional diff, empty when the fix failed
	Err    string // failure message, empty when the fix applied
}

// FileReport records the outcome of one file's remediation lifecycle.
type FileReport struct {
	Filename string
	Status   FileStatus
	Written  bool // false when the run was dry or the file never reached a write
	Fixes    []FixReport
	Err      string // read/write failure message, empty otherwise
}

// Applied counts the fixes that were adopted for this file.
func (fr FileReport) Applied() int {
	count := 0

	for _, fix := range fr.Fixes {
		if fix.Status == FixApplied {
			count++
		}
	}

	return count
}

// Failed counts the fixes that did not apply for this file.
func (fr FileReport) Failed() int {
	return len(fr.Fixes) - fr.Applied()
}

// RunReport aggregates one remediation run for display and persistence.
type RunReport struct {
	ID        string
	Root      Path
	Linter    string
	Model     string
	StartedAt time.Time
	Duration  time.Duration
	Clean     bool // the initial check reported zero issues
	Files     []FileReport
}

// TotalIssues counts every remediation attempt across all files.
func (r RunReport) TotalIssues() int {
	total := 0

	for _, file := range r.Files {
		total += len(file.Fixes)
	}

	return total
}

// Applied counts adopted fixes across all files.
func (r RunReport) Applied() int {
	total := 0

	for _, file := range r.Files {
		total += file.Applied()
	}

	return total
}

// Failed counts failed fixes across all files.
func (r RunReport) Failed() int {
	return r.TotalIssues() - r.Applied()
}
