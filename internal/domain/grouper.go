// Package domain implements the remediation pipeline: grouping linter
// findings, driving per-file fix sequences, and orchestrating the fan-out.
package domain

import (
	m "github.com/mouse-blink/remedy/internal/model"
)

// GroupIssues partitions a flat issue list into per-file groups. It is a
// deterministic single pass: issues with the same filename accumulate into
// the same list in encounter order. Nothing is filtered or deduplicated — a
// finding reported twice is remediated twice, since an earlier fix may
// resolve or reintroduce it.
func GroupIssues(issues []m.Issue) m.IssueGroup {
	groups := make(m.IssueGroup)

	for _, issue := range issues {
		groups[issue.Filename] = append(groups[issue.Filename], issue)
	}

	return groups
}
