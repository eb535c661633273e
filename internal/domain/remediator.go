package domain

import (
	"context"

	"github.com/mouse-blink/remedy/internal/adapter"
	"github.com/mouse-blink/remedy/internal/controller"
	m "github.com/mouse-blink/remedy/internal/model"
)

// Remediator owns one file's remediation lifecycle: read the content once,
// apply the file's issues in order through the fix service, and write the
// final content back exactly once.
type Remediator interface {
	RemediateFile(ctx context.Context, filename string, issues []m.Issue) m.FileReport
}

// fileWorkUnit is the transient per-file state. It exists only between the
// read and the write; each successful fix replaces content wholesale.
type fileWorkUnit struct {
	filename string
	content  string
	issues   []m.Issue
}

type remediator struct {
	fsAdapter adapter.SourceFSAdapter
	fixer     adapter.FixerAdapter
	ui        controller.UI
	dryRun    bool
}

// NewRemediator constructs a Remediator backed by the provided filesystem
// and fix-service adapters. With dryRun set, the write phase resolves
// without touching the disk.
func NewRemediator(fsAdapter adapter.SourceFSAdapter, fixer adapter.FixerAdapter, ui controller.UI, dryRun bool) Remediator {
	return &remediator{
		fsAdapter: fsAdapter,
		fixer:     fixer,
		ui:        ui,
		dryRun:    dryRun,
	}
}

// RemediateFile drives the file through reading, per-issue fixing, and the
// single final write. Fix failures are isolated per issue: the content stays
// unchanged and the next issue is attempted against it. Only read and write
// failures are terminal for the file, and even those never propagate as
// errors — every outcome lands in the FileReport.
func (r *remediator) RemediateFile(ctx context.Context, filename string, issues []m.Issue) m.FileReport {
	report := m.FileReport{Filename: filename}

	r.ui.DisplayFileStart(filename, len(issues))

	raw, err := r.fsAdapter.ReadFile(m.Path(filename))
	if err != nil {
		report.Status = m.FileReadFailed
		report.Err = err.Error()
		r.ui.DisplayFileDone(report)

		return report
	}

	unit := fileWorkUnit{filename: filename, content: string(raw), issues: issues}

	for _, issue := range unit.issues {
		r.ui.DisplayFixStart(issue)

		report.Fixes = append(report.Fixes, r.applyFix(ctx, &unit, issue))
	}

	report.Status = m.FileRemediated

	if !r.dryRun {
		if err := r.fsAdapter.WriteFile(m.Path(filename), []byte(unit.content), 0o644); err != nil {
			report.Status = m.FileWriteFailed
			report.Err = err.Error()
		} else {
			report.Written = true
		}
	}

	r.ui.DisplayFileDone(report)

	return report
}

// applyFix requests replacement content for one issue. On success the unit
// adopts the new content and the diff against the previous snapshot is
// emitted; on failure the unit is left untouched.
func (r *remediator) applyFix(ctx context.Context, unit *fileWorkUnit, issue m.Issue) m.FixReport {
	fixed, err := r.fixer.ProposeFix(ctx, issue, unit.content)
	if err != nil {
		r.ui.DisplayFixFailed(issue, err)

		return m.FixReport{Issue: issue, Status: m.FixFailed, Err: err.Error()}
	}

	diff := ComputeDiff(unit.content, fixed)
	unit.content = fixed

	r.ui.DisplayFixApplied(issue, diff)

	return m.FixReport{Issue: issue, Status: m.FixApplied, Diff: diff.String()}
}
