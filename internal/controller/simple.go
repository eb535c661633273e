package controller

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/remedy/internal/model"
)

const timeRounding = 10 * time.Millisecond

// SimpleUI implements UI using cobra Command's output streams. Display
// methods may be called from concurrent work units, so every write goes
// through one mutex.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; plain output has nothing to wait for.
func (s *SimpleUI) Wait() {

}

// DisplayFormatting announces the formatting pass.
func (s *SimpleUI) DisplayFormatting(root m.Path) {
	s.printf("Formatting code in %s...\n", root)
}

// DisplayChecking announces the lint pass.
func (s *SimpleUI) DisplayChecking(linter string, root m.Path) {
	s.printf("Running %s check on %s...\n", linter, root)
}

// DisplayClean reports that the check found nothing to fix.
func (s *SimpleUI) DisplayClean(_ m.Path) {
	s.printf("All good\n")
}

// DisplayConcurrencyInfo shows the fan-out settings for the run.
func (s *SimpleUI) DisplayConcurrencyInfo(files int, issues int, workers int) {
	if workers > 0 {
		s.printf("Fixing %d issue(s) across %d file(s) with %d worker(s)\n", issues, files, workers)

		return
	}

	s.printf("Fixing %d issue(s) across %d file(s), one worker per file\n", issues, files)
}

// DisplayFileStart announces that a file's work unit picked up its issues.
func (s *SimpleUI) DisplayFileStart(filename string, _ int) {
	s.printf("Processing file: %s\n", filename)
}

// DisplayFixStart announces one remediation attempt.
func (s *SimpleUI) DisplayFixStart(issue m.Issue) {
	s.printf("Fixing issue in %s: %s\n", issue.Filename, issue.Message)
}

// DisplayFixApplied prints the positional diff for an adopted fix.
func (s *SimpleUI) DisplayFixApplied(_ m.Issue, diff m.Diff) {
	s.printf("%s", diff.String())
}

// DisplayFixFailed reports a remediation attempt that left the content unchanged.
func (s *SimpleUI) DisplayFixFailed(issue m.Issue, err error) {
	s.errf("Error processing %s: %v\n", issue.Filename, err)
}

// DisplayFileDone reports the terminal state of one file.
func (s *SimpleUI) DisplayFileDone(report m.FileReport) {
	switch report.Status {
	case m.FileReadFailed:
		s.errf("Error reading %s: %s\n", report.Filename, report.Err)
	case m.FileWriteFailed:
		s.errf("Error writing to %s: %s\n", report.Filename, report.Err)
	case m.FileRemediated:
		if report.Written {
			s.printf("Fixed issues in %s\n", report.Filename)
		} else {
			s.printf("Dry run: skipped writing %s\n", report.Filename)
		}
	}
}

// DisplaySummary prints the per-file outcome table for a finished run.
func (s *SimpleUI) DisplaySummary(run m.RunReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Issues", "Fixed", "Failed", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, file := range run.Files {
		table.Append([]string{
			file.Filename,
			fmt.Sprintf("%d", len(file.Fixes)),
			fmt.Sprintf("%d", file.Applied()),
			fmt.Sprintf("%d", file.Failed()),
			fileStatusLabel(file),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(run.Files)),
		fmt.Sprintf("%d", run.TotalIssues()),
		fmt.Sprintf("%d", run.Applied()),
		fmt.Sprintf("%d", run.Failed()),
		run.Duration.Round(timeRounding).String(),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// DisplayIssues prints the outstanding findings as a table.
func (s *SimpleUI) DisplayIssues(issues []m.Issue) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Code", "Location", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	files := make(map[string]struct{})

	for _, issue := range issues {
		files[issue.Filename] = struct{}{}

		table.Append([]string{
			issue.Code,
			fmt.Sprintf("%s:%d:%d", issue.Filename, issue.Location.Row, issue.Location.Column),
			issue.Message,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		fmt.Sprintf("%d", len(issues)),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRuns prints the stored run reports as a table, oldest first.
func (s *SimpleUI) DisplayRuns(runs []m.RunReport) error {
	if len(runs) == 0 {
		s.printf("No stored runs\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Started", "Run", "Root", "Files", "Fixed", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, run := range runs {
		table.Append([]string{
			run.StartedAt.Format("2006-01-02 15:04:05"),
			shortRunID(run.ID),
			string(run.Root),
			fmt.Sprintf("%d", len(run.Files)),
			fmt.Sprintf("%d", run.Applied()),
			fmt.Sprintf("%d", run.Failed()),
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func shortRunID(id string) string {
	if len(id) <= 8 {
		return id
	}

	return id[:8]
}

func fileStatusLabel(report m.FileReport) string {
	switch report.Status {
	case m.FileReadFailed:
		return "read error"
	case m.FileWriteFailed:
		return "write error"
	case m.FileRemediated:
		if report.Written {
			return "written"
		}

		return "dry run"
	}

	return string(report.Status)
}
