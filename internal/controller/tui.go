package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/remedy/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. The fix and
// check workflows run the program in the background and feed it messages;
// pre-concurrency phase lines print straight to the output.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.mode == ModeCheck {
		return t.startWithModel(newCheckModel())
	}

	return t.startWithModel(newFixModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(
		model,
		tea.WithOutput(t.output),
		tea.WithMouseCellMotion(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(t.program, t.done)

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

func (t *TUI) ensureStarted() {
	if t.started {
		return
	}

	_ = t.startWithModel(newCheckModel())
}

// Close quits the program and waits for it to release the terminal.
// Safe to call repeatedly and without a prior Start.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.program = nil
	t.done = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the running program. Without a prior
// Start it returns immediately.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayFormatting announces the formatting pass.
func (t *TUI) DisplayFormatting(root m.Path) {
	_, _ = fmt.Fprintf(t.output, "Formatting code in %s...\n", root)
}

// DisplayChecking announces the lint pass.
func (t *TUI) DisplayChecking(linter string, root m.Path) {
	_, _ = fmt.Fprintf(t.output, "Running %s check on %s...\n", linter, root)
}

// DisplayClean reports that the check found nothing to fix.
func (t *TUI) DisplayClean(_ m.Path) {
	_, _ = fmt.Fprintf(t.output, "All good\n")
}

// DisplayConcurrencyInfo shows the fan-out settings for the run.
func (t *TUI) DisplayConcurrencyInfo(files int, issues int, workers int) {
	t.send(concurrencyMsg{files: files, issues: issues, workers: workers})
}

// DisplayFileStart announces that a file's work unit picked up its issues.
func (t *TUI) DisplayFileStart(filename string, issues int) {
	t.send(fileStartMsg{filename: filename, issues: issues})
}

// DisplayFixStart announces one remediation attempt.
func (t *TUI) DisplayFixStart(issue m.Issue) {
	t.send(fixStartMsg{filename: issue.Filename, code: issue.Code, message: issue.Message})
}

// DisplayFixApplied records an adopted fix together with its diff.
func (t *TUI) DisplayFixApplied(issue m.Issue, diff m.Diff) {
	t.send(fixDoneMsg{
		filename: issue.Filename,
		code:     issue.Code,
		message:  issue.Message,
		status:   string(m.FixApplied),
		diff:     diff.String(),
	})
}

// DisplayFixFailed records a remediation attempt that left the content unchanged.
func (t *TUI) DisplayFixFailed(issue m.Issue, err error) {
	t.send(fixDoneMsg{
		filename: issue.Filename,
		code:     issue.Code,
		message:  err.Error(),
		status:   string(m.FixFailed),
	})
}

// DisplayFileDone reports the terminal state of one file.
func (t *TUI) DisplayFileDone(report m.FileReport) {
	t.send(fileDoneMsg{report: report})
}

// DisplaySummary switches the program to the results view.
func (t *TUI) DisplaySummary(run m.RunReport) {
	t.send(summaryMsg{run: run})
}

// DisplayIssues feeds the outstanding findings to the issue list view.
func (t *TUI) DisplayIssues(issues []m.Issue) error {
	t.ensureStarted()
	t.send(issuesMsg{issues: issues})

	return nil
}

// DisplayRuns prints the stored run reports, oldest first.
func (t *TUI) DisplayRuns(runs []m.RunReport) error {
	if len(runs) == 0 {
		_, _ = fmt.Fprintf(t.output, "No stored runs\n")

		return nil
	}

	for _, run := range runs {
		_, _ = fmt.Fprintf(t.output, "%s  %s  %s  files=%d fixed=%d failed=%d\n",
			run.StartedAt.Format("2006-01-02 15:04:05"),
			shortRunID(run.ID),
			run.Root,
			len(run.Files),
			run.Applied(),
			run.Failed(),
		)
	}

	return nil
}
