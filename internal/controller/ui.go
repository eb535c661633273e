// Package controller provides output adapters for displaying remediation progress and results.
package controller

import (
	m "github.com/mouse-blink/remedy/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFix StartMode = iota
	ModeCheck
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFixMode sets the UI to fix execution mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithCheckMode sets the UI to issue listing mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// UI defines the interface for displaying remediation progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
//
//nolint:interfacebloat // Fine-grained display events keep the workflow decoupled from rendering.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayFormatting(root m.Path)
	DisplayChecking(linter string, root m.Path)
	DisplayClean(root m.Path)
	DisplayConcurrencyInfo(files int, issues int, workers int)
	DisplayFileStart(filename string, issues int)
	DisplayFixStart(issue m.Issue)
	DisplayFixApplied(issue m.Issue, diff m.Diff)
	DisplayFixFailed(issue m.Issue, err error)
	DisplayFileDone(report m.FileReport)
	DisplaySummary(run m.RunReport)
	DisplayIssues(issues []m.Issue) error
	DisplayRuns(runs []m.RunReport) error
}
