// Package adapter contains process, service, and filesystem adapters for the
// remedy CLI.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/remedy/internal/model"
)

// ErrLinterNotFound indicates the configured linter executable could not be
// located on the host.
var ErrLinterNotFound = errors.New("linter executable not found")

// LinterError describes a linter invocation that ended in an unexpected way.
// It is fatal for the whole run: no issue list can be trusted once the tool
// itself misbehaves.
type LinterError struct {
	Linter   string
	ExitCode int
	Stderr   string
	Stdout   string
	Err      error
}

// Error renders the failure with enough process output to diagnose without
// re-running.
func (e *LinterError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Linter, e.ExitCode)

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg = fmt.Sprintf("%s\nstderr: %s", msg, s)
	}

	if s := strings.TrimSpace(e.Stdout); s != "" {
		msg = fmt.Sprintf("%s\nstdout: %s", msg, s)
	}

	return msg
}

// Unwrap exposes the underlying execution error.
func (e *LinterError) Unwrap() error {
	return e.Err
}

// LinterAdapter invokes the external formatter and checker processes and
// parses their findings.
type LinterAdapter interface {
	// Format runs the linter's formatter over root. Any failure is fatal for
	// the run; no partial formatting state is acceptable.
	Format(ctx context.Context, root m.Path) error

	// Check runs the linter's checker over root and returns the remaining
	// findings. applyFixes adds the linter's own in-place auto-fix pass before
	// it reports. An empty result with a nil error means the tree is clean.
	Check(ctx context.Context, root m.Path, applyFixes bool) ([]m.Issue, error)
}

// LocalLinterAdapter shells out to a ruff-compatible linter binary.
type LocalLinterAdapter struct {
	executable string
}

// NewLocalLinterAdapter constructs a LocalLinterAdapter for the given
// executable name or path.
func NewLocalLinterAdapter(executable string) *LocalLinterAdapter {
	return &LocalLinterAdapter{executable: executable}
}

// Format runs `<linter> format <root>`.
func (a *LocalLinterAdapter) Format(ctx context.Context, root m.Path) error {
	_, _, err := a.run(ctx, "format", string(root))
	if err != nil {
		return err
	}

	return nil
}

// Check runs `<linter> check [--fix] <root> --output-format json`.
// Exit code 0 means no findings. Exit code 1 means findings were emitted as a
// JSON array on stdout. Anything else is a tool failure.
func (a *LocalLinterAdapter) Check(ctx context.Context, root m.Path, applyFixes bool) ([]m.Issue, error) {
	args := []string{"check"}
	if applyFixes {
		args = append(args, "--fix")
	}

	args = append(args, string(root), "--output-format", "json")

	stdout, _, err := a.run(ctx, args...)
	if err == nil {
		return nil, nil
	}

	var linterErr *LinterError
	if !errors.As(err, &linterErr) || linterErr.ExitCode != 1 {
		return nil, err
	}

	issues, parseErr := parseIssues(stdout)
	if parseErr != nil {
		return nil, fmt.Errorf("parse %s findings: %w", a.executable, parseErr)
	}

	return issues, nil
}

// run executes the linter with the given arguments and captures both output
// streams.
func (a *LocalLinterAdapter) run(ctx context.Context, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, a.executable, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return nil, nil, fmt.Errorf("%w: %s", ErrLinterNotFound, a.executable)
	}

	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		err = nil // the exit code carries the story, not the wrapper
	}

	return stdout.Bytes(), stderr.Bytes(), &LinterError{
		Linter:   a.executable,
		ExitCode: exitCode,
		Stderr:   stderr.String(),
		Stdout:   stdout.String(),
		Err:      err,
	}
}

// ruffIssue mirrors one element of ruff's `--output-format json` array.
type ruffIssue struct {
	Code     string       `json:"code"`
	Filename string       `json:"filename"`
	Message  string       `json:"message"`
	Location ruffLocation `json:"location"`
	EndLoc   ruffLocation `json:"end_location"`
	NoqaRow  uint         `json:"noqa_row"`
	URL      string       `json:"url"`
}

type ruffLocation struct {
	Row    uint `json:"row"`
	Column uint `json:"column"`
}

func parseIssues(data []byte) ([]m.Issue, error) {
	var raw []ruffIssue

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	issues := make([]m.Issue, 0, len(raw))

	for _, r := range raw {
		issues = append(issues, m.Issue{
			Filename: r.Filename,
			Code:     r.Code,
			Message:  r.Message,
			Location: m.Location{Row: r.Location.Row, Column: r.Location.Column},
		})
	}

	return issues, nil
}
