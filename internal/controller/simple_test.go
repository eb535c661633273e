package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/remedy/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return NewSimpleUI(cmd), &out, &errOut
}

func TestSimpleUI_ProgressLines(t *testing.T) {
	ui, out, _ := newBufferedUI()

	ui.DisplayFormatting("/project")
	ui.DisplayChecking("ruff", "/project")
	ui.DisplayClean("/project")

	got := out.String()
	want := "Formatting code in /project...\n" +
		"Running ruff check on /project...\n" +
		"All good\n"

	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSimpleUI_DisplayConcurrencyInfo(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    string
	}{
		{"bounded", 4, "Fixing 7 issue(s) across 3 file(s) with 4 worker(s)\n"},
		{"unbounded", 0, "Fixing 7 issue(s) across 3 file(s), one worker per file\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out, _ := newBufferedUI()

			ui.DisplayConcurrencyInfo(3, 7, tt.workers)

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplayFixApplied_RendersDiff(t *testing.T) {
	ui, out, _ := newBufferedUI()

	diff := m.Diff{Lines: []m.DiffLine{
		{Kind: m.DiffRemoved, Row: 2, Text: "b"},
		{Kind: m.DiffAdded, Row: 2, Text: "x"},
	}}

	ui.DisplayFixApplied(m.Issue{Filename: "app.py"}, diff)

	want := "--- Original\n+++ Fixed\n- b\n+ x\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestSimpleUI_DisplayFixFailed_GoesToStderr(t *testing.T) {
	ui, out, errOut := newBufferedUI()

	issue := m.Issue{Filename: "app.py", Message: "unused import"}
	ui.DisplayFixFailed(issue, errors.New("service down"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}

	got := errOut.String()
	if !strings.Contains(got, "app.py") || !strings.Contains(got, "service down") {
		t.Errorf("stderr = %q", got)
	}
}

func TestSimpleUI_DisplayFileDone(t *testing.T) {
	tests := []struct {
		name       string
		report     m.FileReport
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "written",
			report:  m.FileReport{Filename: "app.py", Status: m.FileRemediated, Written: true},
			wantOut: "Fixed issues in app.py\n",
		},
		{
			name:    "dry run",
			report:  m.FileReport{Filename: "app.py", Status: m.FileRemediated, Written: false},
			wantOut: "Dry run: skipped writing app.py\n",
		},
		{
			name:       "read failure",
			report:     m.FileReport{Filename: "gone.py", Status: m.FileReadFailed, Err: "no such file"},
			wantErrOut: "Error reading gone.py: no such file\n",
		},
		{
			name:       "write failure",
			report:     m.FileReport{Filename: "ro.py", Status: m.FileWriteFailed, Err: "read-only filesystem"},
			wantErrOut: "Error writing to ro.py: read-only filesystem\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out, errOut := newBufferedUI()

			ui.DisplayFileDone(tt.report)

			if out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}

			if errOut.String() != tt.wantErrOut {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.wantErrOut)
			}
		})
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out, _ := newBufferedUI()

	run := m.RunReport{
		ID:       "run-1",
		Duration: 2 * time.Second,
		Files: []m.FileReport{
			{
				Filename: "app.py",
				Status:   m.FileRemediated,
				Written:  true,
				Fixes: []m.FixReport{
					{Status: m.FixApplied},
					{Status: m.FixFailed, Err: "boom"},
				},
			},
		},
	}

	ui.DisplaySummary(run)

	got := out.String()
	for _, want := range []string{"app.py", "written", "Total Files 1", "2s"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSimpleUI_DisplayIssues(t *testing.T) {
	ui, out, _ := newBufferedUI()

	issues := []m.Issue{
		{Filename: "a.py", Code: "E501", Message: "Line too long", Location: m.Location{Row: 4, Column: 89}},
		{Filename: "b.py", Code: "F401", Message: "unused import", Location: m.Location{Row: 1, Column: 8}},
	}

	if err := ui.DisplayIssues(issues); err != nil {
		t.Fatalf("DisplayIssues() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"E501", "a.py:4:89", "F401", "b.py:1:8", "Total Files 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("issue table missing %q:\n%s", want, got)
		}
	}
}

func TestSimpleUI_DisplayRuns(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		ui, out, _ := newBufferedUI()

		if err := ui.DisplayRuns(nil); err != nil {
			t.Fatalf("DisplayRuns() error = %v", err)
		}

		if out.String() != "No stored runs\n" {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("lists runs oldest first", func(t *testing.T) {
		ui, out, _ := newBufferedUI()

		runs := []m.RunReport{
			{ID: "11111111-aaaa", Root: "/old", StartedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
			{ID: "22222222-bbbb", Root: "/new", StartedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)},
		}

		if err := ui.DisplayRuns(runs); err != nil {
			t.Fatalf("DisplayRuns() error = %v", err)
		}

		got := out.String()
		for _, want := range []string{"11111111", "/old", "22222222", "/new"} {
			if !strings.Contains(got, want) {
				t.Errorf("run table missing %q:\n%s", want, got)
			}
		}

		if strings.Index(got, "/old") > strings.Index(got, "/new") {
			t.Errorf("runs not listed oldest first:\n%s", got)
		}
	})
}

func TestShortRunID(t *testing.T) {
	if got := shortRunID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortRunID() = %q", got)
	}

	if got := shortRunID("short"); got != "short" {
		t.Errorf("shortRunID() = %q", got)
	}
}
