package model

import "testing"

func TestFileReport_Counters(t *testing.T) {
	report := FileReport{
		Filename: "app.py",
		Fixes: []FixReport{
			{Status: FixApplied},
			{Status: FixFailed, Err: "boom"},
			{Status: FixApplied},
		},
	}

	if got := report.Applied(); got != 2 {
		t.Errorf("Applied() = %d, want 2", got)
	}

	if got := report.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
}

func TestRunReport_Counters(t *testing.T) {
	run := RunReport{
		Files: []FileReport{
			{Fixes: []FixReport{{Status: FixApplied}, {Status: FixFailed}}},
			{Fixes: []FixReport{{Status: FixApplied}}},
			{Status: FileReadFailed},
		},
	}

	if got := run.TotalIssues(); got != 3 {
		t.Errorf("TotalIssues() = %d, want 3", got)
	}

	if got := run.Applied(); got != 2 {
		t.Errorf("Applied() = %d, want 2", got)
	}

	if got := run.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
}

func TestDiff_String(t *testing.T) {
	diff := Diff{Lines: []DiffLine{
		{Kind: DiffRemoved, Row: 2, Text: "import os"},
		{Kind: DiffAdded, Row: 2, Text: "import sys"},
	}}

	want := "--- Original\n+++ Fixed\n- import os\n+ import sys\n"
	if got := diff.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if diff.Empty() {
		t.Error("Empty() = true for a non-empty diff")
	}

	if !(Diff{}).Empty() {
		t.Error("Empty() = false for an empty diff")
	}
}
