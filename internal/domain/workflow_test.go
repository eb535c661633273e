package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/remedy/internal/adapter"
	adaptermocks "github.com/mouse-blink/remedy/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/remedy/internal/controller/mocks"
	"github.com/mouse-blink/remedy/internal/domain"
	m "github.com/mouse-blink/remedy/internal/model"
)

func TestWorkflow_Fix_CleanRunShortCircuits(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	// No expectations on the fixer: a clean check must trigger zero fix calls.
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	root := m.Path("/project")

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Format(mock.Anything, root).Return(nil)
	linter.EXPECT().Check(mock.Anything, root, true).Return(nil, nil)

	ui.EXPECT().DisplayFormatting(root)
	ui.EXPECT().DisplayChecking("ruff", root)
	ui.EXPECT().DisplayClean(root)

	reportStore.EXPECT().
		SaveRun(m.Path(".remedy-reports"), mock.MatchedBy(func(run m.RunReport) bool {
			return run.Clean && len(run.Files) == 0 && run.ID != ""
		})).
		Return(nil)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, ui)

	err := wf.Fix(context.Background(), domain.FixArgs{
		Root:    root,
		Reports: ".remedy-reports",
		Linter:  "ruff",
		Model:   "gpt-4o-mini",
	})
	require.NoError(t, err)
}

func TestWorkflow_Fix_FormatFailureAbortsBeforeCheck(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	// No Check expectation: format failure must stop the run right there.
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	root := m.Path("/project")
	formatErr := errors.New("ruff format exploded")

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Format(mock.Anything, root).Return(formatErr)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{Root: root, Linter: "ruff"})
	require.ErrorIs(t, err, formatErr)
}

func TestWorkflow_Fix_CheckToolFailureAborts(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	root := m.Path("/project")
	checkErr := errors.New("ruff exited with code 2")

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Format(mock.Anything, root).Return(nil)
	linter.EXPECT().Check(mock.Anything, root, true).Return(nil, checkErr)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{Root: root, Linter: "ruff"})
	require.ErrorIs(t, err, checkErr)
}

func TestWorkflow_Fix_RootError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	fsAdapter.EXPECT().NormalizeRoot(m.Path("missing")).Return("", errors.New("no such directory"))

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{Root: "missing"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "root path error")
}

func TestWorkflow_Fix_InvalidExcludePattern(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	root := m.Path("/project")
	issues := []m.Issue{makeIssue("a.py", "E501", "line too long", 1)}

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Format(mock.Anything, root).Return(nil)
	linter.EXPECT().Check(mock.Anything, root, true).Return(issues, nil)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{Root: root, Exclude: []string{"("}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid exclude pattern")
}

// End-to-end over a real temp tree: the linter and fixer are mocked, the
// filesystem is not. foo.py carries two findings, bar.py one; every fix call
// succeeds and each file is written back exactly once.
func TestWorkflow_Fix_RemediatesRealFiles(t *testing.T) {
	root := t.TempDir()
	fooPath := filepath.Join(root, "foo.py")
	barPath := filepath.Join(root, "bar.py")

	writeFile(t, fooPath, "import os\n\nvalue = 1\n\nprint( value )\n")
	writeFile(t, barPath, "l = 10\n")

	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	fooIssues := []m.Issue{
		makeIssue(fooPath, "F401", "`os` imported but unused", 1),
		makeIssue(fooPath, "E201", "whitespace after '('", 5),
	}
	barIssues := []m.Issue{
		makeIssue(barPath, "E741", "ambiguous variable name `l`", 1),
	}

	linter.EXPECT().Format(mock.Anything, mock.Anything).Return(nil)
	linter.EXPECT().Check(mock.Anything, mock.Anything, true).
		Return(append(append([]m.Issue{}, fooIssues...), barIssues...), nil)

	fooV0 := "import os\n\nvalue = 1\n\nprint( value )\n"
	fooV1 := "value = 1\n\nprint( value )\n"
	fooV2 := "value = 1\n\nprint(value)\n"
	barV1 := "count = 10\n"

	fixer.EXPECT().ProposeFix(mock.Anything, fooIssues[0], fooV0).Return(fooV1, nil).Once()
	fixer.EXPECT().ProposeFix(mock.Anything, fooIssues[1], fooV1).Return(fooV2, nil).Once()
	fixer.EXPECT().ProposeFix(mock.Anything, barIssues[0], "l = 10\n").Return(barV1, nil).Once()

	reportStore.EXPECT().
		SaveRun(m.Path(".remedy-reports"), mock.MatchedBy(func(run m.RunReport) bool {
			return len(run.Files) == 2 && run.Applied() == 3 && run.Failed() == 0
		})).
		Return(nil)

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{
		Root:    m.Path(root),
		Reports: ".remedy-reports",
		Linter:  "ruff",
		Model:   "gpt-4o-mini",
	})
	require.NoError(t, err)

	require.Equal(t, fooV2, readFile(t, fooPath))
	require.Equal(t, barV1, readFile(t, barPath))
}

// Every fix call fails, yet Fix returns nil: remediation is best-effort and
// partial failure is not a process failure. The files keep their original
// content through the (single) write.
func TestWorkflow_Fix_AllFixesFailingStillSucceeds(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.py")
	original := "import os\n"

	writeFile(t, path, original)

	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	issues := []m.Issue{makeIssue(path, "F401", "`os` imported but unused", 1)}

	linter.EXPECT().Format(mock.Anything, mock.Anything).Return(nil)
	linter.EXPECT().Check(mock.Anything, mock.Anything, true).Return(issues, nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], original).Return("", errors.New("service down"))

	reportStore.EXPECT().
		SaveRun(mock.Anything, mock.MatchedBy(func(run m.RunReport) bool {
			return run.Applied() == 0 && run.Failed() == 1
		})).
		Return(nil)

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{
		Root:    m.Path(root),
		Reports: ".remedy-reports",
	})
	require.NoError(t, err)

	require.Equal(t, original, readFile(t, path))
}

func TestWorkflow_Fix_DryRunLeavesDiskUntouched(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.py")
	original := "import os\n"

	writeFile(t, path, original)

	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	issues := []m.Issue{makeIssue(path, "F401", "`os` imported but unused", 1)}

	linter.EXPECT().Format(mock.Anything, mock.Anything).Return(nil)
	linter.EXPECT().Check(mock.Anything, mock.Anything, true).Return(issues, nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], original).Return("\n", nil)

	reportStore.EXPECT().
		SaveRun(mock.Anything, mock.MatchedBy(func(run m.RunReport) bool {
			return len(run.Files) == 1 && !run.Files[0].Written
		})).
		Return(nil)

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{
		Root:    m.Path(root),
		Reports: ".remedy-reports",
		DryRun:  true,
	})
	require.NoError(t, err)

	require.Equal(t, original, readFile(t, path))
}

func TestWorkflow_Fix_SkipsStoreWhenReportsDirEmpty(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	// No SaveRun expectation: an empty reports dir disables persistence.
	reportStore := adaptermocks.NewMockReportStore(t)

	root := m.Path("/project")

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Format(mock.Anything, root).Return(nil)
	linter.EXPECT().Check(mock.Anything, root, true).Return(nil, nil)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{Root: root, Reports: ""})
	require.NoError(t, err)
}

func TestWorkflow_Check_ListsIssuesWithoutFixing(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	// A check run must never touch the fixer.
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	root := m.Path("/project")
	issues := []m.Issue{
		makeIssue("a.py", "E501", "line too long", 4),
		makeIssue("b.py", "F401", "unused import", 1),
	}

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Check(mock.Anything, root, false).Return(issues, nil)

	ui.EXPECT().DisplayChecking("ruff", root)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().DisplayIssues(issues).Return(nil)
	ui.EXPECT().Wait()
	ui.EXPECT().Close()

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, ui)

	err := wf.Check(context.Background(), domain.CheckArgs{Root: root, Linter: "ruff"})
	require.NoError(t, err)
}

func TestWorkflow_Check_CleanTree(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	root := m.Path("/project")

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Check(mock.Anything, root, false).Return(nil, nil)

	ui.EXPECT().DisplayChecking("ruff", root)
	ui.EXPECT().DisplayClean(root)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, ui)

	err := wf.Check(context.Background(), domain.CheckArgs{Root: root, Linter: "ruff"})
	require.NoError(t, err)
}

func TestWorkflow_Check_FiltersIssues(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	root := m.Path("/project")
	issues := []m.Issue{
		makeIssue("a.py", "E501", "line too long", 4),
		makeIssue("a_test.py", "E501", "line too long", 9),
	}

	fsAdapter.EXPECT().NormalizeRoot(root).Return(root, nil)
	linter.EXPECT().Check(mock.Anything, root, false).Return(issues, nil)

	ui.EXPECT().DisplayChecking("ruff", root)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().DisplayIssues(issues[:1]).Return(nil)
	ui.EXPECT().Wait()
	ui.EXPECT().Close()

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, ui)

	err := wf.Check(context.Background(), domain.CheckArgs{
		Root:    root,
		Linter:  "ruff",
		Exclude: []string{`_test\.py$`},
	})
	require.NoError(t, err)
}

func TestWorkflow_View_DisplaysStoredRuns(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	runs := []m.RunReport{{ID: "run-1", Root: "/project"}}

	reportStore.EXPECT().LoadRuns(m.Path(".remedy-reports")).Return(runs, nil)
	ui.EXPECT().DisplayRuns(runs).Return(nil)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, ui)

	err := wf.View(context.Background(), domain.ViewArgs{Reports: ".remedy-reports"})
	require.NoError(t, err)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	loadErr := errors.New("corrupt index")

	reportStore.EXPECT().LoadRuns(m.Path("bad-dir")).Return(nil, loadErr)

	wf := domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, newPermissiveUI())

	err := wf.View(context.Background(), domain.ViewArgs{Reports: "bad-dir"})
	require.ErrorIs(t, err, loadErr)
}

// Remediation over the checked-in fixture tree: the linter and fixer are
// mocked, everything else runs for real against a copy of examples/flawed.
func TestWorkflow_Fix_OnExampleTree(t *testing.T) {
	root := t.TempDir()
	copyExampleDir(t, "../../examples/flawed", root)

	appPath := filepath.Join(root, "app.py")

	linter := adaptermocks.NewMockLinterAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	reportStore := adaptermocks.NewMockReportStore(t)

	issue := makeIssue(appPath, "F401", "`os` imported but unused", 1)

	linter.EXPECT().Format(mock.Anything, mock.Anything).Return(nil)
	linter.EXPECT().Check(mock.Anything, mock.Anything, true).Return([]m.Issue{issue}, nil)

	// The replacement drops the offending first line of whatever content the
	// remediator handed over.
	fixer.EXPECT().
		ProposeFix(mock.Anything, issue, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Issue, content string) (string, error) {
			_, rest, _ := strings.Cut(content, "\n")

			return rest, nil
		})

	reportStore.EXPECT().SaveRun(mock.Anything, mock.Anything).Return(nil)

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), linter, fixer, reportStore, newPermissiveUI())

	err := wf.Fix(context.Background(), domain.FixArgs{
		Root:    m.Path(root),
		Reports: ".remedy-reports",
	})
	require.NoError(t, err)

	fixed := readFile(t, appPath)
	require.NotContains(t, fixed, "import os")
	require.Contains(t, fixed, "import sys")
}

func copyExampleDir(t *testing.T, src, dst string) {
	t.Helper()

	entries, err := os.ReadDir(src)
	if err != nil {
		t.Fatalf("read example dir %s: %v", src, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			t.Fatalf("read example file: %v", err)
		}

		if err := os.WriteFile(filepath.Join(dst, entry.Name()), data, 0o644); err != nil {
			t.Fatalf("copy example file: %v", err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}
