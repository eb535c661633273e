package domain_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/remedy/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/remedy/internal/controller/mocks"
	"github.com/mouse-blink/remedy/internal/domain"
	m "github.com/mouse-blink/remedy/internal/model"
)

func TestRemediator_RemediateFile_AppliesFixesSequentially(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)

	issues := []m.Issue{
		makeIssue("foo.py", "F401", "os imported but unused", 2),
		makeIssue("foo.py", "E501", "line too long", 5),
	}

	// Each expectation pins the content the fix service must receive: the
	// second issue sees the first fix's output, not the original file.
	fsAdapter.EXPECT().ReadFile(m.Path("foo.py")).Return([]byte("v0"), nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], "v0").Return("v1", nil).Once()
	fixer.EXPECT().ProposeFix(mock.Anything, issues[1], "v1").Return("v2", nil).Once()
	fsAdapter.EXPECT().WriteFile(m.Path("foo.py"), []byte("v2"), os.FileMode(0o644)).Return(nil).Once()

	r := domain.NewRemediator(fsAdapter, fixer, newPermissiveUI(), false)
	report := r.RemediateFile(context.Background(), "foo.py", issues)

	require.Equal(t, m.FileRemediated, report.Status)
	require.True(t, report.Written)
	require.Len(t, report.Fixes, 2)
	require.Equal(t, m.FixApplied, report.Fixes[0].Status)
	require.Equal(t, m.FixApplied, report.Fixes[1].Status)
	require.Contains(t, report.Fixes[0].Diff, "- v0")
	require.Contains(t, report.Fixes[0].Diff, "+ v1")
	require.Contains(t, report.Fixes[1].Diff, "- v1")
	require.Contains(t, report.Fixes[1].Diff, "+ v2")
}

func TestRemediator_RemediateFile_ReadFailureSkipsFixesAndWrite(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	// No expectations: any fix request or write would fail the test.
	fixer := adaptermocks.NewMockFixerAdapter(t)

	issues := []m.Issue{makeIssue("gone.py", "F401", "unused import", 1)}

	fsAdapter.EXPECT().ReadFile(m.Path("gone.py")).Return(nil, errors.New("no such file"))

	r := domain.NewRemediator(fsAdapter, fixer, newPermissiveUI(), false)
	report := r.RemediateFile(context.Background(), "gone.py", issues)

	require.Equal(t, m.FileReadFailed, report.Status)
	require.False(t, report.Written)
	require.Empty(t, report.Fixes)
	require.Contains(t, report.Err, "no such file")
}

func TestRemediator_RemediateFile_FixFailureContinuesWithUnchangedContent(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)

	issues := []m.Issue{
		makeIssue("foo.py", "F401", "unused import", 1),
		makeIssue("foo.py", "E501", "line too long", 3),
	}

	fsAdapter.EXPECT().ReadFile(m.Path("foo.py")).Return([]byte("v0"), nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], "v0").Return("", errors.New("service down")).Once()
	// The failed attempt must not mutate the content the next issue sees.
	fixer.EXPECT().ProposeFix(mock.Anything, issues[1], "v0").Return("v2", nil).Once()
	fsAdapter.EXPECT().WriteFile(m.Path("foo.py"), []byte("v2"), os.FileMode(0o644)).Return(nil).Once()

	r := domain.NewRemediator(fsAdapter, fixer, newPermissiveUI(), false)
	report := r.RemediateFile(context.Background(), "foo.py", issues)

	require.Equal(t, m.FileRemediated, report.Status)
	require.Len(t, report.Fixes, 2)
	require.Equal(t, m.FixFailed, report.Fixes[0].Status)
	require.Contains(t, report.Fixes[0].Err, "service down")
	require.Empty(t, report.Fixes[0].Diff)
	require.Equal(t, m.FixApplied, report.Fixes[1].Status)
	require.Equal(t, 1, report.Applied())
	require.Equal(t, 1, report.Failed())
}

func TestRemediator_RemediateFile_WritesOriginalWhenEveryFixFails(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)

	issues := []m.Issue{
		makeIssue("foo.py", "F401", "unused import", 1),
		makeIssue("foo.py", "E501", "line too long", 3),
	}

	fsAdapter.EXPECT().ReadFile(m.Path("foo.py")).Return([]byte("v0"), nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], "v0").Return("", errors.New("boom")).Once()
	fixer.EXPECT().ProposeFix(mock.Anything, issues[1], "v0").Return("", errors.New("boom")).Once()
	fsAdapter.EXPECT().WriteFile(m.Path("foo.py"), []byte("v0"), os.FileMode(0o644)).Return(nil).Once()

	r := domain.NewRemediator(fsAdapter, fixer, newPermissiveUI(), false)
	report := r.RemediateFile(context.Background(), "foo.py", issues)

	require.Equal(t, m.FileRemediated, report.Status)
	require.True(t, report.Written)
	require.Equal(t, 0, report.Applied())
	require.Equal(t, 2, report.Failed())
}

func TestRemediator_RemediateFile_WriteFailure(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)

	issues := []m.Issue{makeIssue("foo.py", "F401", "unused import", 1)}

	fsAdapter.EXPECT().ReadFile(m.Path("foo.py")).Return([]byte("v0"), nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], "v0").Return("v1", nil)
	fsAdapter.EXPECT().WriteFile(m.Path("foo.py"), []byte("v1"), os.FileMode(0o644)).Return(errors.New("read-only filesystem"))

	r := domain.NewRemediator(fsAdapter, fixer, newPermissiveUI(), false)
	report := r.RemediateFile(context.Background(), "foo.py", issues)

	require.Equal(t, m.FileWriteFailed, report.Status)
	require.False(t, report.Written)
	require.Contains(t, report.Err, "read-only filesystem")
	// The fix attempts stay on record even though the write failed.
	require.Len(t, report.Fixes, 1)
	require.Equal(t, m.FixApplied, report.Fixes[0].Status)
}

func TestRemediator_RemediateFile_DryRunSkipsWrite(t *testing.T) {
	// No WriteFile expectation: a write in dry-run mode fails the test.
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)

	issues := []m.Issue{makeIssue("foo.py", "F401", "unused import", 1)}

	fsAdapter.EXPECT().ReadFile(m.Path("foo.py")).Return([]byte("v0"), nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issues[0], "v0").Return("v1", nil)

	r := domain.NewRemediator(fsAdapter, fixer, newPermissiveUI(), true)
	report := r.RemediateFile(context.Background(), "foo.py", issues)

	require.Equal(t, m.FileRemediated, report.Status)
	require.False(t, report.Written)
	require.Equal(t, 1, report.Applied())
}

func TestRemediator_RemediateFile_EmitsDisplayEvents(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fixer := adaptermocks.NewMockFixerAdapter(t)
	ui := controllermocks.NewMockUI(t)

	issue := makeIssue("foo.py", "F401", "unused import", 1)

	fsAdapter.EXPECT().ReadFile(m.Path("foo.py")).Return([]byte("import os\n"), nil)
	fixer.EXPECT().ProposeFix(mock.Anything, issue, "import os\n").Return("\n", nil)
	fsAdapter.EXPECT().WriteFile(m.Path("foo.py"), []byte("\n"), os.FileMode(0o644)).Return(nil)

	ui.EXPECT().DisplayFileStart("foo.py", 1)
	ui.EXPECT().DisplayFixStart(issue)
	ui.EXPECT().DisplayFixApplied(issue, mock.MatchedBy(func(diff m.Diff) bool {
		return !diff.Empty()
	}))
	ui.EXPECT().DisplayFileDone(mock.MatchedBy(func(report m.FileReport) bool {
		return report.Filename == "foo.py" && report.Status == m.FileRemediated
	}))

	r := domain.NewRemediator(fsAdapter, fixer, ui, false)
	r.RemediateFile(context.Background(), "foo.py", []m.Issue{issue})
}

func makeIssue(filename, code, message string, row uint) m.Issue {
	return m.Issue{
		Filename: filename,
		Code:     code,
		Message:  message,
		Location: m.Location{Row: row, Column: 1},
	}
}

// newPermissiveUI returns a UI mock that tolerates any display traffic, for
// tests that assert adapter interactions rather than rendering.
func newPermissiveUI() *controllermocks.MockUI {
	ui := &controllermocks.MockUI{}
	ui.On("Start", mock.Anything).Return(nil).Maybe()
	ui.On("Close").Maybe()
	ui.On("Wait").Maybe()
	ui.On("DisplayFormatting", mock.Anything).Maybe()
	ui.On("DisplayChecking", mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayClean", mock.Anything).Maybe()
	ui.On("DisplayConcurrencyInfo", mock.Anything, mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayFileStart", mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayFixStart", mock.Anything).Maybe()
	ui.On("DisplayFixApplied", mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayFixFailed", mock.Anything, mock.Anything).Maybe()
	ui.On("DisplayFileDone", mock.Anything).Maybe()
	ui.On("DisplaySummary", mock.Anything).Maybe()
	ui.On("DisplayIssues", mock.Anything).Return(nil).Maybe()
	ui.On("DisplayRuns", mock.Anything).Return(nil).Maybe()

	return ui
}
