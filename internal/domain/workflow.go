package domain

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/remedy/internal/adapter"
	"github.com/mouse-blink/remedy/internal/controller"
	m "github.com/mouse-blink/remedy/internal/model"
)

// FixArgs carries the parameters for a full remediation run.
type FixArgs struct {
	Root    m.Path
	Exclude []string
	Ignore  []string
	Workers int
	DryRun  bool
	Reports m.Path
	Linter  string
	Model   string
}

// CheckArgs carries the parameters for a read-only diagnostic run.
type CheckArgs struct {
	Root    m.Path
	Exclude []string
	Ignore  []string
	Linter  string
}

// ViewArgs carries the parameters for browsing stored run reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for lint remediation operations.
type Workflow interface {
	Fix(ctx context.Context, args FixArgs) error
	Check(ctx context.Context, args CheckArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	linter      adapter.LinterAdapter
	fixer       adapter.FixerAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	linter adapter.LinterAdapter,
	fixer adapter.FixerAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		linter:      linter,
		fixer:       fixer,
		reportStore: reportStore,
		ui:          ui,
	}
}

// Fix formats the tree, collects the linter findings that survive the
// linter's own autofix pass, and remediates them file by file. Linter
// failures abort the run before any content is touched; from the fan-out
// onward every failure is contained in the run report and Fix returns nil.
func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	root, err := w.fsAdapter.NormalizeRoot(args.Root)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}

	run := m.RunReport{
		ID:        uuid.NewString(),
		Root:      root,
		Linter:    args.Linter,
		Model:     args.Model,
		StartedAt: time.Now(),
	}

	w.ui.DisplayFormatting(root)

	if err := w.linter.Format(ctx, root); err != nil {
		return err
	}

	w.ui.DisplayChecking(args.Linter, root)

	issues, err := w.linter.Check(ctx, root, true)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		run.Clean = true
		run.Duration = time.Since(run.StartedAt)
		w.ui.DisplayClean(root)

		return w.saveRun(args.Reports, run)
	}

	filter, err := NewIssueFilter(args.Exclude, args.Ignore)
	if err != nil {
		return err
	}

	issues = filter.Apply(issues)
	groups := GroupIssues(issues)

	if err := w.ui.Start(controller.WithFixMode()); err != nil {
		return err
	}

	w.ui.DisplayConcurrencyInfo(len(groups), len(issues), args.Workers)

	remediator := NewRemediator(w.fsAdapter, w.fixer, w.ui, args.DryRun)
	run.Files = NewOrchestrator(remediator, args.Workers).Run(ctx, groups)

	sort.Slice(run.Files, func(i, j int) bool {
		return run.Files[i].Filename < run.Files[j].Filename
	})

	run.Duration = time.Since(run.StartedAt)

	w.ui.DisplaySummary(run)

	if err := w.saveRun(args.Reports, run); err != nil {
		return err
	}

	w.ui.Wait()
	w.ui.Close()

	return nil
}

// Check runs the linter without applying its autofixes and lists the
// findings. Nothing on disk changes.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	root, err := w.fsAdapter.NormalizeRoot(args.Root)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}

	w.ui.DisplayChecking(args.Linter, root)

	issues, err := w.linter.Check(ctx, root, false)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		w.ui.DisplayClean(root)

		return nil
	}

	filter, err := NewIssueFilter(args.Exclude, args.Ignore)
	if err != nil {
		return err
	}

	issues = filter.Apply(issues)

	if err := w.ui.Start(controller.WithCheckMode()); err != nil {
		return err
	}

	if err := w.ui.DisplayIssues(issues); err != nil {
		return err
	}

	w.ui.Wait()
	w.ui.Close()

	return nil
}

// View loads the stored run reports and renders them oldest first.
func (w *workflow) View(_ context.Context, args ViewArgs) error {
	runs, err := w.reportStore.LoadRuns(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayRuns(runs)
}

func (w *workflow) saveRun(dir m.Path, run m.RunReport) error {
	if dir == "" {
		return nil
	}

	return w.reportStore.SaveRun(dir, run)
}
