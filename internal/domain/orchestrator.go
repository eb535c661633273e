package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/remedy/internal/model"
)

// Orchestrator fans the grouped issues out across concurrent per-file work
// units and collects one FileReport per file once every unit has resolved.
type Orchestrator interface {
	Run(ctx context.Context, groups m.IssueGroup) []m.FileReport
}

type orchestrator struct {
	remediator Remediator
	workers    int
}

// NewOrchestrator constructs an Orchestrator running at most workers units
// at a time. With workers <= 0 every file gets its own unit immediately.
func NewOrchestrator(remediator Remediator, workers int) Orchestrator {
	return &orchestrator{remediator: remediator, workers: workers}
}

// Run starts one work unit per file and blocks until all of them have
// signaled completion. Units never fail the group: every per-file outcome,
// including read and write failures, arrives as a FileReport on the results
// channel.
func (o *orchestrator) Run(ctx context.Context, groups m.IssueGroup) []m.FileReport {
	results := make(chan m.FileReport, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}

	for filename, issues := range groups {
		filename, issues := filename, issues
		g.Go(func() error {
			results <- o.remediator.RemediateFile(ctx, filename, issues)

			return nil
		})
	}

	g.Wait() //nolint:errcheck // units report through the results channel
	close(results)

	reports := make([]m.FileReport, 0, len(groups))
	for report := range results {
		reports = append(reports, report)
	}

	return reports
}
