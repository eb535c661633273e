package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/remedy/internal/model"
)

const indexFileName = "_index.yaml"

// ReportStore persists and retrieves remediation run reports.
type ReportStore interface {
	// SaveRun writes one run report into dir and refreshes the index.
	SaveRun(dir m.Path, run m.RunReport) error

	// LoadRuns reads every stored run report from dir, oldest first. A missing
	// directory yields an empty result, not an error.
	LoadRuns(dir m.Path) ([]m.RunReport, error)
}

// LocalReportStore stores one YAML document per run plus an _index.yaml with
// aggregate counters.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveRun writes the run document under a content-addressed name and
// regenerates the index.
func (rs *LocalReportStore) SaveRun(dir m.Path, run m.RunReport) error {
	if dir == "" {
		return fmt.Errorf("reports directory path is required")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(toRunYAML(run))
	if err != nil {
		return fmt.Errorf("encode run report: %w", err)
	}

	name := rs.runFileName(run)
	if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
		return fmt.Errorf("write run report: %w", err)
	}

	return rs.regenerateIndex(dir)
}

// LoadRuns decodes every run document in dir, ordered by start time.
func (rs *LocalReportStore) LoadRuns(dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	var runs []m.RunReport

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == indexFileName || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read run report %s: %w", entry.Name(), err)
		}

		var doc runYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode run report %s: %w", entry.Name(), err)
		}

		runs = append(runs, fromRunYAML(doc))
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})

	return runs, nil
}

// runFileName derives a stable, content-addressed file name for a run.
func (rs *LocalReportStore) runFileName(run m.RunReport) string {
	sum := sha256.Sum256([]byte(run.ID))

	return fmt.Sprintf("%x.yaml", sum[:8])
}

// regenerateIndex rebuilds _index.yaml from the run documents on disk.
func (rs *LocalReportStore) regenerateIndex(dir m.Path) error {
	runs, err := rs.LoadRuns(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{TotalRuns: len(runs)}

	for _, run := range runs {
		idx.TotalFixes += run.TotalIssues()
		idx.AppliedFixes += run.Applied()
		idx.FailedFixes += run.Failed()

		idx.Runs = append(idx.Runs, runPointer{
			File:      rs.runFileName(run),
			ID:        run.ID,
			StartedAt: run.StartedAt,
			Root:      string(run.Root),
			Clean:     run.Clean,
		})
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode reports index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(dir), indexFileName), data, 0o600); err != nil {
		return fmt.Errorf("write reports index: %w", err)
	}

	return nil
}

// YAML document shapes. Kept separate from the model so the stored layout is
// an explicit contract.
type runYAML struct {
	ID        string     `yaml:"id"`
	Root      string     `yaml:"root"`
	Linter    string     `yaml:"linter"`
	Model     string     `yaml:"model"`
	StartedAt time.Time  `yaml:"started_at"`
	Duration  string     `yaml:"duration"`
	Clean     bool       `yaml:"clean"`
	Files     []fileYAML `yaml:"files,omitempty"`
}

type fileYAML struct {
	Filename string    `yaml:"filename"`
	Status   string    `yaml:"status"`
	Written  bool      `yaml:"written"`
	Err      string    `yaml:"err,omitempty"`
	Fixes    []fixYAML `yaml:"fixes,omitempty"`
}

type fixYAML struct {
	Code    string `yaml:"code"`
	Message string `yaml:"message"`
	Row     uint   `yaml:"row"`
	Column  uint   `yaml:"column"`
	Status  string `yaml:"status"`
	Diff    string `yaml:"diff,omitempty"`
	Err     string `yaml:"err,omitempty"`
}

type indexEntry struct {
	TotalRuns    int          `yaml:"total_runs"`
	TotalFixes   int          `yaml:"total_fixes"`
	AppliedFixes int          `yaml:"applied_fixes"`
	FailedFixes  int          `yaml:"failed_fixes"`
	Runs         []runPointer `yaml:"runs,omitempty"`
}

type runPointer struct {
	File      string    `yaml:"file"`
	ID        string    `yaml:"id"`
	StartedAt time.Time `yaml:"started_at"`
	Root      string    `yaml:"root"`
	Clean     bool      `yaml:"clean"`
}

func toRunYAML(run m.RunReport) runYAML {
	doc := runYAML{
		ID:        run.ID,
		Root:      string(run.Root),
		Linter:    run.Linter,
		Model:     run.Model,
		StartedAt: run.StartedAt,
		Duration:  run.Duration.String(),
		Clean:     run.Clean,
	}

	for _, file := range run.Files {
		fileDoc := fileYAML{
			Filename: file.Filename,
			Status:   string(file.Status),
			Written:  file.Written,
			Err:      file.Err,
		}

		for _, fix := range file.Fixes {
			fileDoc.Fixes = append(fileDoc.Fixes, fixYAML{
				Code:    fix.Issue.Code,
				Message: fix.Issue.Message,
				Row:     fix.Issue.Location.Row,
				Column:  fix.Issue.Location.Column,
				Status:  string(fix.Status),
				Diff:    fix.Diff,
				Err:     fix.Err,
			})
		}

		doc.Files = append(doc.Files, fileDoc)
	}

	return doc
}

func fromRunYAML(doc runYAML) m.RunReport {
	duration, err := time.ParseDuration(doc.Duration)
	if err != nil {
		duration = 0
	}

	run := m.RunReport{
		ID:        doc.ID,
		Root:      m.Path(doc.Root),
		Linter:    doc.Linter,
		Model:     doc.Model,
		StartedAt: doc.StartedAt,
		Duration:  duration,
		Clean:     doc.Clean,
	}

	for _, fileDoc := range doc.Files {
		file := m.FileReport{
			Filename: fileDoc.Filename,
			Status:   m.FileStatus(fileDoc.Status),
			Written:  fileDoc.Written,
			Err:      fileDoc.Err,
		}

		for _, fixDoc := range fileDoc.Fixes {
			file.Fixes = append(file.Fixes, m.FixReport{
				Issue: m.Issue{
					Filename: fileDoc.Filename,
					Code:     fixDoc.Code,
					Message:  fixDoc.Message,
					Location: m.Location{Row: fixDoc.Row, Column: fixDoc.Column},
				},
				Status: m.FixStatus(fixDoc.Status),
				Diff:   fixDoc.Diff,
				Err:    fixDoc.Err,
			})
		}

		run.Files = append(run.Files, file)
	}

	return run
}
