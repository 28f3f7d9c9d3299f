package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/casereach/internal/adapter"
	"github.com/mouse-blink/casereach/internal/controller"
	"github.com/mouse-blink/casereach/internal/domain/selector"
	m "github.com/mouse-blink/casereach/internal/model"
)

var (
	// ErrNoStatements is returned by Run when no module document was selected.
	ErrNoStatements = errors.New("no module documents to analyze")
	// ErrAbandoned is returned by Run when cancellation stopped the batch.
	// The partial reports are saved before it is returned.
	ErrAbandoned = errors.New("analysis abandoned")
	// ErrFindingsReported is returned by Run when FailOnFindings is set and
	// at least one finding was reported.
	ErrFindingsReported = errors.New("findings reported")
)

// EstimateArgs selects the module documents to work on.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// RunArgs configures an analysis run.
type RunArgs struct {
	EstimateArgs
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
	FailOnFindings  bool
	// Enabled filters findings by kind; nil keeps all of them.
	Enabled func(m.FindingKind) bool
}

// ViewArgs points at a directory of saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives the estimate, run and view operations.
type Workflow interface {
	Estimate(args EstimateArgs) error
	Run(ctx context.Context, args RunArgs) (BatchResult, error)
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter     adapter.SourceFSAdapter
	moduleAdapter adapter.ModuleAdapter
	reportStore   adapter.ReportStore
	ui            controller.UI
	log           logrus.FieldLogger
}

// NewWorkflow creates a Workflow with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	moduleAdapter adapter.ModuleAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	log logrus.FieldLogger,
) Workflow {
	return &workflow{
		fsAdapter:     fsAdapter,
		moduleAdapter: moduleAdapter,
		reportStore:   reportStore,
		ui:            ui,
		log:           log,
	}
}

// document is a decoded module document with its symbol table.
type document struct {
	source  m.Source
	module  *m.Module
	symbols *SymbolTable
	err     error
}

func (w *workflow) Estimate(args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	docs, err := w.loadDocuments(args, 0, 1)
	if err != nil {
		return w.ui.DisplayEstimation(nil, err)
	}

	estimates := make([]m.Estimate, 0, len(docs))
	for _, doc := range docs {
		estimates = append(estimates, estimate(doc))
	}

	if err := w.ui.DisplayEstimation(estimates, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (BatchResult, error) {
	docs, err := w.loadDocuments(args.EstimateArgs, args.ShardIndex, args.TotalShardCount)
	if err != nil {
		return BatchResult{}, err
	}

	if len(docs) == 0 {
		return BatchResult{}, ErrNoStatements
	}

	if err := w.ui.Start(controller.WithAnalyzeMode()); err != nil {
		return BatchResult{}, fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	threads := max(args.Threads, 1)

	var (
		jobs  []Job
		owner []int
	)

	for i, doc := range docs {
		if doc.err != nil {
			w.log.WithError(doc.err).WithField("file", doc.source.Origin.Path).Warn("skipping module document")
			continue
		}

		for _, stmt := range doc.module.Statements {
			jobs = append(jobs, Job{Source: doc.source, Statement: stmt, Symbols: doc.symbols})
			owner = append(owner, i)
		}
	}

	w.ui.DisplayConcurrencyInfo(threads, args.ShardIndex, max(args.TotalShardCount, 1))
	w.ui.DisplayUpcomingInfo(len(jobs))

	w.log.WithFields(logrus.Fields{
		"files":      len(docs),
		"statements": len(jobs),
		"workers":    threads,
	}).Info("analysis started")

	result := AnalyzeBatch(ctx, jobs, BatchOptions{
		Threads: threads,
		Enabled: args.Enabled,
		OnStart: func(job Job, worker int) {
			w.ui.DisplayStartingAnalysis(job.Source.Origin.Path, job.Statement.ID, worker)
		},
		OnDone: func(job Job, worker int, findings []m.Finding) {
			w.log.WithFields(logrus.Fields{
				"file":      job.Source.Origin.Path,
				"statement": job.Statement.ID,
				"worker":    worker,
				"findings":  len(findings),
			}).Debug("statement analyzed")
			w.ui.DisplayCompletedAnalysis(job.Source.Origin.Path, job.Statement.ID, findings)
		},
		OnSkip: func(job Job, stmt *m.SelectCase, reason selector.Reason) {
			w.log.WithFields(logrus.Fields{
				"file":      job.Source.Origin.Path,
				"statement": stmt.ID,
				"reason":    string(reason),
			}).Debug("statement skipped")
		},
	})

	reports := buildReports(docs, jobs, owner, result)
	if err := w.reportStore.SaveReports(args.Reports, reports); err != nil {
		return result, fmt.Errorf("save reports: %w", err)
	}

	findings := len(result.Findings())

	w.log.WithFields(logrus.Fields{
		"completed": result.Completed,
		"total":     result.Total,
		"findings":  findings,
	}).Info("analysis finished")

	if result.Abandoned {
		return result, fmt.Errorf("%w: %d of %d statements analyzed", ErrAbandoned, result.Completed, result.Total)
	}

	w.ui.Wait()

	if args.FailOnFindings && findings > 0 {
		return result, fmt.Errorf("%w: %d", ErrFindingsReported, findings)
	}

	return result, nil
}

func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	if err := w.ui.DisplayReports(reports); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// loadDocuments finds, filters, shards and decodes the module documents.
// Decoding errors are kept on the document instead of failing the run.
func (w *workflow) loadDocuments(args EstimateArgs, shardIndex, totalShards int) ([]document, error) {
	sources, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources, err = excludeSources(sources, args.Exclude)
	if err != nil {
		return nil, err
	}

	sources = shardSources(sources, shardIndex, totalShards)

	docs := make([]document, 0, len(sources))

	for _, source := range sources {
		doc := document{source: source}

		src, err := w.fsAdapter.ReadFile(source.Origin.Path)
		if err != nil {
			doc.err = fmt.Errorf("read %s: %w", source.Origin.Path, err)
			docs = append(docs, doc)

			continue
		}

		doc.module, doc.err = w.moduleAdapter.Parse(string(source.Origin.Path), src)
		if doc.err == nil {
			doc.source.Module = doc.module.Name
			doc.symbols = NewSymbolTable(doc.module)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func excludeSources(sources []m.Source, patterns []string) ([]m.Source, error) {
	if len(patterns) == 0 {
		return sources, nil
	}

	exprs := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		exprs = append(exprs, re)
	}

	kept := make([]m.Source, 0, len(sources))

	for _, s := range sources {
		excluded := false

		for _, re := range exprs {
			if re.MatchString(string(s.Origin.Path)) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, s)
		}
	}

	return kept, nil
}

// shardSources keeps every totalShards-th source starting at shardIndex.
// Sources arrive sorted by path, so a shard is the same on every machine.
func shardSources(sources []m.Source, shardIndex, totalShards int) []m.Source {
	if totalShards <= 1 {
		return sources
	}

	var shard []m.Source

	for i, s := range sources {
		if i%totalShards == shardIndex {
			shard = append(shard, s)
		}
	}

	return shard
}

func estimate(doc document) m.Estimate {
	e := m.Estimate{Source: doc.source, Err: doc.err}
	if doc.err != nil {
		return e
	}

	for _, stmt := range doc.module.Statements {
		stmt.Walk(func(s *m.SelectCase) bool {
			e.Statements++
			e.Blocks += len(s.Blocks)

			for _, b := range s.Blocks {
				e.Clauses += len(b.Clauses)
			}

			return true
		})
	}

	return e
}

// buildReports groups job findings back into one report per document.
// owner maps each job to its index in docs.
func buildReports(docs []document, jobs []Job, owner []int, result BatchResult) []m.Report {
	reports := make([]m.Report, len(docs))

	for i, doc := range docs {
		reports[i] = m.Report{
			Source:   doc.source.Origin.Path,
			Hash:     doc.source.Origin.Hash,
			Module:   doc.source.Module,
			Findings: []m.Finding{},
		}

		if doc.err != nil {
			reports[i].Error = doc.err.Error()
		}
	}

	for j, res := range result.Results {
		r := &reports[owner[j]]

		if !res.Done {
			r.Abandoned = true
			continue
		}

		jobs[j].Statement.Walk(func(*m.SelectCase) bool {
			r.Statements++
			return true
		})
		r.Findings = append(r.Findings, res.Findings...)
	}

	return reports
}
