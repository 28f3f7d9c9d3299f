package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/casereach/internal/domain/selector"
	m "github.com/mouse-blink/casereach/internal/model"
)

// Job is one top-level statement queued for analysis. Statements nested in
// it are analyzed as part of the same job.
type Job struct {
	Source    m.Source
	Statement *m.SelectCase
	Symbols   selector.Resolver
}

// JobResult holds the findings of one job. Done is false when the batch was
// cancelled before a worker reached the job.
type JobResult struct {
	Findings []m.Finding
	Done     bool
}

// BatchResult collects the outcome of AnalyzeBatch. Results is indexed like
// the jobs passed in.
type BatchResult struct {
	Results   []JobResult
	Completed int
	Total     int
	Abandoned bool
}

// Findings returns the findings of every completed job in job order.
func (r BatchResult) Findings() []m.Finding {
	var out []m.Finding

	for _, res := range r.Results {
		out = append(out, res.Findings...)
	}

	return out
}

// BatchOptions tunes AnalyzeBatch. Zero values analyze on one worker and keep
// every finding.
type BatchOptions struct {
	Threads int
	// Enabled filters findings by kind; nil keeps all of them.
	Enabled func(m.FindingKind) bool
	// OnStart and OnDone are called from worker goroutines.
	OnStart func(job Job, worker int)
	OnDone  func(job Job, worker int, findings []m.Finding)
	// OnSkip is called for each statement of a job, nested ones included,
	// whose selector is not analyzable.
	OnSkip func(job Job, stmt *m.SelectCase, reason selector.Reason)
}

// AnalyzeBatch analyzes jobs on a pool of workers. Cancellation is checked
// between statements: jobs not started when ctx is done are left undone and
// the result is marked Abandoned. Findings are never dropped for a job that
// completed.
func AnalyzeBatch(ctx context.Context, jobs []Job, opts BatchOptions) BatchResult {
	threads := opts.Threads
	if threads <= 0 {
		threads = 1
	}

	result := BatchResult{Results: make([]JobResult, len(jobs)), Total: len(jobs)}

	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan int)

	g.Go(func() error {
		defer close(queue)

		for i := range jobs {
			select {
			case <-gctx.Done():
				return nil
			case queue <- i:
			}
		}

		return nil
	})

	for worker := range threads {
		g.Go(func() error {
			for i := range queue {
				if gctx.Err() != nil {
					continue
				}

				result.Results[i] = runJob(jobs[i], worker, opts)
			}

			return nil
		})
	}

	_ = g.Wait()

	for _, res := range result.Results {
		if res.Done {
			result.Completed++
		}
	}

	result.Abandoned = result.Completed < result.Total

	return result
}

func runJob(job Job, worker int, opts BatchOptions) JobResult {
	if opts.OnStart != nil {
		opts.OnStart(job, worker)
	}

	var analyzeOpts []AnalyzeOption
	if opts.OnSkip != nil {
		analyzeOpts = append(analyzeOpts, WithSkipHandler(func(stmt *m.SelectCase, reason selector.Reason) {
			opts.OnSkip(job, stmt, reason)
		}))
	}

	findings := []m.Finding{}

	for f := range Analyze(job.Statement, job.Symbols, analyzeOpts...) {
		if opts.Enabled == nil || opts.Enabled(f.Kind) {
			findings = append(findings, f)
		}
	}

	if opts.OnDone != nil {
		opts.OnDone(job, worker, findings)
	}

	return JobResult{Findings: findings, Done: true}
}
