package domain

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/casereach/internal/model"
)

// duplicateJobs returns n jobs whose statement i repeats its first block
// i%3 times, so job i reports i%3 findings.
func duplicateJobs(n int) []Job {
	symbols := NewSymbolTable(testModule())
	jobs := make([]Job, 0, n)

	for i := range n {
		stmt := &m.SelectCase{ID: fmt.Sprintf("s%d", i), Selector: id("x")}
		for range i%3 + 1 {
			stmt.Blocks = append(stmt.Blocks, block(val(lit("7"))))
		}

		jobs = append(jobs, Job{Source: testSource("a.yaml"), Statement: stmt, Symbols: symbols})
	}

	return jobs
}

func TestAnalyzeBatch_ResultsFollowJobOrder(t *testing.T) {
	jobs := duplicateJobs(30)

	var started, done atomic.Int32

	result := AnalyzeBatch(context.Background(), jobs, BatchOptions{
		Threads: 4,
		OnStart: func(Job, int) { started.Add(1) },
		OnDone:  func(Job, int, []m.Finding) { done.Add(1) },
	})

	require.Len(t, result.Results, 30)
	assert.Equal(t, 30, result.Completed)
	assert.Equal(t, 30, result.Total)
	assert.False(t, result.Abandoned)
	assert.EqualValues(t, 30, started.Load())
	assert.EqualValues(t, 30, done.Load())

	for i, res := range result.Results {
		assert.True(t, res.Done)
		require.Len(t, res.Findings, i%3, "job %d", i)

		for _, f := range res.Findings {
			assert.Equal(t, fmt.Sprintf("s%d", i), f.Statement)
		}
	}

	sequential := AnalyzeBatch(context.Background(), jobs, BatchOptions{})
	assert.Equal(t, sequential.Findings(), result.Findings())
}

func TestAnalyzeBatch_WorkerIDsWithinPool(t *testing.T) {
	var bad atomic.Int32

	AnalyzeBatch(context.Background(), duplicateJobs(12), BatchOptions{
		Threads: 3,
		OnStart: func(_ Job, worker int) {
			if worker < 0 || worker >= 3 {
				bad.Add(1)
			}
		},
	})

	assert.Zero(t, bad.Load())
}

func TestAnalyzeBatch_Enabled(t *testing.T) {
	result := AnalyzeBatch(context.Background(), duplicateJobs(6), BatchOptions{
		Threads: 2,
		Enabled: func(kind m.FindingKind) bool { return kind == m.FindingTypeMismatch },
	})

	assert.Equal(t, 6, result.Completed)
	assert.Empty(t, result.Findings())

	for _, res := range result.Results {
		assert.NotNil(t, res.Findings)
	}
}

func TestAnalyzeBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var started atomic.Int32

	result := AnalyzeBatch(ctx, duplicateJobs(10), BatchOptions{
		Threads: 2,
		OnStart: func(Job, int) { started.Add(1) },
	})

	assert.True(t, result.Abandoned)
	assert.Zero(t, result.Completed)
	assert.Equal(t, 10, result.Total)
	assert.Zero(t, started.Load())
	assert.Empty(t, result.Findings())
}

func TestAnalyzeBatch_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := AnalyzeBatch(ctx, duplicateJobs(50), BatchOptions{
		Threads: 1,
		OnDone: func(job Job, _ int, _ []m.Finding) {
			if job.Statement.ID == "s4" {
				cancel()
			}
		},
	})

	assert.True(t, result.Abandoned)
	assert.GreaterOrEqual(t, result.Completed, 5)
	assert.Less(t, result.Completed, 50)

	for i := range 5 {
		assert.True(t, result.Results[i].Done, "job %d", i)
	}
}

func TestAnalyzeBatch_NoJobs(t *testing.T) {
	result := AnalyzeBatch(context.Background(), nil, BatchOptions{Threads: 3})

	assert.False(t, result.Abandoned)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Results)
}
