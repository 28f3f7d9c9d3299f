package coverage

import (
	"slices"
	"strings"

	"github.com/mouse-blink/casereach/internal/domain/clauses"
	"github.com/mouse-blink/casereach/internal/domain/values"
)

// ClauseVerdict is the judgement for one clause of a block.
type ClauseVerdict struct {
	Classified clauses.Classified
	// Covered is set when every value the clause matches is already matched
	// by an earlier block, or the clause matches no value of the target.
	Covered bool
}

// BlockVerdict is the judgement for one Case block.
type BlockVerdict struct {
	Clauses []ClauseVerdict
	// Unreachable is set when no selector value can enter the block, or when
	// the block repeats the clause set of an earlier block.
	Unreachable bool
}

// Engine judges the blocks of one statement in source order.
type Engine struct {
	state *State
	seen  map[string]struct{}
}

// NewEngine returns an engine over empty coverage for target.
func NewEngine(target values.Domain, members []values.Value) *Engine {
	return &Engine{state: NewState(target, members), seen: map[string]struct{}{}}
}

// Judge evaluates one block against the coverage of the blocks before it and
// then merges the block in unless it is unreachable. Clauses of the same
// block never shadow each other.
func (e *Engine) Judge(block []clauses.Classified) BlockVerdict {
	v := BlockVerdict{Clauses: make([]ClauseVerdict, len(block))}
	comparable, covered, mismatched := 0, 0, 0
	for i, c := range block {
		v.Clauses[i].Classified = c
		if c.Mismatch {
			mismatched++
			continue
		}

		isCovered, isComparable := e.state.Covers(c.Shape)
		if !isComparable {
			continue
		}

		comparable++
		if isCovered {
			covered++
			v.Clauses[i].Covered = true
		}
	}

	v.Unreachable = comparable > 0 && covered == comparable && comparable+mismatched == len(block)

	key := blockKey(block)
	if _, dup := e.seen[key]; dup && len(block) > 0 {
		v.Unreachable = true
	}

	e.seen[key] = struct{}{}

	if !v.Unreachable {
		for _, c := range block {
			if !c.Mismatch {
				e.state.Merge(c.Shape)
			}
		}
	}

	return v
}

// CaseElseUnreachable reports whether the blocks judged so far match every
// value of the target.
func (e *Engine) CaseElseUnreachable() bool {
	return e.state.Exhausted()
}

// blockKey is the order-insensitive set of canonical clause texts of a block.
func blockKey(block []clauses.Classified) string {
	texts := make([]string, 0, len(block))
	for _, c := range block {
		texts = append(texts, c.Text)
	}

	slices.Sort(texts)
	return strings.Join(slices.Compact(texts), "\x00")
}
