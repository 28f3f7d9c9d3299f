package domain

import (
	"iter"

	"github.com/mouse-blink/casereach/internal/domain/clauses"
	"github.com/mouse-blink/casereach/internal/domain/coverage"
	"github.com/mouse-blink/casereach/internal/domain/folding"
	"github.com/mouse-blink/casereach/internal/domain/selector"
	m "github.com/mouse-blink/casereach/internal/model"
)

// Analyze returns the findings of stmt and of every statement nested in it.
// The sequence is lazy: blocks are judged as the consumer advances, and
// stopping early abandons the rest. Each statement nested in a block is
// analyzed on its own coverage, even when its parent is not analyzable.
func Analyze(stmt *m.SelectCase, resolver selector.Resolver, opts ...AnalyzeOption) iter.Seq[m.Finding] {
	return func(yield func(m.Finding) bool) {
		a := analysis{resolver: resolver, folder: folding.New(resolver), yield: yield}
		for _, opt := range opts {
			opt(&a)
		}

		a.statement(stmt, ignoreRule{})
	}
}

// AnalyzeOption customizes Analyze.
type AnalyzeOption func(*analysis)

// WithSkipHandler reports every statement whose selector cannot be analyzed.
func WithSkipHandler(fn func(stmt *m.SelectCase, reason selector.Reason)) AnalyzeOption {
	return func(a *analysis) {
		a.skipped = fn
	}
}

type analysis struct {
	resolver selector.Resolver
	folder   *folding.Folder
	yield    func(m.Finding) bool
	skipped  func(*m.SelectCase, selector.Reason)
}

func (a *analysis) statement(stmt *m.SelectCase, inherited ignoreRule) bool {
	rule := inherited.with(stmt.Annotations)
	q := selector.Qualify(stmt.Selector, stmt.Type, a.resolver)

	var (
		engine     *coverage.Engine
		classifier clauses.Classifier
	)

	if q.Analyzable {
		engine = coverage.NewEngine(q.Target, q.Members)
		classifier = clauses.Classifier{Target: q.Target, Variable: q.Variable, Folder: a.folder}
	} else if a.skipped != nil {
		a.skipped(stmt, q.Reason)
	}

	for i, block := range stmt.Blocks {
		blockRule := rule.with(block.Annotations)

		if engine != nil {
			classified := make([]clauses.Classified, len(block.Clauses))
			for j, c := range block.Clauses {
				classified[j] = classifier.Classify(c)
			}

			verdict := engine.Judge(classified)
			for _, f := range blockFindings(stmt, i, block, verdict) {
				if !a.emit(blockRule, f) {
					return false
				}
			}
		}

		for _, nested := range block.Nested {
			if !a.statement(nested, blockRule) {
				return false
			}
		}
	}

	if stmt.Else == nil {
		return true
	}

	elseRule := rule.with(stmt.Else.Annotations)
	if engine != nil && engine.CaseElseUnreachable() {
		if !a.emit(elseRule, caseElseFinding(stmt)) {
			return false
		}
	}

	for _, nested := range stmt.Else.Nested {
		if !a.statement(nested, elseRule) {
			return false
		}
	}

	return true
}

func (a *analysis) emit(rule ignoreRule, f m.Finding) bool {
	if rule.ignores(f.Kind) {
		return true
	}

	return a.yield(f)
}

// with returns a copy of r extended by the ignore annotations in annotations.
func (r ignoreRule) with(annotations []string) ignoreRule {
	var out ignoreRule

	mergeIgnoreRule(&out, r)
	mergeIgnoreRule(&out, buildIgnoreRule(annotations))

	return out
}
