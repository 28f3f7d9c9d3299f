package domain

import (
	"github.com/mouse-blink/casereach/internal/domain/coverage"
	m "github.com/mouse-blink/casereach/internal/model"
)

const (
	msgUnreachableCase     = "Case block can never be entered"
	msgTypeMismatch        = "Case clause value cannot convert to the Select Case expression type"
	msgUnreachableCaseElse = "Case Else can never be entered"
)

// blockFindings maps the verdict of one block to findings: a TypeMismatch
// for every mismatched clause, then UnreachableCase for the block.
func blockFindings(stmt *m.SelectCase, index int, block *m.CaseBlock, v coverage.BlockVerdict) []m.Finding {
	var findings []m.Finding

	for j, c := range v.Clauses {
		if !c.Classified.Mismatch {
			continue
		}

		findings = append(findings, m.Finding{
			Kind:      m.FindingTypeMismatch,
			Statement: stmt.ID,
			Block:     index,
			Clause:    j,
			Text:      c.Classified.Text,
			Message:   msgTypeMismatch,
			At:        clausePos(block, j),
		})
	}

	if v.Unreachable {
		findings = append(findings, m.Finding{
			Kind:      m.FindingUnreachableCase,
			Statement: stmt.ID,
			Block:     index,
			Clause:    -1,
			Text:      blockText(block),
			Message:   msgUnreachableCase,
			At:        block.At,
		})
	}

	return findings
}

func caseElseFinding(stmt *m.SelectCase) m.Finding {
	return m.Finding{
		Kind:      m.FindingUnreachableCaseElse,
		Statement: stmt.ID,
		Block:     -1,
		Clause:    -1,
		Text:      "Case Else",
		Message:   msgUnreachableCaseElse,
		At:        stmt.Else.At,
	}
}

// clausePos falls back to the block position when the clause carries none.
func clausePos(block *m.CaseBlock, j int) m.Position {
	if j < len(block.Clauses) {
		if p := block.Clauses[j].Pos(); p.Line > 0 {
			return p
		}
	}

	return block.At
}

func blockText(block *m.CaseBlock) string {
	text := "Case "

	for i, c := range block.Clauses {
		if i > 0 {
			text += ", "
		}

		text += c.String()
	}

	return text
}
