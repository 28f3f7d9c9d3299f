package domain

import (
	"testing"

	m "github.com/mouse-blink/casereach/internal/model"
)

func TestParseIgnoreAnnotation_All(t *testing.T) {
	r, ok := parseIgnoreAnnotation("'@Ignore")
	if !ok {
		t.Fatalf("expected annotation to be parsed")
	}
	if !r.all || r.names != nil {
		t.Fatalf("expected all=true and names=nil")
	}
}

func TestParseIgnoreAnnotation_Names(t *testing.T) {
	r, ok := parseIgnoreAnnotation("@ignore UnreachableCase, typemismatch ")
	if !ok {
		t.Fatalf("expected annotation to be parsed")
	}
	if r.all {
		t.Fatalf("expected all=false")
	}
	if len(r.names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(r.names))
	}
	if !r.ignores(m.FindingUnreachableCase) || !r.ignores(m.FindingTypeMismatch) {
		t.Fatalf("expected both kinds to be ignored")
	}
	if r.ignores(m.FindingUnreachableCaseElse) {
		t.Fatalf("did not expect UnreachableCaseElse to be ignored")
	}
}

func TestParseIgnoreAnnotation_EmptyListIgnoresAll(t *testing.T) {
	r, ok := parseIgnoreAnnotation("@Ignore , ")
	if !ok {
		t.Fatalf("expected annotation to be parsed")
	}
	if !r.all {
		t.Fatalf("expected all=true")
	}
}

func TestParseIgnoreAnnotation_Rejects(t *testing.T) {
	for _, text := range []string{"", "@Folder Utilities", "@IgnoreModule", "' ordinary comment", "@Ign"} {
		if _, ok := parseIgnoreAnnotation(text); ok {
			t.Fatalf("did not expect %q to be parsed", text)
		}
	}
}

func TestIgnoreRule_With(t *testing.T) {
	base := buildIgnoreRule([]string{"@Ignore TypeMismatch", "@Description \"x\""})
	if base.all || !base.ignores(m.FindingTypeMismatch) {
		t.Fatalf("expected only TypeMismatch to be ignored")
	}

	child := base.with([]string{"@Ignore UnreachableCase"})
	if !child.ignores(m.FindingTypeMismatch) || !child.ignores(m.FindingUnreachableCase) {
		t.Fatalf("expected the child to inherit and extend the parent rule")
	}
	if base.ignores(m.FindingUnreachableCase) {
		t.Fatalf("extending a rule must not change the parent")
	}

	all := child.with([]string{"@Ignore"})
	if !all.ignores(m.FindingUnreachableCaseElse) {
		t.Fatalf("expected a bare annotation to ignore every kind")
	}

	if got := all.with([]string{"@Ignore TypeMismatch"}); !got.all {
		t.Fatalf("expected all to survive a later named annotation")
	}
}
