package domain

import (
	"strings"

	m "github.com/mouse-blink/casereach/internal/model"
)

const ignoreAnnotation = "@ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(kind m.FindingKind) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(string(kind))]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreAnnotation reads "@Ignore" optionally followed by a
// comma-separated list of finding kinds. A leading comment quote is allowed.
func parseIgnoreAnnotation(text string) (ignoreRule, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimPrefix(s, "'"))

	if len(s) < len(ignoreAnnotation) || !strings.EqualFold(s[:len(ignoreAnnotation)], ignoreAnnotation) {
		return ignoreRule{}, false
	}

	rest := s[len(ignoreAnnotation):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return ignoreRule{}, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// buildIgnoreRule merges every ignore annotation in annotations.
func buildIgnoreRule(annotations []string) ignoreRule {
	var rule ignoreRule

	for _, a := range annotations {
		r, ok := parseIgnoreAnnotation(a)
		if !ok {
			continue
		}

		mergeIgnoreRule(&rule, r)
	}

	return rule
}
