package model

// FindingKind names the category of a finding.
type FindingKind string

const (
	// FindingUnreachableCase marks a Case block that can never be selected.
	FindingUnreachableCase FindingKind = "UnreachableCase"
	// FindingTypeMismatch marks a clause whose constant cannot convert to the selector type.
	FindingTypeMismatch FindingKind = "TypeMismatch"
	// FindingUnreachableCaseElse marks a Case Else reached by no value.
	FindingUnreachableCaseElse FindingKind = "UnreachableCaseElse"
)

// Finding is one diagnostic produced for a statement.
type Finding struct {
	Kind      FindingKind `yaml:"kind"`
	Statement string      `yaml:"statement"`
	// Block is the zero-based Case block index, -1 for Case Else.
	Block int `yaml:"block"`
	// Clause is the zero-based clause index for TypeMismatch, -1 otherwise.
	Clause  int      `yaml:"clause"`
	Text    string   `yaml:"text,omitempty"`
	Message string   `yaml:"message"`
	At      Position `yaml:",inline"`
}
