package model

// Report holds the analysis outcome for a single module document.
type Report struct {
	Source     Path      `yaml:"source"`
	Hash       string    `yaml:"hash"`
	Module     string    `yaml:"module"`
	Statements int       `yaml:"statements"`
	Findings   []Finding `yaml:"findings"`
	// Abandoned is set when cancellation stopped the batch before every
	// statement of this document was analyzed.
	Abandoned bool   `yaml:"abandoned,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// Estimate summarizes what a run would analyze in one document.
type Estimate struct {
	Source     Source
	Statements int
	Blocks     int
	Clauses    int
	Err        error
}
