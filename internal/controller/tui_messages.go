package controller

import m "github.com/mouse-blink/casereach/internal/model"

// Message types.
type estimationMsg struct {
	items      []fileItem
	statements int
	blocks     int
	err        error
}

type upcomingMsg struct {
	count int
}

type startAnalysisMsg struct {
	path      string
	statement string
	thread    int
}

type completedAnalysisMsg struct {
	path      string
	statement string
	findings  []m.Finding
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

type reportsMsg struct {
	reports []m.Report
}

// List item types.
type fileItem struct {
	path       string
	statements int
	blocks     int
	failed     bool
}

func (f fileItem) FilterValue() string {
	return f.path
}

type findingItem struct {
	path    string
	finding m.Finding
}

func (f findingItem) FilterValue() string {
	return f.path + " " + string(f.finding.Kind) + " " + f.finding.Text
}
