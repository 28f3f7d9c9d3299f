// Package controller provides output adapters for displaying analysis results.
package controller

import (
	m "github.com/mouse-blink/casereach/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeAnalyze
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithAnalyzeMode sets the UI to analysis mode.
func WithAnalyzeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnalyze
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func buildStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeEstimate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying analysis progress and findings.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEstimation(estimates []m.Estimate, err error) error
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayUpcomingInfo(statements int)
	DisplayStartingAnalysis(source m.Path, statement string, threadID int)
	DisplayCompletedAnalysis(source m.Path, statement string, findings []m.Finding)
	DisplayReports(reports []m.Report) error
}
