package controller

import (
	"io"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/casereach/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := buildStartConfig(options)

	var model tea.Model

	switch cfg.mode {
	case ModeAnalyze:
		model = newAnalysisModel()
	case ModeView:
		model = newAnalysisModel().asViewer()
	default:
		model = newEstimateModel()
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	if IsTTY(t.output) {
		opts = append(opts, tea.WithAltScreen())
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.startWithModel(newEstimateModel())
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	started := t.started
	t.mu.Unlock()

	if !started || program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayEstimation sends the per-file estimation to the program.
func (t *TUI) DisplayEstimation(estimates []m.Estimate, err error) error {
	t.ensureStarted()

	msg := estimationMsg{err: err}

	for _, e := range estimates {
		item := fileItem{path: sourcePath(e.Source), statements: e.Statements, blocks: e.Blocks, failed: e.Err != nil}
		msg.items = append(msg.items, item)
		msg.statements += e.Statements
		msg.blocks += e.Blocks
	}

	sort.Slice(msg.items, func(i, j int) bool {
		return msg.items[i].path < msg.items[j].path
	})

	t.send(msg)

	return err
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayUpcomingInfo shows the number of statements about to be analyzed.
func (t *TUI) DisplayUpcomingInfo(statements int) {
	t.send(upcomingMsg{count: statements})
}

// DisplayStartingAnalysis shows the statement a worker picked up.
func (t *TUI) DisplayStartingAnalysis(source m.Path, statement string, threadID int) {
	t.send(startAnalysisMsg{path: string(source), statement: statement, thread: threadID})
}

// DisplayCompletedAnalysis adds the findings of a finished statement.
func (t *TUI) DisplayCompletedAnalysis(source m.Path, statement string, findings []m.Finding) {
	t.send(completedAnalysisMsg{path: string(source), statement: statement, findings: findings})
}

// DisplayReports shows previously saved reports.
func (t *TUI) DisplayReports(reports []m.Report) error {
	t.send(reportsMsg{reports: reports})

	return nil
}
