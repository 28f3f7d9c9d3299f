package controller

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/casereach/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayEstimation prints one row per document or the estimation error.
func (s *SimpleUI) DisplayEstimation(estimates []m.Estimate, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Statements", "Blocks", "Clauses"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var statements, blocks, clauses int

	var failed []m.Estimate

	for _, e := range estimates {
		if e.Err != nil {
			failed = append(failed, e)
			continue
		}

		table.Append([]string{
			sourcePath(e.Source),
			fmt.Sprintf("%d", e.Statements),
			fmt.Sprintf("%d", e.Blocks),
			fmt.Sprintf("%d", e.Clauses),
		})

		statements += e.Statements
		blocks += e.Blocks
		clauses += e.Clauses
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)-len(failed)),
		fmt.Sprintf("%d", statements),
		fmt.Sprintf("%d", blocks),
		fmt.Sprintf("%d", clauses),
	})

	table.Render()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("\n%s", tableBuffer.String())

	for _, e := range failed {
		s.printf("skipped %s: %v\n", sourcePath(e.Source), e.Err)
	}

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("Analyzing with %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingInfo shows the number of statements about to be analyzed.
func (s *SimpleUI) DisplayUpcomingInfo(statements int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("Upcoming statements: %d\n", statements)
}

// DisplayStartingAnalysis prints nothing; plain output only reports results.
func (s *SimpleUI) DisplayStartingAnalysis(_ m.Path, _ string, _ int) {}

// DisplayCompletedAnalysis prints one line per finding in compiler style.
func (s *SimpleUI) DisplayCompletedAnalysis(source m.Path, _ string, findings []m.Finding) {
	if len(findings) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range findings {
		s.printf("%s\n", formatFinding(source, f))
	}
}

// DisplayReports prints every finding of the given reports as a table.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Line", "Kind", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	total := 0
	abandoned := 0

	for _, r := range reports {
		if r.Abandoned {
			abandoned++
		}

		for _, f := range r.Findings {
			table.Append([]string{
				string(r.Source),
				fmt.Sprintf("%d", f.At.Line),
				string(f.Kind),
				f.Message,
			})

			total++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		"Findings",
		fmt.Sprintf("%d", total),
	})

	table.Render()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("\n%s", tableBuffer.String())

	if abandoned > 0 {
		s.printf("%d report(s) are incomplete: the run was cancelled\n", abandoned)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func sourcePath(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	return string(source.Origin.Path)
}

// formatFinding renders f as "path:line:col: Kind: message".
func formatFinding(source m.Path, f m.Finding) string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", source, f.At.Line, f.At.Column, f.Kind, f.Message)
}
