package controller

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	model "github.com/mouse-blink/casereach/internal/model"
)

var kindColors = map[model.FindingKind]lipgloss.Color{
	model.FindingUnreachableCase:     lipgloss.Color("1"),
	model.FindingUnreachableCaseElse: lipgloss.Color("3"),
	model.FindingTypeMismatch:        lipgloss.Color("5"),
}

// kindWidth fits the longest finding kind.
const kindWidth = 20

type findingDelegate struct {
	offset int
}

func (d findingDelegate) Height() int  { return 1 }
func (d findingDelegate) Spacing() int { return 0 }
func (d findingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d findingDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	fi, ok := item.(findingItem)
	if !ok {
		return
	}

	location := fmt.Sprintf("%s:%d", filepath.Base(fi.path), fi.finding.At.Line)
	width := l.Width() - kindWidth - 2

	kindStyle := lipgloss.NewStyle().
		Foreground(kindColors[fi.finding.Kind]).
		Bold(true).
		Width(kindWidth)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	text := truncateToWidth(location+"  "+fi.finding.Text, width)

	if index == l.Index() {
		kindStyle = selectedStyle.Width(kindWidth)
		textStyle = selectedStyle
		text = animateScroll(location+"  "+fi.finding.Text, width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", kindStyle.Render(string(fi.finding.Kind)), textStyle.Render(text))
}

// analysisModel shows worker progress while a batch runs and the findings
// list once it is done. The viewer variant starts in the finished state.
type analysisModel struct {
	width         int
	height        int
	progressBar   progress.Model
	total         int
	completed     int
	threads       int
	shardIndex    int
	shards        int
	threadStmts   map[int]string
	rendered      bool
	finished      bool
	viewer        bool
	findings      []findingItem
	findingsList  list.Model
	delegate      findingDelegate
	animOffset    int
	lastSelected  int
	showDetail    bool
	abandonedDocs int
}

func newAnalysisModel() analysisModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := findingDelegate{}
	findingsList := list.New([]list.Item{}, delegate, 80, 20)
	findingsList.SetShowPagination(false)
	findingsList.SetShowFilter(true)
	findingsList.SetShowHelp(false)
	findingsList.SetShowTitle(false)
	findingsList.SetShowStatusBar(false)
	findingsList.FilterInput.Placeholder = "Filter findings…"

	return analysisModel{
		progressBar:  bar,
		findingsList: findingsList,
		delegate:     delegate,
		threadStmts:  make(map[int]string),
		lastSelected: -1,
	}
}

func (m analysisModel) asViewer() analysisModel {
	m.viewer = true

	return m
}

func (m analysisModel) Init() tea.Cmd {
	return tick(100 * time.Millisecond)
}

func (m analysisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(msg.Width-8, 10)
		m.findingsList.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.finished && m.findingsList.FilterState() != list.Filtering {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.findingsList.SetDelegate(m.delegate)
		}

		return m, tick(150 * time.Millisecond)

	case concurrencyMsg:
		m.threads = msg.threads
		m.shardIndex = msg.shardIndex
		m.shards = msg.shards
		m.rendered = true

	case upcomingMsg:
		m.total = msg.count
		m.completed = 0
		m.rendered = true
		m.finished = msg.count == 0

	case startAnalysisMsg:
		m.threadStmts[msg.thread] = fmt.Sprintf("%s %s", filepath.Base(msg.path), msg.statement)
		m.rendered = true

	case completedAnalysisMsg:
		m = m.handleCompleted(msg)

	case reportsMsg:
		m = m.handleReports(msg)
	}

	return m, nil
}

func (m analysisModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.findingsList.FilterState() != list.Filtering {
			return m, tea.Quit
		}
	case "enter", " ":
		if m.finished && m.findingsList.FilterState() != list.Filtering {
			m.showDetail = !m.showDetail

			return m, nil
		}
	}

	if !m.finished {
		return m, nil
	}

	var cmd tea.Cmd

	m.findingsList, cmd = m.findingsList.Update(msg)

	if m.findingsList.Index() != m.lastSelected {
		m.lastSelected = m.findingsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.findingsList.SetDelegate(m.delegate)
	}

	return m, cmd
}

func (m analysisModel) handleCompleted(msg completedAnalysisMsg) analysisModel {
	m.completed++
	m.rendered = true

	for thread, stmt := range m.threadStmts {
		if stmt == fmt.Sprintf("%s %s", filepath.Base(msg.path), msg.statement) {
			delete(m.threadStmts, thread)
		}
	}

	for _, f := range msg.findings {
		m.findings = append(m.findings, findingItem{path: msg.path, finding: f})
	}

	if m.total > 0 && m.completed >= m.total {
		m.finished = true
	}

	m.syncList()

	return m
}

func (m analysisModel) handleReports(msg reportsMsg) analysisModel {
	m.findings = m.findings[:0]
	m.abandonedDocs = 0

	for _, r := range msg.reports {
		if r.Abandoned {
			m.abandonedDocs++
		}

		for _, f := range r.Findings {
			m.findings = append(m.findings, findingItem{path: string(r.Source), finding: f})
		}
	}

	m.rendered = true
	m.finished = true
	m.syncList()

	return m
}

func (m *analysisModel) syncList() {
	items := make([]list.Item, 0, len(m.findings))
	for _, f := range m.findings {
		items = append(items, f)
	}

	m.findingsList.SetItems(items)

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}
}

func (m analysisModel) View() string {
	if !m.rendered {
		if m.viewer {
			return "Loading reports…\n"
		}

		return "Initializing analysis…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m analysisModel) viewProgress() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s  •  Shard: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
		accentStyle.Render(fmt.Sprintf("%d", m.shardIndex)),
		accentStyle.Render(fmt.Sprintf("%d", m.shards)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Casereach Analysis"),
		summary,
		lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(percent)),
		m.renderWorkers(),
		footerStyle.Width(m.width).Render("Press q to quit"),
	)
}

func (m analysisModel) renderWorkers() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(max(m.width-4, 20))

	lines := make([]string, 0, m.threads)
	for i := range m.threads {
		stmt, ok := m.threadStmts[i]
		if !ok {
			stmt = "idle"
		}

		lines = append(lines, fmt.Sprintf("Worker %d: %s", i, truncateToWidth(stmt, max(m.width-20, 10))))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m analysisModel) viewResults() string {
	counts := make(map[model.FindingKind]int)
	for _, f := range m.findings {
		counts[f.finding.Kind]++
	}

	summaryText := fmt.Sprintf(
		"Findings: %s  •  Unreachable Case: %s  •  Unreachable Case Else: %s  •  Type Mismatch: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.findings))),
		accentStyle.Render(fmt.Sprintf("%d", counts[model.FindingUnreachableCase])),
		accentStyle.Render(fmt.Sprintf("%d", counts[model.FindingUnreachableCaseElse])),
		accentStyle.Render(fmt.Sprintf("%d", counts[model.FindingTypeMismatch])),
	)

	if m.abandonedDocs > 0 {
		summaryText += fmt.Sprintf("  •  Incomplete: %d", m.abandonedDocs)
	}

	title := "Casereach Findings"
	if m.viewer {
		title = "Casereach Reports"
	}

	detail := m.renderDetail()

	listWidth := max(m.width-6, 20)
	listHeight := max(m.height-9-lipgloss.Height(detail), 5)

	m.findingsList.SetHeight(listHeight)
	m.findingsList.SetWidth(listWidth)

	header := fmt.Sprintf("%-*s  %s", kindWidth, "Kind", "Location")

	parts := []string{
		titleStyle.Render(title),
		summaryStyle.Render(summaryText),
		renderTable(header, m.findingsList.View(), listWidth),
	}

	if detail != "" {
		parts = append(parts, detail)
	}

	parts = append(parts, footerStyle.Width(m.width).Render("↑/k up • ↓/j down • / filter • enter details • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m analysisModel) renderDetail() string {
	if !m.showDetail {
		return ""
	}

	fi, ok := m.findingsList.SelectedItem().(findingItem)
	if !ok {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		formatFinding(model.Path(fi.path), fi.finding),
		"statement: "+fi.finding.Statement,
		"text:      "+fi.finding.Text,
	)

	return tableContainer.Width(max(m.width-4, 20)).Render(body)
}
