package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// countWidth is the cell width of one numeric column.
const countWidth = 6

type estimateDelegate struct {
	offset int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	width := l.Width() - 2*countWidth - 4

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(countWidth).
		Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	path := truncateToWidth(file.path, width)

	if file.failed {
		pathStyle = pathStyle.Foreground(lipgloss.Color("1"))
	}

	if index == l.Index() {
		countStyle = selectedStyle.Width(countWidth).Align(lipgloss.Right)
		pathStyle = selectedStyle
		path = animateScroll(file.path, width, d.offset)
	}

	statements, blocks := fmt.Sprintf("%d", file.statements), fmt.Sprintf("%d", file.blocks)
	if file.failed {
		statements, blocks = "-", "-"
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		countStyle.Render(statements),
		countStyle.Render(blocks),
		pathStyle.Render(path),
	)
}

// estimateModel lists the documents a run would analyze.
type estimateModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     estimateDelegate
	statements   int
	blocks       int
	files        int
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEstimateModel() estimateModel {
	delegate := estimateDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return estimateModel{
		fileList:     fileList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m estimateModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetWidth(m.width)

	case tickMsg:
		if m.fileList.FilterState() == list.Filtering || !m.rendered {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.fileList.SetDelegate(m.delegate)

		return m, tick(150 * time.Millisecond)

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.fileList, cmd = m.fileList.Update(msg)
		m = m.resetScrollOnMove()

		return m, cmd

	case estimationMsg:
		m = m.handleEstimationMsg(msg)
	}

	return m, nil
}

func (m estimateModel) resetScrollOnMove() estimateModel {
	if m.fileList.Index() == m.lastSelected {
		return m
	}

	m.lastSelected = m.fileList.Index()
	m.animOffset = 0
	m.delegate.offset = 0
	m.fileList.SetDelegate(m.delegate)

	return m
}

func (m estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	m.err = msg.err
	m.statements = msg.statements
	m.blocks = msg.blocks
	m.files = 0

	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		if !item.failed {
			m.files++
		}

		items = append(items, item)
	}

	m.fileList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m estimateModel) View() string {
	if !m.rendered {
		return "Loading statement list…\n"
	}

	title := titleStyle.Render("Casereach Estimate")

	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			summaryStyle.Render("estimation error: "+m.err.Error()),
		)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Statements: %s   Blocks: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.statements)),
		accentStyle.Render(fmt.Sprintf("%d", m.blocks)),
		accentStyle.Render(fmt.Sprintf("%d", m.files)),
	))

	// title, summary, footer and the table border take nine rows.
	listHeight := max(m.height-9, 5)
	listWidth := m.width - 6

	m.fileList.SetHeight(listHeight)
	m.fileList.SetWidth(listWidth)

	header := fmt.Sprintf("%*s  %*s  %s", countWidth, "Stmts", countWidth, "Blocks", "File Path")
	footer := footerStyle.Width(m.width).Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		renderTable(header, m.fileList.View(), listWidth),
		footer,
	)
}
