package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// scrollPause is the number of ticks a selected row rests before scrolling.
const scrollPause = 5

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// animateScroll returns a width-wide window of text that moves one rune per
// tick once offset passes scrollPause. Text that fits is returned unchanged.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	if offset < scrollPause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	start := (offset - scrollPause) % len(runes)

	window := make([]rune, 0, width)
	for i := range width {
		window = append(window, runes[(start+i)%len(runes)])
	}

	return string(window)
}

// truncateToWidth cuts text to width cells, ending with an ellipsis when cut.
func truncateToWidth(text string, width int) string {
	const ellipsis = "…"

	switch {
	case width <= 0:
		return ""
	case lipgloss.Width(text) <= width:
		return text
	case width <= lipgloss.Width(ellipsis):
		return ellipsis
	}

	limit := width - lipgloss.Width(ellipsis)
	used := 0

	out := make([]rune, 0, len(text))
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > limit {
			break
		}

		out = append(out, r)
		used += w
	}

	return string(out) + ellipsis
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("8"))

	tableContainer = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)

// renderTable frames a header line and a list body inside a rounded border.
func renderTable(header, body string, width int) string {
	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Width(width).Render(header),
			body,
		),
	)
}
