package render

import (
	"fmt"
	"strings"

	"libanalytics/pkg/analytics"

	"github.com/charmbracelet/lipgloss"
)

var (
	chartTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	chartLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CBD5E1"))
)

// BarItem is one labeled bar of a horizontal bar chart.
type BarItem struct {
	Label string
	Value float64
}

// BarChart renders a horizontal bar chart. The longest bar takes maxWidth
// cells; the rest scale proportionally.
func BarChart(title string, items []BarItem, maxWidth int) string {
	if len(items) == 0 {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = 40
	}

	var max float64
	labelWidth := 0
	for _, it := range items {
		if it.Value > max {
			max = it.Value
		}
		// Terminal cells, not bytes, so non-ASCII labels line up.
		if w := lipgloss.Width(it.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		width := 0
		if max > 0 {
			width = int(it.Value / max * float64(maxWidth))
		}
		if width == 0 && it.Value > 0 {
			width = 1
		}
		label := it.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(it.Label))
		b.WriteString(chartLabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", width)))
		fmt.Fprintf(&b, " %g\n", it.Value)
	}
	return b.String()
}

// Charts renders the headline result tables as terminal bar charts.
func Charts(r *analytics.Report) string {
	sections := []string{
		BarChart("Books by Category", groupItems(r.CategoryCounts), 40),
		BarChart("Monthly Circulation Trends", monthItems(r.MonthlyCirculation), 40),
		BarChart("Most Popular Books", groupItems(r.PopularBooks), 40),
		BarChart("Loan Duration Distribution", binItems(r.DurationDistribution), 40),
		BarChart("Loan Status Overview", groupItems(r.StatusCounts), 40),
	}
	return strings.Join(sections, "\n")
}

func groupItems(groups []analytics.GroupCount) []BarItem {
	items := make([]BarItem, len(groups))
	for i, g := range groups {
		items[i] = BarItem{Label: g.Key, Value: float64(g.Count)}
	}
	return items
}

func monthItems(months []analytics.MonthCount) []BarItem {
	items := make([]BarItem, len(months))
	for i, m := range months {
		items[i] = BarItem{
			Label: fmt.Sprintf("%s %d", m.Month, m.Year),
			Value: float64(m.Count),
		}
	}
	return items
}

func binItems(bins []analytics.BinCount) []BarItem {
	items := make([]BarItem, len(bins))
	for i, b := range bins {
		items[i] = BarItem{Label: b.Label, Value: float64(b.Count)}
	}
	return items
}
