package render

import (
	"strings"
	"testing"

	"libanalytics/pkg/analytics"
	"libanalytics/pkg/dataset"

	"github.com/stretchr/testify/assert"
)

func sampleReport(t *testing.T) *analytics.Report {
	report, err := analytics.Compute(dataset.Sample())
	if err != nil {
		t.Fatalf("failed to compute sample report: %v", err)
	}
	return report
}

func TestTextReportSections(t *testing.T) {
	text := Text(sampleReport(t))

	assert.Contains(t, text, "# Library Management System: Data Analysis Report")
	assert.Contains(t, text, "## 1. Overview of Database Structure")
	assert.Contains(t, text, "## 2. Collection Analysis")
	assert.Contains(t, text, "## 3. Circulation Analysis")
	assert.Contains(t, text, "## 4. Staff Performance Analysis")
	assert.Contains(t, text, "## 5. Recommendations")
}

func TestTextReportValues(t *testing.T) {
	text := Text(sampleReport(t))

	assert.Contains(t, text, "- Loans: 20 records")
	assert.Contains(t, text, "- Fiction: 3 books")
	assert.Contains(t, text, "- 1990s: 1 books")
	assert.Contains(t, text, "- June 2023: 4 loans")
	assert.Contains(t, text, "- Average loan duration: 12.3 days")
	assert.Contains(t, text, "- Total fines issued: $29.00")
	assert.Contains(t, text, "- Pending fines: $22.00")
	assert.Contains(t, text, "- Collected fines: $7.00")
	assert.Contains(t, text, "- Robert Anderson: 7 loans")
}

func TestBarChartScalesToMaxWidth(t *testing.T) {
	chart := BarChart("Test", []BarItem{
		{Label: "big", Value: 10},
		{Label: "small", Value: 5},
	}, 10)

	assert.Contains(t, chart, "Test")
	assert.Contains(t, chart, strings.Repeat("█", 10))
	assert.Contains(t, chart, strings.Repeat("█", 5))
}

func TestBarChartNonZeroValuesAlwaysVisible(t *testing.T) {
	chart := BarChart("Test", []BarItem{
		{Label: "huge", Value: 1000},
		{Label: "tiny", Value: 1},
	}, 20)

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	// Title line plus one bar line per item; the tiny bar still gets a cell.
	assert.Equal(t, 3, len(lines))
	assert.Contains(t, lines[2], "█")
}

func TestBarChartAlignsNonASCIILabels(t *testing.T) {
	chart := BarChart("Test", []BarItem{
		{Label: "Café", Value: 4},
		{Label: "Tea", Value: 2},
	}, 10)

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	assert.Equal(t, 3, len(lines))

	// Both bars start in the same terminal column even though "Café" is
	// longer in bytes than in cells.
	barColumn := func(line string) int {
		for i, r := range []rune(line) {
			if r == '█' {
				return i
			}
		}
		return -1
	}
	assert.Equal(t, barColumn(lines[1]), barColumn(lines[2]))
	assert.NotEqual(t, -1, barColumn(lines[1]))
}

func TestBarChartEmptyInput(t *testing.T) {
	assert.Equal(t, "", BarChart("Nothing", nil, 20))
}

func TestChartsCoverHeadlineTables(t *testing.T) {
	charts := Charts(sampleReport(t))

	assert.Contains(t, charts, "Books by Category")
	assert.Contains(t, charts, "Monthly Circulation Trends")
	assert.Contains(t, charts, "Most Popular Books")
	assert.Contains(t, charts, "Loan Duration Distribution")
	assert.Contains(t, charts, "Loan Status Overview")
}
