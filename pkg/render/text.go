// Package render formats computed result tables for people: a markdown-style
// text report and terminal bar charts. It does no data transformation of its
// own.
package render

import (
	"fmt"
	"strings"

	"libanalytics/pkg/analytics"
)

// Text renders the full analysis report as markdown-style text.
func Text(r *analytics.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Library Management System: Data Analysis Report\n\n")
	fmt.Fprintf(&b, "Report %s, generated %s\n\n", r.ReportID, r.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## 1. Overview of Database Structure\n\n")
	for _, tc := range r.TableCounts {
		fmt.Fprintf(&b, "- %s: %d records\n", tc.Table, tc.Records)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## 2. Collection Analysis\n\n")
	fmt.Fprintf(&b, "### Books by Publication Decade\n")
	for _, d := range r.DecadeCounts {
		fmt.Fprintf(&b, "- %s: %d books\n", d.Label(), d.Count)
	}
	fmt.Fprintf(&b, "\n### Books by Category\n")
	for _, g := range r.CategoryCounts {
		fmt.Fprintf(&b, "- %s: %d books\n", g.Key, g.Count)
	}
	fmt.Fprintf(&b, "\n### Books by Author\n")
	for _, g := range r.AuthorCounts {
		fmt.Fprintf(&b, "- %s: %d books\n", g.Key, g.Count)
	}
	fmt.Fprintf(&b, "\n### Books by Publisher\n")
	for _, g := range r.PublisherCounts {
		fmt.Fprintf(&b, "- %s: %d books\n", g.Key, g.Count)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## 3. Circulation Analysis\n\n")
	fmt.Fprintf(&b, "### Monthly Circulation Trends\n")
	for _, m := range r.MonthlyCirculation {
		fmt.Fprintf(&b, "- %s %d: %d loans\n", m.Month, m.Year, m.Count)
	}
	fmt.Fprintf(&b, "\n### Most Popular Books\n")
	for _, g := range r.PopularBooks {
		fmt.Fprintf(&b, "- %s: %d times borrowed\n", g.Key, g.Count)
	}
	fmt.Fprintf(&b, "\n### Most Active Members\n")
	for _, m := range r.ActiveMembers {
		fmt.Fprintf(&b, "- %s: %d items borrowed\n", m.Name, m.Count)
	}
	fmt.Fprintf(&b, "\n### Loan Duration Analysis\n")
	fmt.Fprintf(&b, "- Average loan duration: %.1f days\n", r.AverageLoanDuration)
	fmt.Fprintf(&b, "- Loan duration distribution:\n")
	for _, bin := range r.DurationDistribution {
		fmt.Fprintf(&b, "  - %s: %d loans\n", bin.Label, bin.Count)
	}
	fmt.Fprintf(&b, "\n### Overdue Analysis\n")
	fmt.Fprintf(&b, "- Current overdue loans: %d (%.1f%% of all loans)\n", r.OverdueCount, r.OverduePercent)
	fmt.Fprintf(&b, "\n### Fine Analysis\n")
	fmt.Fprintf(&b, "- Total fines issued: $%.2f\n", r.FineTotals.Total)
	fmt.Fprintf(&b, "- Pending fines: $%.2f\n", r.FineTotals.Pending)
	fmt.Fprintf(&b, "- Collected fines: $%.2f\n", r.FineTotals.Collected)
	b.WriteString("\n")

	fmt.Fprintf(&b, "## 4. Staff Performance Analysis\n\n")
	fmt.Fprintf(&b, "### Loans Processed by Staff\n")
	for _, s := range r.StaffLoanCounts {
		fmt.Fprintf(&b, "- %s: %d loans\n", s.Name, s.Count)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## 5. Recommendations\n\n")
	fmt.Fprintf(&b, "### Collection Development\n")
	fmt.Fprintf(&b, "1. Increase holdings in the most popular category\n")
	fmt.Fprintf(&b, "2. Consider acquiring more books from the most borrowed authors\n")
	fmt.Fprintf(&b, "3. Prioritize extra copies of frequently borrowed books to reduce reservation wait times\n")
	fmt.Fprintf(&b, "\n### Operations\n")
	fmt.Fprintf(&b, "1. Implement targeted reminders to reduce overdue items\n")
	fmt.Fprintf(&b, "2. Consider extended loan periods for less popular items\n")
	fmt.Fprintf(&b, "\n### Member Engagement\n")
	fmt.Fprintf(&b, "1. Create personalized reading recommendations for highly active members\n")
	fmt.Fprintf(&b, "2. Develop targeted outreach to inactive members\n")

	return b.String()
}
