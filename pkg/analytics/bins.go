package analytics

import (
	"fmt"
	"sort"
)

// BinCount is one labeled interval of a binned distribution.
type BinCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DecadeCount is one publication decade with its book-row count.
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// durationBins are the loan-length intervals, each half-open on the right:
// a 7-day loan lands in "1-2 weeks", not "1 week or less".
var durationBins = []struct {
	lower int
	label string
}{
	{0, "1 week or less"},
	{7, "1-2 weeks"},
	{14, "2-3 weeks"},
	{21, "3-4 weeks"},
	{28, "More than 4 weeks"},
}

// DurationDistribution bins completed loans by whole-day duration. Open
// loans have no duration and are left out entirely; the five bins always
// come back in boundary order.
func DurationDistribution(rows []LoanInfoRow) []BinCount {
	out := make([]BinCount, len(durationBins))
	for i, b := range durationBins {
		out[i].Label = b.label
	}
	for _, r := range rows {
		d, ok := r.LoanDuration()
		if !ok {
			continue
		}
		idx := 0
		for i := len(durationBins) - 1; i >= 0; i-- {
			if d >= durationBins[i].lower {
				idx = i
				break
			}
		}
		out[idx].Count++
	}
	return out
}

// DecadeCounts buckets book rows by publication decade, ascending by decade.
func DecadeCounts(rows []BookInfoRow) []DecadeCount {
	counts := make(map[int]int)
	for _, r := range rows {
		counts[PublicationDecade(r.PublicationDate)]++
	}
	out := make([]DecadeCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DecadeCount{Decade: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade < out[j].Decade })
	return out
}

// Label renders a decade bucket as it appears in the report ("1990s").
func (d DecadeCount) Label() string { return fmt.Sprintf("%ds", d.Decade) }
