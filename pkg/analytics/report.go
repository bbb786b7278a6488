package analytics

import (
	"fmt"
	"sort"
	"time"

	"libanalytics/pkg/dataset"
	"libanalytics/pkg/models"

	"github.com/google/uuid"
)

// MonthCount is one calendar month of circulation activity.
type MonthCount struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MemberLoanCount ranks a member by borrowed items.
type MemberLoanCount struct {
	MemberID uint   `json:"memberId"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// StaffLoanCount ranks a staff member by processed loans.
type StaffLoanCount struct {
	StaffID uint   `json:"staffId"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// FineTotals sums fine amounts by payment status.
type FineTotals struct {
	Total     float64 `json:"total"`
	Pending   float64 `json:"pending"`
	Collected float64 `json:"collected"`
}

// Report is the full set of result tables one pipeline run produces.
type Report struct {
	ReportID    string    `json:"reportId"`
	GeneratedAt time.Time `json:"generatedAt"`

	TableCounts []dataset.TableCount `json:"tableCounts"`

	DecadeCounts    []DecadeCount `json:"decadeCounts"`
	CategoryCounts  []GroupCount  `json:"categoryCounts"`
	AuthorCounts    []GroupCount  `json:"authorCounts"`
	PublisherCounts []GroupCount  `json:"publisherCounts"`

	MonthlyCirculation []MonthCount      `json:"monthlyCirculation"`
	PopularBooks       []GroupCount      `json:"popularBooks"`
	ActiveMembers      []MemberLoanCount `json:"activeMembers"`
	StatusCounts       []GroupCount      `json:"statusCounts"`

	AverageLoanDuration  float64    `json:"averageLoanDuration"`
	DurationDistribution []BinCount `json:"durationDistribution"`

	OverdueCount   int     `json:"overdueCount"`
	OverduePercent float64 `json:"overduePercent"`

	FineTotals FineTotals `json:"fineTotals"`

	StaffLoanCounts []StaffLoanCount `json:"staffLoanCounts"`
}

// Compute runs the whole pipeline over one dataset: joins, derived fields,
// aggregations, bins. The dataset is read-only; every result table is new.
// It fails when the loan view is empty or no loan has ever been returned,
// instead of reporting zeros that mean nothing.
func Compute(ds *dataset.Dataset) (*Report, error) {
	bookInfo := BuildBookInfo(ds)
	bookCategories := BuildBookCategories(ds)
	loanInfo := BuildLoanInfo(ds, bookInfo)

	overdueCount, overduePct, err := Percentage(loanInfo, func(r LoanInfoRow) bool {
		return r.Status == models.LoanOverdue
	})
	if err != nil {
		return nil, fmt.Errorf("overdue analysis: %w", err)
	}

	avgDuration, err := Mean(loanInfo, func(r LoanInfoRow) (float64, bool) {
		d, ok := r.LoanDuration()
		return float64(d), ok
	})
	if err != nil {
		return nil, fmt.Errorf("loan duration analysis: %w", err)
	}

	return &Report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now(),
		TableCounts: ds.TableCounts(),

		DecadeCounts:    DecadeCounts(bookInfo),
		CategoryCounts:  CountBy(bookCategories, func(r BookCategoryRow) string { return r.Category }),
		AuthorCounts:    CountBy(bookInfo, func(r BookInfoRow) string { return r.Author }),
		PublisherCounts: CountBy(bookInfo, func(r BookInfoRow) string { return r.Publisher }),

		MonthlyCirculation: monthlyCirculation(loanInfo),
		PopularBooks:       CountBy(loanInfo, func(r LoanInfoRow) string { return r.Title }),
		ActiveMembers:      activeMembers(loanInfo),
		StatusCounts:       CountBy(loanInfo, func(r LoanInfoRow) string { return r.Status }),

		AverageLoanDuration:  avgDuration,
		DurationDistribution: DurationDistribution(loanInfo),

		OverdueCount:   overdueCount,
		OverduePercent: overduePct,

		FineTotals: fineTotals(ds.Fines),

		StaffLoanCounts: staffLoanCounts(ds, loanInfo),
	}, nil
}

// monthlyCirculation counts loan rows per checkout month. Circulation is a
// time series, so it sorts by year then calendar month instead of by count.
func monthlyCirculation(rows []LoanInfoRow) []MonthCount {
	type ym struct {
		year  int
		month time.Month
	}
	counts := make(map[ym]int)
	for _, r := range rows {
		counts[ym{r.LoanYear(), r.LoanMonth()}]++
	}
	keys := make([]ym, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	out := make([]MonthCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthCount{Year: k.year, Month: k.month.String(), Count: counts[k]})
	}
	return out
}

func activeMembers(rows []LoanInfoRow) []MemberLoanCount {
	counts := make(map[uint]int)
	names := make(map[uint]string)
	for _, r := range rows {
		counts[r.MemberID]++
		names[r.MemberID] = r.Member
	}
	out := make([]MemberLoanCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, MemberLoanCount{MemberID: id, Name: names[id], Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out
}

// staffLoanCounts groups loan rows by processing staff and resolves names
// from the staff table. Rows whose staff id does not resolve are dropped.
func staffLoanCounts(ds *dataset.Dataset, rows []LoanInfoRow) []StaffLoanCount {
	staffByID := make(map[uint]models.Staff, len(ds.Staff))
	for _, s := range ds.Staff {
		staffByID[s.StaffID] = s
	}
	counts := make(map[uint]int)
	for _, r := range rows {
		counts[r.StaffID]++
	}
	out := make([]StaffLoanCount, 0, len(counts))
	for id, c := range counts {
		s, ok := staffByID[id]
		if !ok {
			continue
		}
		out = append(out, StaffLoanCount{StaffID: id, Name: s.FullName(), Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].StaffID < out[j].StaffID
	})
	return out
}

func fineTotals(fines []models.Fine) FineTotals {
	var t FineTotals
	for _, f := range fines {
		t.Total += f.Amount
		switch f.Status {
		case models.FinePending:
			t.Pending += f.Amount
		case models.FinePaid:
			t.Collected += f.Amount
		}
	}
	return t
}
