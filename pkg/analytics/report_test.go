package analytics

import (
	"testing"

	"libanalytics/pkg/dataset"
	"libanalytics/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeSampleCollection(t *testing.T) {
	report, err := Compute(dataset.Sample())
	assert.NoError(t, err)
	assert.NotEmpty(t, report.ReportID)

	assert.Equal(t, []DecadeCount{
		{Decade: 1810, Count: 1},
		{Decade: 1930, Count: 1},
		{Decade: 1970, Count: 1},
		{Decade: 1990, Count: 1},
	}, report.DecadeCounts)

	assert.Equal(t, []GroupCount{
		{Key: "Fiction", Count: 3},
		{Key: "Mystery", Count: 2},
		{Key: "Fantasy", Count: 1},
		{Key: "Young Adult", Count: 1},
	}, report.CategoryCounts)

	assert.Equal(t, []GroupCount{
		{Key: "Agatha Christie", Count: 1},
		{Key: "J.K. Rowling", Count: 1},
		{Key: "Jane Austen", Count: 1},
		{Key: "Stephen King", Count: 1},
	}, report.AuthorCounts)

	assert.Equal(t, []GroupCount{
		{Key: "Penguin Random House", Count: 2},
		{Key: "HarperCollins", Count: 1},
		{Key: "Simon & Schuster", Count: 1},
	}, report.PublisherCounts)
}

func TestComputeSampleCirculation(t *testing.T) {
	report, err := Compute(dataset.Sample())
	assert.NoError(t, err)

	// Chronological, not count-ordered: one entry per checkout month.
	assert.Equal(t, []MonthCount{
		{Year: 2023, Month: "June", Count: 4},
		{Year: 2023, Month: "July", Count: 4},
		{Year: 2023, Month: "August", Count: 4},
		{Year: 2023, Month: "September", Count: 4},
		{Year: 2023, Month: "October", Count: 1},
	}, report.MonthlyCirculation)

	assert.Equal(t, []GroupCount{
		{Key: "Harry Potter and the Philosopher's Stone", Count: 5},
		{Key: "Murder on the Orient Express", Count: 4},
		{Key: "Pride and Prejudice", Count: 4},
		{Key: "The Shining", Count: 4},
	}, report.PopularBooks)

	assert.Equal(t, []MemberLoanCount{
		{MemberID: 1, Name: "John Smith", Count: 4},
		{MemberID: 2, Name: "Emily Johnson", Count: 4},
		{MemberID: 3, Name: "Michael Williams", Count: 3},
		{MemberID: 4, Name: "Sarah Brown", Count: 3},
		{MemberID: 5, Name: "David Jones", Count: 3},
	}, report.ActiveMembers)

	// Loans of The Hobbit never reach the loan view; 17 rows remain.
	total := 0
	for _, g := range report.StatusCounts {
		total += g.Count
	}
	assert.Equal(t, 17, total)
	assert.Equal(t, []GroupCount{
		{Key: models.LoanReturned, Count: 10},
		{Key: models.LoanBorrowed, Count: 5},
		{Key: models.LoanOverdue, Count: 2},
	}, report.StatusCounts)
}

func TestComputeSampleDurationsAndOverdue(t *testing.T) {
	report, err := Compute(dataset.Sample())
	assert.NoError(t, err)

	assert.InDelta(t, 12.3, report.AverageLoanDuration, 0.001)

	assert.Equal(t, []BinCount{
		{Label: "1 week or less", Count: 0},
		{Label: "1-2 weeks", Count: 9},
		{Label: "2-3 weeks", Count: 1},
		{Label: "3-4 weeks", Count: 0},
		{Label: "More than 4 weeks", Count: 0},
	}, report.DurationDistribution)

	binTotal := 0
	for _, b := range report.DurationDistribution {
		binTotal += b.Count
	}
	returned := 0
	for _, g := range report.StatusCounts {
		if g.Key == models.LoanReturned {
			returned = g.Count
		}
	}
	assert.Equal(t, returned, binTotal)

	assert.Equal(t, 2, report.OverdueCount)
	assert.InDelta(t, 100.0*2/17, report.OverduePercent, 0.001)
}

func TestComputeSampleFinesAndStaff(t *testing.T) {
	report, err := Compute(dataset.Sample())
	assert.NoError(t, err)

	assert.InDelta(t, 29.00, report.FineTotals.Total, 0.001)
	assert.InDelta(t, 22.00, report.FineTotals.Pending, 0.001)
	assert.InDelta(t, 7.00, report.FineTotals.Collected, 0.001)

	assert.Equal(t, []StaffLoanCount{
		{StaffID: 1, Name: "Robert Anderson", Count: 7},
		{StaffID: 2, Name: "Jennifer Thomas", Count: 5},
		{StaffID: 3, Name: "William Martinez", Count: 5},
	}, report.StaffLoanCounts)
}

func TestComputeSampleDaysOverdue(t *testing.T) {
	ds := dataset.Sample()
	rows := BuildLoanInfo(ds, BuildBookInfo(ds))

	sum := 0
	for _, r := range rows {
		sum += r.DaysOverdue()
	}
	// Only loan 3 came back late, by five whole days.
	assert.Equal(t, 5, sum)
}

func TestComputeFailsWithoutLoans(t *testing.T) {
	ds := dataset.Sample()
	ds.Loans = nil

	_, err := Compute(ds)

	assert.ErrorIs(t, err, ErrNoRows)
}

func TestComputeFailsWithoutReturnedLoans(t *testing.T) {
	ds := dataset.Sample()
	for i := range ds.Loans {
		ds.Loans[i].ReturnDate = nil
		ds.Loans[i].Status = models.LoanBorrowed
	}

	_, err := Compute(ds)

	assert.ErrorIs(t, err, ErrNoRows)
}

func TestBookInfoRoundTripBookCount(t *testing.T) {
	ds := dataset.Sample()
	rows := BuildBookInfo(ds)

	distinct := make(map[uint]bool)
	for _, r := range rows {
		distinct[r.BookID] = true
	}
	// Joined view never invents books; it can only lose the author-less ones.
	assert.LessOrEqual(t, len(distinct), len(ds.Books))
}
