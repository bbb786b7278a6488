package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rowWithDuration(days int) LoanInfoRow {
	checkout := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	returned := checkout.AddDate(0, 0, days)
	return LoanInfoRow{
		CheckoutDate: checkout,
		DueDate:      checkout.AddDate(0, 0, 14),
		ReturnDate:   &returned,
	}
}

func openRow() LoanInfoRow {
	checkout := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	return LoanInfoRow{CheckoutDate: checkout, DueDate: checkout.AddDate(0, 0, 14)}
}

func TestDurationDistributionBoundariesAreLeftInclusive(t *testing.T) {
	rows := []LoanInfoRow{
		rowWithDuration(0),
		rowWithDuration(6),
		rowWithDuration(7), // exactly one week belongs to the next bin up
		rowWithDuration(13),
		rowWithDuration(14),
		rowWithDuration(21),
		rowWithDuration(27),
		rowWithDuration(28),
		rowWithDuration(90),
	}

	bins := DurationDistribution(rows)

	assert.Equal(t, []BinCount{
		{Label: "1 week or less", Count: 2},
		{Label: "1-2 weeks", Count: 2},
		{Label: "2-3 weeks", Count: 1},
		{Label: "3-4 weeks", Count: 2},
		{Label: "More than 4 weeks", Count: 2},
	}, bins)
}

func TestDurationDistributionExcludesOpenLoans(t *testing.T) {
	rows := []LoanInfoRow{
		rowWithDuration(10),
		openRow(),
		openRow(),
		rowWithDuration(3),
	}

	bins := DurationDistribution(rows)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	// Bin counts sum to exactly the number of returned loans.
	assert.Equal(t, 2, total)
	assert.Equal(t, 5, len(bins))
}

func TestDurationDistributionEmptyInputKeepsBinOrder(t *testing.T) {
	bins := DurationDistribution(nil)

	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{
		"1 week or less", "1-2 weeks", "2-3 weeks", "3-4 weeks", "More than 4 weeks",
	}, labels)
}

func TestDecadeCountsAscending(t *testing.T) {
	rows := []BookInfoRow{
		{PublicationDate: time.Date(1997, 6, 26, 0, 0, 0, 0, time.UTC)},
		{PublicationDate: time.Date(1813, 1, 28, 0, 0, 0, 0, time.UTC)},
		{PublicationDate: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
		{PublicationDate: time.Date(1934, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	decades := DecadeCounts(rows)

	assert.Equal(t, []DecadeCount{
		{Decade: 1810, Count: 1},
		{Decade: 1930, Count: 1},
		{Decade: 1990, Count: 2},
	}, decades)
	assert.Equal(t, "1810s", decades[0].Label())
}
