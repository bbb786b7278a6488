package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountByPartitionsAllRows(t *testing.T) {
	rows := []string{"a", "b", "a", "c", "a", "b"}

	groups := CountBy(rows, func(s string) string { return s })

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, len(rows), total)
}

func TestCountByOrdersByCountThenKey(t *testing.T) {
	rows := []string{"cherry", "apple", "banana", "apple", "banana", "apple"}

	groups := CountBy(rows, func(s string) string { return s })

	assert.Equal(t, []GroupCount{
		{Key: "apple", Count: 3},
		{Key: "banana", Count: 2},
		{Key: "cherry", Count: 1},
	}, groups)
}

func TestCountByTiesBreakAscendingKey(t *testing.T) {
	rows := []string{"zeta", "alpha", "mike"}

	groups := CountBy(rows, func(s string) string { return s })

	assert.Equal(t, "alpha", groups[0].Key)
	assert.Equal(t, "mike", groups[1].Key)
	assert.Equal(t, "zeta", groups[2].Key)
}

func TestSumBy(t *testing.T) {
	type fine struct {
		status string
		amount float64
	}
	rows := []fine{
		{"Pending", 10},
		{"Paid", 6},
		{"Pending", 12},
		{"Paid", 1},
	}

	sums := SumBy(rows,
		func(f fine) string { return f.status },
		func(f fine) float64 { return f.amount })

	assert.Equal(t, []GroupSum{
		{Key: "Pending", Sum: 22},
		{Key: "Paid", Sum: 7},
	}, sums)
}

func TestMeanSkipsUndefinedValues(t *testing.T) {
	rows := []*int{ptr(10), nil, ptr(14), nil}

	mean, err := Mean(rows, func(v *int) (float64, bool) {
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	})

	assert.NoError(t, err)
	assert.Equal(t, 12.0, mean)
}

func TestMeanErrorsWithoutValues(t *testing.T) {
	rows := []*int{nil, nil}

	_, err := Mean(rows, func(v *int) (float64, bool) { return 0, v != nil })

	assert.ErrorIs(t, err, ErrNoRows)
}

func TestPercentage(t *testing.T) {
	rows := []int{1, 2, 3, 4}

	count, pct, err := Percentage(rows, func(v int) bool { return v%2 == 0 })

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 50.0, pct)
}

func TestPercentageErrorsOnEmptyInput(t *testing.T) {
	_, _, err := Percentage(nil, func(int) bool { return true })

	assert.ErrorIs(t, err, ErrNoRows)
}

func ptr(v int) *int { return &v }
