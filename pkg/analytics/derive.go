package analytics

import "time"

// wholeDays truncates the difference between two timestamps to whole
// calendar days, matching how the circulation reports have always counted
// loan lengths.
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// Returned reports the return timestamp, if the loan has one.
func (r LoanInfoRow) Returned() (time.Time, bool) {
	if r.ReturnDate == nil {
		return time.Time{}, false
	}
	return *r.ReturnDate, true
}

// LoanDuration is the whole-day length of a completed loan. Open loans have
// no duration; callers must check ok before using the value.
func (r LoanInfoRow) LoanDuration() (int, bool) {
	returned, ok := r.Returned()
	if !ok {
		return 0, false
	}
	return wholeDays(r.CheckoutDate, returned), true
}

// DaysOverdue is the whole number of days a returned loan came back after
// its due date. Open or on-time loans score zero.
func (r LoanInfoRow) DaysOverdue() int {
	returned, ok := r.Returned()
	if !ok || !returned.After(r.DueDate) {
		return 0
	}
	return wholeDays(r.DueDate, returned)
}

// LoanYear and LoanMonth place a loan on the circulation calendar by its
// checkout timestamp.
func (r LoanInfoRow) LoanYear() int { return r.CheckoutDate.Year() }

func (r LoanInfoRow) LoanMonth() time.Month { return r.CheckoutDate.Month() }

// PublicationDecade buckets a publication date into its decade (1997 -> 1990).
func PublicationDecade(published time.Time) int {
	return published.Year() / 10 * 10
}
