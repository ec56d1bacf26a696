package util

import (
	"time"
)

const layout = "2006-01-02"

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// TruncateToDay drops the time-of-day component, keeping UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateGrid returns every calendar day from start through end inclusive.
func DateGrid(start, end time.Time) []time.Time {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	dates := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// MonthKey buckets a timestamp into its calendar month, formatted "2006-01".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
