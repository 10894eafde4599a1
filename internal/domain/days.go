package domain

import "time"

// Day is one entry of the day selector: a machine value and a display label.
type Day struct {
	Value string `json:"value"` // YYYY-MM-DD
	Label string `json:"label"` // e.g. "Mon, Jan 2"
}

// UpcomingDays returns today plus the next n-1 calendar days in the given
// timezone, suitable for populating a date selector.
func UpcomingDays(n int, loc *time.Location) []Day {
	if loc == nil {
		loc = time.Local
	}

	now := clock.Now().In(loc)
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := now.AddDate(0, 0, i)
		days = append(days, Day{
			Value: d.Format(DateLayout),
			Label: d.Format("Mon, Jan 2"),
		})
	}
	return days
}
