package availability

import "time"

type CalendarDay struct {
	Date      string `json:"date"`
	Weekday   int    `json:"weekday"`
	Available bool   `json:"available"`
}

// Month lists every day of the month with its IsDateAvailable flag.
func Month(year int, month time.Month, windows []Window, now time.Time) []CalendarDay {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	days := make([]CalendarDay, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:      d.Format("2006-01-02"),
			Weekday:   int(d.Weekday()),
			Available: IsDateAvailable(d, windows, now),
		})
	}
	return days
}
