package stats

import "time"

// Period selects the reporting window for a stats report
type Period int

const (
	PeriodWeek Period = iota
	PeriodMonth
	PeriodYear
)

// String returns the period's display label
func (p Period) String() string {
	switch p {
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return "week"
	}
}

// Range returns the inclusive start and end calendar dates for the period,
// relative to the supplied "today". Week is the 7-day window ending today,
// month runs from the 1st of the current month, year from January 1st.
func (p Period) Range(today time.Time) (start, end time.Time) {
	end = DateOnly(today)
	switch p {
	case PeriodMonth:
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	case PeriodYear:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	default:
		start = end.AddDate(0, 0, -6)
	}
	return start, end
}

// ParsePeriod maps a period label to its Period, defaulting to week
func ParsePeriod(s string) Period {
	switch s {
	case "month":
		return PeriodMonth
	case "year":
		return PeriodYear
	default:
		return PeriodWeek
	}
}

// DateOnly truncates a time to its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
