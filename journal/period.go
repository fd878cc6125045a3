package journal

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar window length used to bucket transactions.
type Period int

// Recognized periods. Weekly windows start on Monday.
const (
	PeriodDaily Period = iota
	PeriodWeekly
	PeriodMonthly
	PeriodQuarterly
	PeriodYearly
)

// String returns the lowercase name of the period.
func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "daily"
	case PeriodWeekly:
		return "weekly"
	case PeriodMonthly:
		return "monthly"
	case PeriodQuarterly:
		return "quarterly"
	case PeriodYearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// ParsePeriod takes a period name and returns the Period constant.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return PeriodDaily, nil
	case "weekly", "week":
		return PeriodWeekly, nil
	case "monthly", "month":
		return PeriodMonthly, nil
	case "quarterly", "quarter":
		return PeriodQuarterly, nil
	case "yearly", "year", "annual":
		return PeriodYearly, nil
	}

	var p Period

	return p, fmt.Errorf("not a valid Period: %q", s)
}

// Start truncates t to the beginning of the window containing it.
func (p Period) Start(t time.Time) time.Time {
	year, month, day := t.Date()

	switch p {
	case PeriodWeekly:
		// Monday-based week.
		midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
		offset := (int(midnight.Weekday()) + 6) % 7

		return midnight.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	case PeriodQuarterly:
		first := time.Month((int(month)-1)/3*3 + 1)

		return time.Date(year, first, 1, 0, 0, 0, 0, t.Location())
	case PeriodYearly:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	}
}

// Next returns the start of the window following the one beginning at
// start.
func (p Period) Next(start time.Time) time.Time {
	switch p {
	case PeriodWeekly:
		return start.AddDate(0, 0, 7)
	case PeriodMonthly:
		return start.AddDate(0, 1, 0)
	case PeriodQuarterly:
		return start.AddDate(0, 3, 0)
	case PeriodYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}
