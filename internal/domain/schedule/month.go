package schedule

import (
	"errors"
	"time"
)

const (
	MonthLayout = "2006-01"
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04"
)

var ErrInvalidMonth = errors.New("invalid month format")

// Month is one displayed calendar month, the unit the month availability
// index is keyed by.
type Month struct {
	year  int
	month time.Month
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{year: t.Year(), month: t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

func (m Month) String() string {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
}

func (m Month) Before(other Month) bool {
	if m.year != other.year {
		return m.year < other.year
	}
	return m.month < other.month
}

func (m Month) Next() Month {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return MonthOf(t)
}

func (m Month) Prev() Month {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return MonthOf(t)
}

func (m Month) DayCount() int {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// ContainsDate reports whether an ISO date string falls inside this month.
// Malformed dates are never contained.
func (m Month) ContainsDate(date string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return t.Year() == m.year && t.Month() == m.month
}
