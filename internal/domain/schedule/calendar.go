package schedule

import "time"

// Calendar is the pure presentation model of the date-picking step: a grid of
// day cells for one displayed month, derived from the available-dates index
// and "today". It holds no network state and no timing assumptions.

type DayCell struct {
	Date       string       `json:"date"`
	Weekday    time.Weekday `json:"weekday"`
	Selectable bool         `json:"selectable"`
	Selected   bool         `json:"selected"`
}

type Calendar struct {
	Month           string    `json:"month"`
	Days            []DayCell `json:"days"`
	CanShowPrevious bool      `json:"can_show_previous"`
}

// BuildCalendar renders the grid for one month. A day is selectable iff it is
// not in the past (day granularity, same-day inclusive) AND present in the
// available-dates set. Backward navigation stops at the month containing
// today; forward navigation is unrestricted.
func BuildCalendar(month Month, available map[string]bool, selectedDate string, today time.Time) Calendar {
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	days := make([]DayCell, 0, month.DayCount())
	for d := 1; d <= month.DayCount(); d++ {
		t := time.Date(month.year, month.month, d, 0, 0, 0, 0, time.UTC)
		date := t.Format(DateLayout)
		days = append(days, DayCell{
			Date:       date,
			Weekday:    t.Weekday(),
			Selectable: !t.Before(todayDay) && available[date],
			Selected:   date == selectedDate,
		})
	}

	return Calendar{
		Month:           month.String(),
		Days:            days,
		CanShowPrevious: CanShowPreviousMonth(month, today),
	}
}

// CanShowPreviousMonth reports whether the user may navigate one month back:
// never to a month strictly before the month containing today.
func CanShowPreviousMonth(month Month, today time.Time) bool {
	return !month.Prev().Before(MonthOf(today))
}

// IsBookable is the selection invariant of the date step: a date may only be
// chosen when it is present in the month index and not in the past.
func IsBookable(date string, available map[string]bool, today time.Time) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !t.Before(todayDay) && available[date]
}
