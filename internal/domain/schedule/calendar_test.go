//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bellebook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMonth(t *testing.T, s string) schedule.Month {
	t.Helper()
	m, err := schedule.ParseMonth(s)
	require.NoError(t, err)
	return m
}

func TestBuildCalendar(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("renders one cell per day of the month", func(t *testing.T) {
		cal := schedule.BuildCalendar(mustMonth(t, "2025-06"), nil, "", today)

		assert.Equal(t, "2025-06", cal.Month)
		assert.Len(t, cal.Days, 30)
		assert.Equal(t, "2025-06-01", cal.Days[0].Date)
		assert.Equal(t, "2025-06-30", cal.Days[29].Date)
	})

	t.Run("past days are never selectable, same day is", func(t *testing.T) {
		available := map[string]bool{
			"2025-06-09": true,
			"2025-06-10": true,
			"2025-06-11": true,
		}
		cal := schedule.BuildCalendar(mustMonth(t, "2025-06"), available, "", today)

		byDate := map[string]schedule.DayCell{}
		for _, d := range cal.Days {
			byDate[d.Date] = d
		}

		assert.False(t, byDate["2025-06-09"].Selectable, "yesterday")
		assert.True(t, byDate["2025-06-10"].Selectable, "today")
		assert.True(t, byDate["2025-06-11"].Selectable, "tomorrow")
	})

	t.Run("selectable days are a subset of the available set", func(t *testing.T) {
		available := map[string]bool{"2025-06-15": true, "2025-06-20": true}
		cal := schedule.BuildCalendar(mustMonth(t, "2025-06"), available, "", today)

		var selectable []string
		for _, d := range cal.Days {
			if d.Selectable {
				selectable = append(selectable, d.Date)
			}
		}
		if diff := cmp.Diff([]string{"2025-06-15", "2025-06-20"}, selectable); diff != "" {
			t.Errorf("selectable days mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty availability renders a fully unselectable grid", func(t *testing.T) {
		cal := schedule.BuildCalendar(mustMonth(t, "2025-07"), map[string]bool{}, "", today)

		for _, d := range cal.Days {
			assert.False(t, d.Selectable)
		}
	})

	t.Run("marks the selected date", func(t *testing.T) {
		cal := schedule.BuildCalendar(mustMonth(t, "2025-06"), nil, "2025-06-18", today)

		for _, d := range cal.Days {
			assert.Equal(t, d.Date == "2025-06-18", d.Selected)
		}
	})

	t.Run("backward navigation stops at the current month", func(t *testing.T) {
		assert.False(t, schedule.BuildCalendar(mustMonth(t, "2025-06"), nil, "", today).CanShowPrevious)
		assert.True(t, schedule.BuildCalendar(mustMonth(t, "2025-07"), nil, "", today).CanShowPrevious)
		assert.True(t, schedule.BuildCalendar(mustMonth(t, "2026-01"), nil, "", today).CanShowPrevious)
	})
}

func TestIsBookable(t *testing.T) {
	today := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	available := map[string]bool{"2025-06-05": true, "2025-06-10": true, "2025-06-20": true}

	assert.True(t, schedule.IsBookable("2025-06-10", available, today))
	assert.True(t, schedule.IsBookable("2025-06-20", available, today))
	assert.False(t, schedule.IsBookable("2025-06-05", available, today), "available but past")
	assert.False(t, schedule.IsBookable("2025-06-21", available, today), "future but not available")
	assert.False(t, schedule.IsBookable("not-a-date", available, today))
}

func TestMonth(t *testing.T) {
	t.Run("parse rejects malformed input", func(t *testing.T) {
		_, err := schedule.ParseMonth("2025/06")
		assert.ErrorIs(t, err, schedule.ErrInvalidMonth)
	})

	t.Run("navigation crosses year boundaries", func(t *testing.T) {
		dec := mustMonth(t, "2025-12")
		assert.Equal(t, "2026-01", dec.Next().String())
		assert.Equal(t, "2025-11", dec.Prev().String())
	})

	t.Run("contains only dates inside the month", func(t *testing.T) {
		m := mustMonth(t, "2025-06")
		assert.True(t, m.ContainsDate("2025-06-01"))
		assert.True(t, m.ContainsDate("2025-06-30"))
		assert.False(t, m.ContainsDate("2025-07-01"))
		assert.False(t, m.ContainsDate("2025-05-31"))
		assert.False(t, m.ContainsDate("garbage"))
	})

	t.Run("day count honours leap years", func(t *testing.T) {
		assert.Equal(t, 29, mustMonth(t, "2024-02").DayCount())
		assert.Equal(t, 28, mustMonth(t, "2025-02").DayCount())
	})
}
