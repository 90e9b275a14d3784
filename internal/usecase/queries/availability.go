package queries

import (
	"context"
	"fmt"
	"log/slog"

	"bellebook/internal/domain/schedule"
	"bellebook/internal/infra"
	"bellebook/internal/pkg/clock"
	"bellebook/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

// AvailabilityGateway is the read side of the slot service.
type AvailabilityGateway interface {
	AvailableDates(ctx context.Context, token string, proID int64, month schedule.Month) ([]string, error)
	AvailableSlots(ctx context.Context, token string, proID int64, date string) ([]schedule.Slot, error)
}

// DatesCache caches the month index per (professional, month) key.
type DatesCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, dates []string)
}

type AvailabilityQueries interface {
	// Calendar renders the date-picking grid for one displayed month.
	Calendar(ctx context.Context, token string, proID int64, month schedule.Month, selectedDate string) (schedule.Calendar, error)
	// MonthIndex returns the set of bookable-candidate dates of a month.
	MonthIndex(ctx context.Context, token string, proID int64, month schedule.Month) (map[string]bool, error)
	// DaySlots returns the ordered day index for one date.
	DaySlots(ctx context.Context, token string, proID int64, date string) ([]schedule.Slot, error)
}

type availabilityQueriesImpl struct {
	gateway AvailabilityGateway
	cache   DatesCache
	group   singleflight.Group
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAvailabilityQueries(gateway AvailabilityGateway, cache DatesCache, clk clock.Clock, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		gateway: gateway,
		cache:   cache,
		clock:   clk,
		logger:  logger,
	}
}

// MonthIndex deduplicates concurrent fetches for the same (professional,
// month) pair and degrades to an empty set on failure: the calendar then
// shows "no openings" everywhere instead of erroring. Only a rejected bearer
// token propagates, because that is fatal to the whole wizard session.
func (q *availabilityQueriesImpl) MonthIndex(ctx context.Context, token string, proID int64, month schedule.Month) (map[string]bool, error) {
	key := fmt.Sprintf("%d:%s", proID, month.String())

	dates, err, _ := q.group.Do(key, func() (any, error) {
		if cached, ok := q.cache.Get(ctx, key); ok {
			return cached, nil
		}
		fetched, fetchErr := q.gateway.AvailableDates(ctx, token, proID, month)
		if fetchErr != nil {
			return nil, fetchErr
		}
		q.cache.Set(ctx, key, fetched)
		return fetched, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthenticated) {
			return nil, errs.Mark(err, errs.ErrUnauthenticated)
		}
		q.logger.Warn("available-dates fetch failed, degrading to empty set",
			"pro_id", proID, "month", month.String(), "error", err.Error())
		return map[string]bool{}, nil
	}

	index := make(map[string]bool)
	for _, d := range dates.([]string) {
		// A date outside the requested month never becomes selectable.
		if month.ContainsDate(d) {
			index[d] = true
		}
	}
	return index, nil
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, token string, proID int64, month schedule.Month, selectedDate string) (schedule.Calendar, error) {
	index, err := q.MonthIndex(ctx, token, proID, month)
	if err != nil {
		return schedule.Calendar{}, err
	}
	return schedule.BuildCalendar(month, index, selectedDate, clock.Today(q.clock)), nil
}

// DaySlots is refetched on every date change and never cached: openings for
// a single day move too fast to be worth staleness. Same degrade policy as
// MonthIndex.
func (q *availabilityQueriesImpl) DaySlots(ctx context.Context, token string, proID int64, date string) ([]schedule.Slot, error) {
	slots, err := q.gateway.AvailableSlots(ctx, token, proID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthenticated) {
			return nil, errs.Mark(err, errs.ErrUnauthenticated)
		}
		q.logger.Warn("available-slots fetch failed, degrading to empty list",
			"pro_id", proID, "date", date, "error", err.Error())
		return []schedule.Slot{}, nil
	}
	return slots, nil
}
