package upstream

import (
	"context"
	"fmt"

	"bellebook/internal/domain/schedule"
)

// AvailabilityGateway exposes the two availability reads: which days of a
// month have openings, and which slots one day has. Both are side-effect
// free; failure policy (degrade to empty) lives in the query layer, not here.
type AvailabilityGateway struct {
	client *Client
}

func NewAvailabilityGateway(client *Client) *AvailabilityGateway {
	return &AvailabilityGateway{client: client}
}

type slotDTO struct {
	ID              int64  `json:"id"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration"`
}

// AvailableDates returns the ISO dates of the month that have at least one
// open slot.
func (g *AvailabilityGateway) AvailableDates(ctx context.Context, token string, proID int64, month schedule.Month) ([]string, error) {
	var dates []string
	path := fmt.Sprintf("/slots/available-dates/%d/%s", proID, month.String())
	if err := g.client.get(ctx, token, path, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

// AvailableSlots returns the ordered day index for one date. An empty list is
// a valid result meaning "no openings".
func (g *AvailabilityGateway) AvailableSlots(ctx context.Context, token string, proID int64, date string) ([]schedule.Slot, error) {
	var dtos []slotDTO
	path := fmt.Sprintf("/slots/available/%d/%s", proID, date)
	if err := g.client.get(ctx, token, path, &dtos); err != nil {
		return nil, err
	}
	slots := make([]schedule.Slot, 0, len(dtos))
	for _, d := range dtos {
		slots = append(slots, schedule.Slot{
			ID:              d.ID,
			Time:            d.Time,
			DurationMinutes: d.DurationMinutes,
		})
	}
	schedule.SortSlots(slots)
	return slots, nil
}
