package upstream

import (
	"context"
	"time"

	"bellebook/internal/domain/wizard"
	"bellebook/internal/usecase/commands"
)

const datetimeLayout = "2006-01-02 15:04:05"

// ReservationGateway creates the reservation record and, for online payment,
// the payment authorization against it. Ordering between the two is enforced
// by the caller, never here.
type ReservationGateway struct {
	client *Client
}

func NewReservationGateway(client *Client) *ReservationGateway {
	return &ReservationGateway{client: client}
}

type createReservationRequest struct {
	ProID         int64   `json:"proId"`
	PrestationID  int64   `json:"prestationId"`
	StartDatetime string  `json:"startDatetime"`
	EndDatetime   string  `json:"endDatetime"`
	Price         float64 `json:"price"`
	SlotID        *int64  `json:"slotId,omitempty"`
}

type reservationDTO struct {
	ID                int64   `json:"id"`
	StartDatetime     string  `json:"startDatetime"`
	EndDatetime       string  `json:"endDatetime"`
	Price             float64 `json:"price"`
	SlotID            *int64  `json:"slot_id"`
	DepositPercentage int     `json:"deposit_percentage"`
	DepositAmount     float64 `json:"deposit_amount"`
}

func (g *ReservationGateway) CreateReservation(ctx context.Context, token string, in commands.CreateReservationInput) (wizard.ReservationSnapshot, error) {
	req := createReservationRequest{
		ProID:         in.ProID,
		PrestationID:  in.PrestationID,
		StartDatetime: in.Start.Format(datetimeLayout),
		EndDatetime:   in.End.Format(datetimeLayout),
		Price:         in.Price,
		SlotID:        in.SlotID,
	}

	var dto reservationDTO
	if err := g.client.post(ctx, token, "/reservations", req, &dto); err != nil {
		return wizard.ReservationSnapshot{}, err
	}

	snap := wizard.ReservationSnapshot{
		ID:                dto.ID,
		Price:             dto.Price,
		SlotID:            dto.SlotID,
		DepositPercentage: dto.DepositPercentage,
		DepositAmount:     dto.DepositAmount,
	}
	// The server echoes the datetimes it recorded; fall back to what was
	// sent when they fail to parse.
	if start, err := time.Parse(datetimeLayout, dto.StartDatetime); err == nil {
		snap.StartAt = start
	} else {
		snap.StartAt = in.Start
	}
	if end, err := time.Parse(datetimeLayout, dto.EndDatetime); err == nil {
		snap.EndAt = end
	} else {
		snap.EndAt = in.End
	}
	return snap, nil
}

type createPaymentIntentRequest struct {
	ReservationID int64  `json:"reservationId"`
	Type          string `json:"type"`
}

type paymentIntentDTO struct {
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
}

// CreatePaymentAuthorization must only be called after CreateReservation for
// the same session has resolved successfully.
func (g *ReservationGateway) CreatePaymentAuthorization(ctx context.Context, token string, reservationID int64, payType wizard.PaymentType) (wizard.PaymentSnapshot, error) {
	req := createPaymentIntentRequest{
		ReservationID: reservationID,
		Type:          string(payType),
	}

	var dto paymentIntentDTO
	if err := g.client.post(ctx, token, "/payments/intent", req, &dto); err != nil {
		return wizard.PaymentSnapshot{}, err
	}
	return wizard.PaymentSnapshot{
		ClientSecret: dto.ClientSecret,
		Amount:       dto.Amount,
	}, nil
}
