package response

import (
	"time"

	"bellebook/internal/domain/schedule"
	"bellebook/internal/domain/wizard"

	"github.com/google/uuid"
)

type ProfessionalResponse struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"displayName"`
	ActivityName string `json:"activityName"`
	City         string `json:"city"`
	AvatarURL    string `json:"avatarUrl"`
}

type PrestationResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

type SlotResponse struct {
	ID              int64  `json:"id"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
}

type SelectionResponse struct {
	PrestationID  *int64  `json:"prestationId,omitempty"`
	Date          *string `json:"date,omitempty"`
	SlotID        *int64  `json:"slotId,omitempty"`
	SlotTime      *string `json:"slotTime,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

type ReservationResponse struct {
	ID                int64     `json:"id"`
	StartAt           time.Time `json:"startAt"`
	EndAt             time.Time `json:"endAt"`
	Price             float64   `json:"price"`
	SlotID            *int64    `json:"slotId,omitempty"`
	DepositPercentage int       `json:"depositPercentage"`
	DepositAmount     float64   `json:"depositAmount"`
	PaymentType       string    `json:"paymentType"`
}

type PaymentAuthResponse struct {
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
}

type SessionResponse struct {
	ID           uuid.UUID            `json:"id"`
	Step         int                  `json:"step"`
	StepName     string               `json:"stepName"`
	Professional ProfessionalResponse `json:"professional"`
	Prestations  []PrestationResponse `json:"prestations"`
	Selection    SelectionResponse    `json:"selection"`
	DaySlots     []SlotResponse       `json:"daySlots"`
	Reservation  *ReservationResponse `json:"reservation,omitempty"`
	Payment      *PaymentAuthResponse `json:"payment,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

type CalendarResponse struct {
	Month           string            `json:"month"`
	Days            []DayCellResponse `json:"days"`
	CanShowPrevious bool              `json:"canShowPrevious"`
}

type DayCellResponse struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
	Selected   bool   `json:"selected"`
}

type PaymentResultResponse struct {
	Status      string           `json:"status"`
	RedirectURL string           `json:"redirectUrl,omitempty"`
	Session     *SessionResponse `json:"session,omitempty"`
}

func FromSession(s *wizard.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:       s.ID,
		Step:     int(s.Step),
		StepName: s.Step.String(),
		Professional: ProfessionalResponse{
			ID:           s.Professional.ID,
			DisplayName:  s.Professional.DisplayName,
			ActivityName: s.Professional.ActivityName,
			City:         s.Professional.City,
			AvatarURL:    s.Professional.AvatarURL,
		},
		Prestations: make([]PrestationResponse, 0, len(s.Prestations)),
		Selection: SelectionResponse{
			PrestationID: s.Selection.PrestationID,
			Date:         s.Selection.Date,
			SlotID:       s.Selection.SlotID,
			SlotTime:     s.Selection.SlotTime,
		},
		DaySlots:  make([]SlotResponse, 0, len(s.DaySlots)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.Selection.PaymentMethod != nil {
		m := string(*s.Selection.PaymentMethod)
		resp.Selection.PaymentMethod = &m
	}

	for _, p := range s.Prestations {
		if !p.Active {
			continue
		}
		resp.Prestations = append(resp.Prestations, PrestationResponse{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			Price:           p.Price,
			DurationMinutes: p.DurationMinutes,
		})
	}

	for _, slot := range s.DaySlots {
		resp.DaySlots = append(resp.DaySlots, SlotResponse{
			ID:              slot.ID,
			Time:            slot.Time,
			DurationMinutes: slot.DurationMinutes,
		})
	}

	if s.Reservation != nil {
		resp.Reservation = &ReservationResponse{
			ID:                s.Reservation.ID,
			StartAt:           s.Reservation.StartAt,
			EndAt:             s.Reservation.EndAt,
			Price:             s.Reservation.Price,
			SlotID:            s.Reservation.SlotID,
			DepositPercentage: s.Reservation.DepositPercentage,
			DepositAmount:     s.Reservation.DepositAmount,
			PaymentType:       string(s.Reservation.PaymentType()),
		}
	}

	if s.Payment != nil {
		resp.Payment = &PaymentAuthResponse{
			ClientSecret: s.Payment.ClientSecret,
			Amount:       s.Payment.Amount,
		}
	}

	return resp
}

func FromCalendar(cal schedule.Calendar) *CalendarResponse {
	resp := &CalendarResponse{
		Month:           cal.Month,
		Days:            make([]DayCellResponse, 0, len(cal.Days)),
		CanShowPrevious: cal.CanShowPrevious,
	}
	for _, d := range cal.Days {
		resp.Days = append(resp.Days, DayCellResponse{
			Date:       d.Date,
			Selectable: d.Selectable,
			Selected:   d.Selected,
		})
	}
	return resp
}
