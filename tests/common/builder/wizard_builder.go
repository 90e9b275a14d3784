//go:build unit || e2e

package builder

import (
	"time"

	"bellebook/internal/domain/catalog"
	"bellebook/internal/domain/schedule"
	"bellebook/internal/domain/wizard"

	"github.com/google/uuid"
)

// WizardBuilder assembles booking wizard fixtures: a professional offering a
// single active prestation, a bookable date with one open slot, and sessions
// parked on any step of the flow.
type WizardBuilder struct {
	SessionID       uuid.UUID
	ClientID        uuid.UUID
	ProID           int64
	PrestationID    int64
	PrestationName  string
	Price           float64
	DurationMinutes int
	Date            string
	SlotID          int64
	SlotTime        string
	Now             time.Time
}

func NewWizardBuilder() *WizardBuilder {
	return &WizardBuilder{
		SessionID:       uuid.New(),
		ClientID:        uuid.New(),
		ProID:           42,
		PrestationID:    7,
		PrestationName:  "Gel manicure",
		Price:           45.00,
		DurationMinutes: 60,
		Date:            "2025-06-10",
		SlotID:          301,
		SlotTime:        "14:00",
		Now:             time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *WizardBuilder) With(mutate func(*WizardBuilder)) *WizardBuilder {
	mutate(b)
	return b
}

func (b *WizardBuilder) BuildProfessional() catalog.Professional {
	return catalog.Professional{
		ID:           b.ProID,
		DisplayName:  "Amélie Laurent",
		ActivityName: "Nail artist",
		City:         "Lyon",
		AvatarURL:    "https://cdn.example.com/avatars/42.jpg",
	}
}

func (b *WizardBuilder) BuildPrestations() []catalog.Prestation {
	return []catalog.Prestation{
		{
			ID:              b.PrestationID,
			Name:            b.PrestationName,
			Description:     "Gel application with cuticle care",
			Price:           b.Price,
			DurationMinutes: b.DurationMinutes,
			Active:          true,
		},
		{
			ID:              b.PrestationID + 1,
			Name:            "Discontinued polish",
			Price:           30.00,
			DurationMinutes: 30,
			Active:          false,
		},
	}
}

func (b *WizardBuilder) BuildDaySlots() []schedule.Slot {
	return []schedule.Slot{
		{ID: b.SlotID, Time: b.SlotTime, DurationMinutes: b.DurationMinutes},
		{ID: b.SlotID + 1, Time: "16:30", DurationMinutes: b.DurationMinutes},
	}
}

// BuildSession returns a fresh session on the prestation step.
func (b *WizardBuilder) BuildSession() *wizard.Session {
	return wizard.NewSession(b.SessionID, b.ClientID, b.BuildProfessional(), b.BuildPrestations(), b.Now)
}

// BuildSessionAtDateTime has the prestation chosen and the wizard on the
// date/slot step with the day index loaded.
func (b *WizardBuilder) BuildSessionAtDateTime() *wizard.Session {
	s := b.BuildSession()
	mustNil(s.SelectPrestation(b.PrestationID))
	mustNil(s.Advance())
	mustNil(s.SelectDate(b.Date))
	s.ApplyDaySlots(b.Date, b.BuildDaySlots())
	return s
}

// BuildSessionAtSummary is fully selected up to the payment method.
func (b *WizardBuilder) BuildSessionAtSummary(method wizard.PaymentMethod) *wizard.Session {
	s := b.BuildSessionAtDateTime()
	mustNil(s.SelectSlot(b.SlotID))
	mustNil(s.Advance())
	mustNil(s.SelectPaymentMethod(method))
	return s
}

// BuildSessionAtPayment has an online booking confirmed upstream and a
// payment authorization waiting for processor confirmation.
func (b *WizardBuilder) BuildSessionAtPayment(depositPercentage int) *wizard.Session {
	s := b.BuildSessionAtSummary(wizard.PayOnline)
	mustNil(s.BeginConfirmation())
	mustNil(s.CompleteOnline(b.BuildReservation(depositPercentage), b.BuildPaymentAuth(depositPercentage)))
	return s
}

func (b *WizardBuilder) BuildReservation(depositPercentage int) wizard.ReservationSnapshot {
	start, _ := time.Parse("2006-01-02 15:04", b.Date+" "+b.SlotTime)
	slotID := b.SlotID
	return wizard.ReservationSnapshot{
		ID:                501,
		StartAt:           start,
		EndAt:             start.Add(time.Duration(b.DurationMinutes) * time.Minute),
		Price:             b.Price,
		SlotID:            &slotID,
		DepositPercentage: depositPercentage,
		DepositAmount:     b.Price * float64(depositPercentage) / 100,
	}
}

func (b *WizardBuilder) BuildPaymentAuth(depositPercentage int) wizard.PaymentSnapshot {
	amount := b.Price
	if depositPercentage != 100 {
		amount = b.Price * float64(depositPercentage) / 100
	}
	return wizard.PaymentSnapshot{
		ClientSecret: "pi_3Abc_secret_xyz",
		Amount:       amount,
	}
}

func mustNil(err error) {
	if err != nil {
		panic(err)
	}
}
