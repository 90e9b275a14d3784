package commands

import (
	"context"
	"time"

	"bellebook/internal/domain/catalog"
	"bellebook/internal/domain/schedule"
	"bellebook/internal/domain/wizard"

	"github.com/google/uuid"
)

// Ports the booking commands drive. Implementations live under
// internal/infra; every one of them may fail independently.

type CatalogGateway interface {
	Professional(ctx context.Context, token string, proID int64) (catalog.Professional, error)
	Prestations(ctx context.Context, token string, proID int64) ([]catalog.Prestation, error)
}

type AvailabilityGateway interface {
	AvailableDates(ctx context.Context, token string, proID int64, month schedule.Month) ([]string, error)
	AvailableSlots(ctx context.Context, token string, proID int64, date string) ([]schedule.Slot, error)
}

type ReservationGateway interface {
	CreateReservation(ctx context.Context, token string, in CreateReservationInput) (wizard.ReservationSnapshot, error)
	CreatePaymentAuthorization(ctx context.Context, token string, reservationID int64, payType wizard.PaymentType) (wizard.PaymentSnapshot, error)
}

type CreateReservationInput struct {
	ProID        int64
	PrestationID int64
	Start        time.Time
	End          time.Time
	Price        float64
	SlotID       *int64
}

// PaymentStatus is the processor-side state of a confirmation attempt. The
// adapter collapses the processor's lifecycle to confirmed / needs-redirect /
// still-processing; a decline comes back as an error carrying the
// processor's message.
type PaymentStatus string

const (
	PaymentConfirmed        PaymentStatus = "confirmed"
	PaymentRequiresRedirect PaymentStatus = "requires_redirect"
	PaymentPending          PaymentStatus = "pending"
)

type PaymentOutcome struct {
	Status      PaymentStatus
	RedirectURL string
}

// PaymentConfirmer wraps the external payment processor's confirmation step.
// Confirm performs an interactive confirmation with a collected payment
// method; Resume re-reads the same authorization after an external redirect.
// Neither ever auto-retries.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, clientSecret, paymentMethodID, returnURL string) (PaymentOutcome, error)
	Resume(ctx context.Context, clientSecret string) (PaymentOutcome, error)
}

// SessionStore owns wizard session persistence. Update is a read-modify-write
// under optimistic concurrency: fn runs against the current session and the
// write only lands if nothing else modified it meanwhile.
type SessionStore interface {
	Create(ctx context.Context, s *wizard.Session) error
	Get(ctx context.Context, id uuid.UUID) (*wizard.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*wizard.Session) error) (*wizard.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
