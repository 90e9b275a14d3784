package wizard

import (
	"errors"
	"time"

	"bellebook/internal/domain/catalog"
	"bellebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrWrongStep         = errors.New("operation not allowed on current step")
	ErrPrestationUnknown = errors.New("prestation not offered or inactive")
	ErrSlotUnknown       = errors.New("slot not in the current day index")
	ErrGuardNotMet       = errors.New("step guard not met")
	ErrConfirmInProgress = errors.New("confirmation in progress")
	ErrNoPaymentAuth     = errors.New("no payment authorization in this session")
	ErrExitWizard        = errors.New("back out of the wizard")
	ErrConfirmRequired   = errors.New("summary step advances through confirmation")
	ErrNoForwardFromHere = errors.New("no forward transition from this step")
)

// ReservationSnapshot is the client-side view of the reservation record the
// upstream service created. Immutable once stored.
type ReservationSnapshot struct {
	ID                int64     `json:"id"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	Price             float64   `json:"price"`
	SlotID            *int64    `json:"slot_id,omitempty"`
	DepositPercentage int       `json:"deposit_percentage"`
	DepositAmount     float64   `json:"deposit_amount"`
}

func (r ReservationSnapshot) PaymentType() PaymentType {
	return PaymentTypeFor(r.DepositPercentage)
}

// PaymentSnapshot holds the processor session created for an online payment.
type PaymentSnapshot struct {
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
}

// Session is one wizard session: the lifetime of a booking attempt from
// professional selection to confirmation or abandonment. Step and Selection
// are owned exclusively by this type; every change goes through a transition
// method below so an invalid combination cannot be reached.
type Session struct {
	ID           uuid.UUID            `json:"id"`
	ClientID     uuid.UUID            `json:"client_id"`
	Professional catalog.Professional `json:"professional"`
	Prestations  []catalog.Prestation `json:"prestations"`

	Step      Step      `json:"step"`
	Selection Selection `json:"selection"`

	// Day index snapshot for the selected date; slot selection is validated
	// against it. DaySlotsDate keys the snapshot so a fetch that resolves
	// after the date changed again is recognizably stale.
	DaySlots     []schedule.Slot `json:"day_slots,omitempty"`
	DaySlotsDate string          `json:"day_slots_date,omitempty"`

	Reservation *ReservationSnapshot `json:"reservation,omitempty"`
	Payment     *PaymentSnapshot     `json:"payment,omitempty"`

	// Confirming guards against a double-submitted confirm: set before the
	// reservation call goes out, cleared when the transition settles.
	Confirming bool `json:"confirming"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id, clientID uuid.UUID, pro catalog.Professional, prestations []catalog.Prestation, now time.Time) *Session {
	return &Session{
		ID:           id,
		ClientID:     clientID,
		Professional: pro,
		Prestations:  prestations,
		Step:         StepSelectPrestation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// --- selection transitions -------------------------------------------------

func (s *Session) SelectPrestation(id int64) error {
	if s.Step != StepSelectPrestation {
		return ErrWrongStep
	}
	if _, ok := catalog.FindActive(s.Prestations, id); !ok {
		return ErrPrestationUnknown
	}
	s.Selection = s.Selection.withPrestation(id)
	s.invalidateConfirmation()
	return nil
}

func (s *Session) SelectDate(date string) error {
	if s.Step != StepSelectDateTime {
		return ErrWrongStep
	}
	s.Selection = s.Selection.withDate(date)
	s.DaySlots = nil
	s.DaySlotsDate = ""
	s.invalidateConfirmation()
	return nil
}

// ApplyDaySlots installs a fetched day index. A result for a date that is no
// longer selected is stale: it is dropped and never surfaced as an error.
func (s *Session) ApplyDaySlots(date string, slots []schedule.Slot) bool {
	if s.Selection.Date == nil || *s.Selection.Date != date {
		return false
	}
	s.DaySlots = slots
	s.DaySlotsDate = date
	return true
}

func (s *Session) SelectSlot(id int64) error {
	if s.Step != StepSelectDateTime {
		return ErrWrongStep
	}
	if s.Selection.Date == nil || s.DaySlotsDate == "" || *s.Selection.Date != s.DaySlotsDate {
		return ErrSlotUnknown
	}
	slot, ok := schedule.FindSlot(s.DaySlots, id)
	if !ok {
		return ErrSlotUnknown
	}
	s.Selection = s.Selection.withSlot(slot.ID, slot.Time)
	s.invalidateConfirmation()
	return nil
}

// invalidateConfirmation drops reservation and payment snapshots captured by
// an earlier confirm attempt: once the selection changes they describe a
// booking that no longer matches what the user is assembling.
func (s *Session) invalidateConfirmation() {
	s.Reservation = nil
	s.Payment = nil
}

func (s *Session) SelectPaymentMethod(m PaymentMethod) error {
	if s.Step != StepSummary {
		return ErrWrongStep
	}
	if !m.IsValid() {
		return ErrGuardNotMet
	}
	s.Selection = s.Selection.withPaymentMethod(m)
	return nil
}

// SelectedPrestation resolves the chosen prestation. Valid selections always
// resolve because SelectPrestation validated against the session catalog.
func (s *Session) SelectedPrestation() (catalog.Prestation, bool) {
	if s.Selection.PrestationID == nil {
		return catalog.Prestation{}, false
	}
	return catalog.FindActive(s.Prestations, *s.Selection.PrestationID)
}

// --- step transitions ------------------------------------------------------

// Advance moves forward from the two purely-local steps. The Summary step
// only advances through the confirmation flow (BeginConfirmation and
// friends), and the Payment step only through ConfirmPayment.
func (s *Session) Advance() error {
	switch s.Step {
	case StepSelectPrestation:
		if !s.Selection.HasPrestation() {
			return ErrGuardNotMet
		}
		s.Step = StepSelectDateTime
	case StepSelectDateTime:
		if !s.Selection.HasDateAndSlot() {
			return ErrGuardNotMet
		}
		s.Step = StepSummary
	case StepSummary:
		return ErrConfirmRequired
	default:
		return ErrNoForwardFromHere
	}
	return nil
}

// Back steps backward: step−1, except backing out of Confirmation for an
// on-site booking skips the Payment step, and Back on the first step exits
// the wizard entirely (ErrExitWizard tells the caller to drop the session).
func (s *Session) Back() error {
	if s.Confirming {
		return ErrConfirmInProgress
	}
	switch s.Step {
	case StepSelectPrestation:
		return ErrExitWizard
	case StepConfirmation:
		if s.Selection.PaymentMethod != nil && *s.Selection.PaymentMethod == PayOnSite {
			s.Step = StepSummary
			return nil
		}
		s.Step = StepPayment
	default:
		s.Step--
	}
	return nil
}

// --- confirmation flow -----------------------------------------------------

// BeginConfirmation gates the compound confirm operation: a second confirm
// while one is in flight is rejected rather than queued. A reservation
// surviving from an earlier attempt (payment setup failed, or the user came
// Back from the Payment step) is legitimate; the caller reuses it instead of
// creating a second one upstream.
func (s *Session) BeginConfirmation() error {
	if s.Step != StepSummary {
		return ErrWrongStep
	}
	if !s.Selection.HasDateAndSlot() || !s.Selection.HasPaymentMethod() {
		return ErrGuardNotMet
	}
	if s.Confirming {
		return ErrConfirmInProgress
	}
	s.Confirming = true
	return nil
}

// FailConfirmation aborts the transition: the wizard stays on Summary with
// every selection intact so the user may retry.
func (s *Session) FailConfirmation() {
	s.Confirming = false
}

// FailPaymentSetup aborts the transition after the reservation was created
// upstream but before its payment authorization settled. The reservation
// snapshot is kept so the retry skips straight to the authorization instead
// of creating a duplicate reservation.
func (s *Session) FailPaymentSetup(res ReservationSnapshot) {
	s.Reservation = &res
	s.Confirming = false
}

func (s *Session) CompleteOnSite(res ReservationSnapshot) error {
	if !s.Confirming {
		return ErrWrongStep
	}
	s.Reservation = &res
	s.Payment = nil
	s.Confirming = false
	s.Step = StepConfirmation
	return nil
}

func (s *Session) CompleteOnline(res ReservationSnapshot, pay PaymentSnapshot) error {
	if !s.Confirming {
		return ErrWrongStep
	}
	s.Reservation = &res
	s.Payment = &pay
	s.Confirming = false
	s.Step = StepPayment
	return nil
}

// ConfirmPayment records the processor's confirmation and reaches the
// terminal step.
func (s *Session) ConfirmPayment() error {
	if s.Step != StepPayment {
		return ErrWrongStep
	}
	if s.Payment == nil {
		return ErrNoPaymentAuth
	}
	s.Step = StepConfirmation
	return nil
}

func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}
