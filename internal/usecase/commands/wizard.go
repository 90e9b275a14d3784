package commands

import (
	"context"
	"errors"
	"time"

	"bellebook/internal/domain/schedule"
	"bellebook/internal/domain/wizard"
	"bellebook/internal/infra"
	"bellebook/internal/infra/sessionstore"
	"bellebook/internal/pkg/clock"
	"bellebook/internal/pkg/errs"
	"bellebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingResult is what every wizard mutation hands back: the session after
// the transition settled.
type BookingResult struct {
	Session *wizard.Session
	// Exited is set when a Back from the first step dropped the session.
	Exited bool
}

// PaymentResult carries the processor outcome alongside the session. On a
// redirect the session stays on the Payment step and RedirectURL tells the
// client where the processor sends the user.
type PaymentResult struct {
	Session     *wizard.Session
	Status      PaymentStatus
	RedirectURL string
}

type BookingCommands interface {
	StartSession(ctx context.Context, token string, clientID uuid.UUID, proID int64) (*wizard.Session, error)
	CancelSession(ctx context.Context, clientID, sessionID uuid.UUID) error
	SelectPrestation(ctx context.Context, clientID, sessionID uuid.UUID, prestationID int64) (*BookingResult, error)
	SelectDate(ctx context.Context, token string, clientID, sessionID uuid.UUID, date string) (*BookingResult, error)
	SelectSlot(ctx context.Context, clientID, sessionID uuid.UUID, slotID int64) (*BookingResult, error)
	SelectPaymentMethod(ctx context.Context, clientID, sessionID uuid.UUID, method wizard.PaymentMethod) (*BookingResult, error)
	Next(ctx context.Context, token string, clientID, sessionID uuid.UUID) (*BookingResult, error)
	Back(ctx context.Context, clientID, sessionID uuid.UUID) (*BookingResult, error)
	ConfirmPayment(ctx context.Context, clientID, sessionID uuid.UUID, paymentMethodID, returnURL string) (*PaymentResult, error)
}

type bookingCommandsImpl struct {
	store            SessionStore
	catalogGateway   CatalogGateway
	reservationGw    ReservationGateway
	availability     queries.AvailabilityQueries
	confirmer        PaymentConfirmer
	defaultReturnURL string
	clock            clock.Clock
}

func NewBookingCommands(
	store SessionStore,
	catalogGateway CatalogGateway,
	reservationGw ReservationGateway,
	availability queries.AvailabilityQueries,
	confirmer PaymentConfirmer,
	defaultReturnURL string,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		store:            store,
		catalogGateway:   catalogGateway,
		reservationGw:    reservationGw,
		availability:     availability,
		confirmer:        confirmer,
		defaultReturnURL: defaultReturnURL,
		clock:            clk,
	}
}

// StartSession fetches the professional and its prestations once and opens a
// fresh wizard on the first step.
func (c *bookingCommandsImpl) StartSession(ctx context.Context, token string, clientID uuid.UUID, proID int64) (*wizard.Session, error) {
	pro, err := c.catalogGateway.Professional(ctx, token, proID)
	if err != nil {
		return nil, c.mapCatalogErr(err)
	}
	prestations, err := c.catalogGateway.Prestations(ctx, token, proID)
	if err != nil {
		return nil, c.mapCatalogErr(err)
	}

	sess := wizard.NewSession(uuid.New(), clientID, pro, prestations, c.clock.Now())
	if err := c.store.Create(ctx, sess); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return sess, nil
}

func (c *bookingCommandsImpl) CancelSession(ctx context.Context, clientID, sessionID uuid.UUID) error {
	if _, err := c.ownedSession(ctx, clientID, sessionID); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, sessionID); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) SelectPrestation(ctx context.Context, clientID, sessionID uuid.UUID, prestationID int64) (*BookingResult, error) {
	sess, err := c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.SelectPrestation(prestationID)
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

// SelectDate is the two-phase date transition: first the selection itself
// (which clears any chosen slot), then the day-index fetch whose result is
// applied only if the date is still the selected one when it lands. A result
// for a date the user has already left is dropped silently.
func (c *bookingCommandsImpl) SelectDate(ctx context.Context, token string, clientID, sessionID uuid.UUID, date string) (*BookingResult, error) {
	parsed, err := validateDate(date, c.clock.Now())
	if err != nil {
		return nil, err
	}

	sess, err := c.ownedSession(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}

	// The date must also be offered by the month availability index, not
	// merely future-dated.
	index, err := c.availability.MonthIndex(ctx, token, sess.Professional.ID, schedule.MonthOf(parsed))
	if err != nil {
		return nil, c.fatalAuthFailure(ctx, sessionID, err)
	}
	if !index[date] {
		return nil, errs.ErrDateNotBookable
	}

	sess, err = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.SelectDate(date)
	})
	if err != nil {
		return nil, err
	}

	slots, err := c.availability.DaySlots(ctx, token, sess.Professional.ID, date)
	if err != nil {
		// Only a rejected token reaches here; the session is unusable.
		return nil, c.fatalAuthFailure(ctx, sessionID, err)
	}

	sess, err = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		s.ApplyDaySlots(date, slots)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

func (c *bookingCommandsImpl) SelectSlot(ctx context.Context, clientID, sessionID uuid.UUID, slotID int64) (*BookingResult, error) {
	sess, err := c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.SelectSlot(slotID)
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

func (c *bookingCommandsImpl) SelectPaymentMethod(ctx context.Context, clientID, sessionID uuid.UUID, method wizard.PaymentMethod) (*BookingResult, error) {
	sess, err := c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.SelectPaymentMethod(method)
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

// Next advances the wizard. The first two steps advance locally; the Summary
// step advances through confirmBooking, the compound operation that creates
// the reservation and, for online payment, its payment authorization.
func (c *bookingCommandsImpl) Next(ctx context.Context, token string, clientID, sessionID uuid.UUID) (*BookingResult, error) {
	sess, err := c.ownedSession(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Step == wizard.StepSummary {
		return c.confirmBooking(ctx, token, clientID, sessionID)
	}

	sess, err = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.Advance()
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

func (c *bookingCommandsImpl) Back(ctx context.Context, clientID, sessionID uuid.UUID) (*BookingResult, error) {
	sess, err := c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.Back()
	})
	if err != nil {
		if errors.Is(err, wizard.ErrExitWizard) {
			if delErr := c.store.Delete(ctx, sessionID); delErr != nil {
				return nil, errs.Mark(delErr, errs.ErrStoreOperationFailed)
			}
			return &BookingResult{Exited: true}, nil
		}
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

// confirmBooking sequences the two reservation-service calls strictly: the
// payment authorization is only ever requested after the reservation create
// has resolved successfully. Any failure aborts the transition and leaves the
// wizard on Summary with every selection intact. Snapshots surviving from an
// earlier attempt are reused, so the reservation is created at most once per
// selection: a payment-setup failure retried from Summary, or a Next after
// Back from the Payment step, never books a second reservation upstream.
func (c *bookingCommandsImpl) confirmBooking(ctx context.Context, token string, clientID, sessionID uuid.UUID) (*BookingResult, error) {
	sess, err := c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.BeginConfirmation()
	})
	if err != nil {
		return nil, err
	}

	var reservation wizard.ReservationSnapshot
	if sess.Reservation != nil {
		reservation = *sess.Reservation
	} else {
		input, err := c.reservationInput(sess)
		if err != nil {
			return nil, c.abortConfirmation(ctx, clientID, sessionID, err)
		}
		reservation, err = c.reservationGw.CreateReservation(ctx, token, input)
		if err != nil {
			return nil, c.abortConfirmation(ctx, clientID, sessionID, c.mapReservationErr(ctx, sessionID, err))
		}
	}

	method := *sess.Selection.PaymentMethod
	if method == wizard.PayOnSite {
		sess, err = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
			return s.CompleteOnSite(reservation)
		})
		if err != nil {
			return nil, err
		}
		return &BookingResult{Session: sess}, nil
	}

	payment := sess.Payment
	if payment == nil {
		auth, err := c.reservationGw.CreatePaymentAuthorization(ctx, token, reservation.ID, reservation.PaymentType())
		if err != nil {
			return nil, c.abortPaymentSetup(ctx, clientID, sessionID, reservation, c.mapPaymentSetupErr(ctx, sessionID, err))
		}
		payment = &auth
	}

	sess, err = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.CompleteOnline(reservation, *payment)
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{Session: sess}, nil
}

// ConfirmPayment drives the processor confirmation for the authorization
// created by confirmBooking. With a payment method it confirms; without one
// it resumes a confirmation interrupted by an external redirect. Declines
// leave the wizard on the Payment step for a user-initiated retry.
func (c *bookingCommandsImpl) ConfirmPayment(ctx context.Context, clientID, sessionID uuid.UUID, paymentMethodID, returnURL string) (*PaymentResult, error) {
	sess, err := c.ownedSession(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != wizard.StepPayment || sess.Payment == nil {
		return nil, errs.ErrNoPaymentToConfirm
	}

	if returnURL == "" {
		returnURL = c.defaultReturnURL
	}

	var outcome PaymentOutcome
	if paymentMethodID == "" {
		outcome, err = c.confirmer.Resume(ctx, sess.Payment.ClientSecret)
	} else {
		outcome, err = c.confirmer.Confirm(ctx, sess.Payment.ClientSecret, paymentMethodID, returnURL)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindBusinessRule) {
			return nil, errs.Mark(err, errs.ErrPaymentDeclined)
		}
		return nil, errs.Mark(err, errs.ErrUpstreamFailure)
	}

	if outcome.Status != PaymentConfirmed {
		return &PaymentResult{Session: sess, Status: outcome.Status, RedirectURL: outcome.RedirectURL}, nil
	}

	sess, err = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		return s.ConfirmPayment()
	})
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Session: sess, Status: PaymentConfirmed}, nil
}

// --- helpers ---------------------------------------------------------------

func (c *bookingCommandsImpl) reservationInput(sess *wizard.Session) (CreateReservationInput, error) {
	prestation, ok := sess.SelectedPrestation()
	if !ok {
		return CreateReservationInput{}, errs.ErrStepGuardFailed
	}

	start, err := time.Parse(schedule.DateLayout+" "+schedule.TimeLayout, *sess.Selection.Date+" "+*sess.Selection.SlotTime)
	if err != nil {
		return CreateReservationInput{}, errs.Mark(err, errs.ErrStepGuardFailed)
	}
	end := start.Add(time.Duration(prestation.DurationMinutes) * time.Minute)

	return CreateReservationInput{
		ProID:        sess.Professional.ID,
		PrestationID: prestation.ID,
		Start:        start,
		End:          end,
		Price:        prestation.Price,
		SlotID:       sess.Selection.SlotID,
	}, nil
}

// abortConfirmation clears the in-flight flag so the user may retry from
// Summary, then returns the mapped failure. A fatal auth failure has already
// dropped the session; clearing then is pointless but harmless.
func (c *bookingCommandsImpl) abortConfirmation(ctx context.Context, clientID, sessionID uuid.UUID, cause error) error {
	_, _ = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		s.FailConfirmation()
		return nil
	})
	return cause
}

// abortPaymentSetup is abortConfirmation for the branch where the reservation
// already exists upstream: the snapshot is persisted with the session so the
// retry goes straight to the payment authorization.
func (c *bookingCommandsImpl) abortPaymentSetup(ctx context.Context, clientID, sessionID uuid.UUID, res wizard.ReservationSnapshot, cause error) error {
	_, _ = c.updateOwned(ctx, clientID, sessionID, func(s *wizard.Session) error {
		s.FailPaymentSetup(res)
		return nil
	})
	return cause
}

func (c *bookingCommandsImpl) ownedSession(ctx context.Context, clientID, sessionID uuid.UUID) (*wizard.Session, error) {
	sess, err := c.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if sess.ClientID != clientID {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

func (c *bookingCommandsImpl) updateOwned(ctx context.Context, clientID, sessionID uuid.UUID, fn func(*wizard.Session) error) (*wizard.Session, error) {
	sess, err := c.store.Update(ctx, sessionID, func(s *wizard.Session) error {
		if s.ClientID != clientID {
			return errs.ErrSessionNotFound
		}
		if err := fn(s); err != nil {
			return err
		}
		s.Touch(c.clock.Now())
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionstore.ErrNotFound):
			return nil, errs.ErrSessionNotFound
		case errors.Is(err, sessionstore.ErrConflict):
			return nil, errs.Mark(err, errs.ErrConfirmInProgress)
		default:
			return nil, c.mapWizardErr(err)
		}
	}
	return sess, nil
}

func (c *bookingCommandsImpl) mapWizardErr(err error) error {
	switch {
	case errors.Is(err, wizard.ErrGuardNotMet),
		errors.Is(err, wizard.ErrConfirmRequired),
		errors.Is(err, wizard.ErrNoForwardFromHere):
		return errs.Mark(err, errs.ErrStepGuardFailed)
	case errors.Is(err, wizard.ErrWrongStep):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, wizard.ErrPrestationUnknown):
		return errs.Mark(err, errs.ErrPrestationNotFound)
	case errors.Is(err, wizard.ErrSlotUnknown):
		return errs.Mark(err, errs.ErrSlotNotInDayIndex)
	case errors.Is(err, wizard.ErrConfirmInProgress):
		return errs.Mark(err, errs.ErrConfirmInProgress)
	case errors.Is(err, wizard.ErrNoPaymentAuth):
		return errs.Mark(err, errs.ErrNoPaymentToConfirm)
	case errors.Is(err, errs.ErrSessionNotFound):
		return err
	default:
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
}

func (c *bookingCommandsImpl) mapCatalogErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindUnauthenticated):
		return errs.Mark(err, errs.ErrUnauthenticated)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrProfessionalNotFound)
	default:
		return errs.Mark(err, errs.ErrUpstreamFailure)
	}
}

func (c *bookingCommandsImpl) mapReservationErr(ctx context.Context, sessionID uuid.UUID, err error) error {
	switch {
	case infra.IsKind(err, infra.KindUnauthenticated):
		return c.dropSession(ctx, sessionID, err)
	case infra.IsKind(err, infra.KindBusinessRule), infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingRejected)
	default:
		return errs.Mark(err, errs.ErrUpstreamFailure)
	}
}

func (c *bookingCommandsImpl) mapPaymentSetupErr(ctx context.Context, sessionID uuid.UUID, err error) error {
	switch {
	case infra.IsKind(err, infra.KindUnauthenticated):
		return c.dropSession(ctx, sessionID, err)
	case infra.IsKind(err, infra.KindBusinessRule), infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrPaymentSetup)
	default:
		return errs.Mark(err, errs.ErrUpstreamFailure)
	}
}

// fatalAuthFailure implements the session-expiry policy: no wizard state
// survives re-authentication, so the session is dropped outright.
func (c *bookingCommandsImpl) fatalAuthFailure(ctx context.Context, sessionID uuid.UUID, err error) error {
	return c.dropSession(ctx, sessionID, err)
}

func (c *bookingCommandsImpl) dropSession(ctx context.Context, sessionID uuid.UUID, cause error) error {
	_ = c.store.Delete(ctx, sessionID)
	return errs.Mark(cause, errs.ErrUnauthenticated)
}

// validateDate rejects malformed and past dates. Pastness is decided at day
// granularity, same-day inclusive, on the clock's calendar day: the day
// fields are normalized to UTC so the comparison holds in any server time
// zone, the same way the schedule calendar does it.
func validateDate(date string, now time.Time) (time.Time, error) {
	t, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrDateNotBookable)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(today) {
		return time.Time{}, errs.ErrDateNotBookable
	}
	return t, nil
}
