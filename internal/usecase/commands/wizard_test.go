//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bellebook/internal/domain/schedule"
	"bellebook/internal/domain/wizard"
	"bellebook/internal/infra"
	"bellebook/internal/infra/sessionstore"
	"bellebook/internal/pkg/clock"
	"bellebook/internal/pkg/errs"
	"bellebook/internal/usecase/commands"
	"bellebook/tests/common/builder"
	commandsmock "bellebook/tests/mock/commands"
	queriesmock "bellebook/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testToken     = "bearer-token"
	testReturnURL = "https://booking.example.com/return"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx              context.Context
	mockCtrl         *gomock.Controller
	store            *sessionstore.MemoryStore
	mockCatalog      *commandsmock.MockCatalogGateway
	mockReservations *commandsmock.MockReservationGateway
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockConfirmer    *commandsmock.MockPaymentConfirmer
	clock            *clock.MockClock
	commands         commands.BookingCommands
	builder          *builder.WizardBuilder
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = sessionstore.NewMemoryStore()
	s.mockCatalog = commandsmock.NewMockCatalogGateway(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationGateway(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockConfirmer = commandsmock.NewMockPaymentConfirmer(s.mockCtrl)
	s.builder = builder.NewWizardBuilder()
	s.clock = clock.NewMockClock(s.builder.Now)

	s.commands = commands.NewBookingCommands(
		s.store,
		s.mockCatalog,
		s.mockReservations,
		s.mockAvailability,
		s.mockConfirmer,
		testReturnURL,
		s.clock,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// seedSession plants a prebuilt session in the store.
func (s *BookingCommandsTestSuite) seedSession(sess *wizard.Session) {
	s.Require().NoError(s.store.Create(s.ctx, sess))
}

func (s *BookingCommandsTestSuite) month(v string) schedule.Month {
	m, err := schedule.ParseMonth(v)
	s.Require().NoError(err)
	return m
}

func gatewayErr(kind infra.GatewayErrorKind, msg string) error {
	return infra.WrapGatewayErr(slog.New(slog.NewTextHandler(io.Discard, nil)), kind, msg, nil)
}

// ================================================================================
// StartSession
// ================================================================================

func (s *BookingCommandsTestSuite) TestStartSession() {
	s.Run("success: fetches catalog and opens the wizard on step one", func() {
		pro := s.builder.BuildProfessional()
		prestations := s.builder.BuildPrestations()
		s.mockCatalog.EXPECT().Professional(gomock.Any(), testToken, s.builder.ProID).Return(pro, nil)
		s.mockCatalog.EXPECT().Prestations(gomock.Any(), testToken, s.builder.ProID).Return(prestations, nil)

		sess, err := s.commands.StartSession(s.ctx, testToken, s.builder.ClientID, s.builder.ProID)

		s.Require().NoError(err)
		s.Equal(wizard.StepSelectPrestation, sess.Step)
		s.Equal(pro, sess.Professional)
		s.Len(sess.Prestations, 2)

		stored, err := s.store.Get(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Equal(s.builder.ClientID, stored.ClientID)
	})

	s.Run("error: unknown professional", func() {
		s.mockCatalog.EXPECT().Professional(gomock.Any(), testToken, int64(999)).
			Return(s.builder.BuildProfessional(), gatewayErr(infra.KindNotFound, "pro not found"))

		_, err := s.commands.StartSession(s.ctx, testToken, s.builder.ClientID, 999)

		s.ErrorIs(err, errs.ErrProfessionalNotFound)
	})

	s.Run("error: rejected token", func() {
		s.mockCatalog.EXPECT().Professional(gomock.Any(), testToken, s.builder.ProID).
			Return(s.builder.BuildProfessional(), gatewayErr(infra.KindUnauthenticated, "token expired"))

		_, err := s.commands.StartSession(s.ctx, testToken, s.builder.ClientID, s.builder.ProID)

		s.ErrorIs(err, errs.ErrUnauthenticated)
	})
}

// ================================================================================
// Selection commands
// ================================================================================

func (s *BookingCommandsTestSuite) TestSelectPrestation() {
	s.Run("success", func() {
		s.seedSession(s.builder.BuildSession())

		result, err := s.commands.SelectPrestation(s.ctx, s.builder.ClientID, s.builder.SessionID, s.builder.PrestationID)

		s.Require().NoError(err)
		s.Require().NotNil(result.Session.Selection.PrestationID)
		s.Equal(s.builder.PrestationID, *result.Session.Selection.PrestationID)
	})

	s.Run("error: inactive prestation", func() {
		s.seedSession(s.builder.BuildSession())

		_, err := s.commands.SelectPrestation(s.ctx, s.builder.ClientID, s.builder.SessionID, s.builder.PrestationID+1)

		s.ErrorIs(err, errs.ErrPrestationNotFound)
	})

	s.Run("error: another client's session is invisible", func() {
		s.seedSession(s.builder.BuildSession())
		other := builder.NewWizardBuilder()

		_, err := s.commands.SelectPrestation(s.ctx, other.ClientID, s.builder.SessionID, s.builder.PrestationID)

		s.ErrorIs(err, errs.ErrSessionNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestSelectDate() {
	june := map[string]bool{"2025-06-10": true, "2025-06-12": true, "2025-06-13": true}

	s.Run("success: loads the day index for the new date", func() {
		sess := s.builder.BuildSessionAtDateTime()
		s.seedSession(sess)
		slots := s.builder.BuildDaySlots()
		s.mockAvailability.EXPECT().MonthIndex(gomock.Any(), testToken, s.builder.ProID, s.month("2025-06")).
			Return(june, nil)
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), testToken, s.builder.ProID, "2025-06-12").
			Return(slots, nil)

		result, err := s.commands.SelectDate(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID, "2025-06-12")

		s.Require().NoError(err)
		s.Len(result.Session.DaySlots, 2)
		s.Equal("2025-06-12", result.Session.DaySlotsDate)
		s.Nil(result.Session.Selection.SlotID, "date change clears the slot")
	})

	s.Run("success: same-day selection holds in any server time zone", func() {
		s.clock.Set(time.Date(2025, 6, 10, 8, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)))
		defer s.clock.Set(s.builder.Now)
		s.seedSession(s.builder.BuildSessionAtDateTime())
		s.mockAvailability.EXPECT().MonthIndex(gomock.Any(), testToken, s.builder.ProID, s.month("2025-06")).
			Return(june, nil)
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), testToken, s.builder.ProID, "2025-06-10").
			Return(s.builder.BuildDaySlots(), nil)

		result, err := s.commands.SelectDate(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID, "2025-06-10")

		s.Require().NoError(err)
		s.Equal("2025-06-10", result.Session.DaySlotsDate)
	})

	s.Run("success: a slow fetch for an abandoned date is dropped", func() {
		sess := s.builder.BuildSessionAtDateTime()
		s.seedSession(sess)
		s.mockAvailability.EXPECT().MonthIndex(gomock.Any(), testToken, s.builder.ProID, s.month("2025-06")).
			Return(june, nil)

		// While the fetch for 06-12 is in flight, a second request moves the
		// selection to 06-13.
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), testToken, s.builder.ProID, "2025-06-12").
			DoAndReturn(func(ctx context.Context, _ string, _ int64, _ string) ([]schedule.Slot, error) {
				_, err := s.store.Update(ctx, s.builder.SessionID, func(inner *wizard.Session) error {
					return inner.SelectDate("2025-06-13")
				})
				s.Require().NoError(err)
				return s.builder.BuildDaySlots(), nil
			})

		result, err := s.commands.SelectDate(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID, "2025-06-12")

		s.Require().NoError(err)
		s.Require().NotNil(result.Session.Selection.Date)
		s.Equal("2025-06-13", *result.Session.Selection.Date)
		s.Empty(result.Session.DaySlots, "stale index must not be installed")
		s.Empty(result.Session.DaySlotsDate)
	})

	s.Run("error: past date", func() {
		s.seedSession(s.builder.BuildSessionAtDateTime())

		_, err := s.commands.SelectDate(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID, "2025-05-20")

		s.ErrorIs(err, errs.ErrDateNotBookable)
	})

	s.Run("error: date absent from the month availability index", func() {
		s.seedSession(s.builder.BuildSessionAtDateTime())
		s.mockAvailability.EXPECT().MonthIndex(gomock.Any(), testToken, s.builder.ProID, s.month("2025-06")).
			Return(june, nil)

		_, err := s.commands.SelectDate(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID, "2025-06-11")

		s.ErrorIs(err, errs.ErrDateNotBookable)
		stored, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.Require().NoError(getErr)
		s.Equal(s.builder.Date, *stored.Selection.Date, "a rejected date must not replace the selection")
	})

	s.Run("error: rejected token drops the session", func() {
		s.seedSession(s.builder.BuildSessionAtDateTime())
		s.mockAvailability.EXPECT().MonthIndex(gomock.Any(), testToken, s.builder.ProID, s.month("2025-06")).
			Return(june, nil)
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), testToken, s.builder.ProID, "2025-06-12").
			Return(nil, errs.Mark(gatewayErr(infra.KindUnauthenticated, "token expired"), errs.ErrUnauthenticated))

		_, err := s.commands.SelectDate(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID, "2025-06-12")

		s.ErrorIs(err, errs.ErrUnauthenticated)
		_, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.ErrorIs(getErr, sessionstore.ErrNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestSelectSlot() {
	s.Run("success", func() {
		s.seedSession(s.builder.BuildSessionAtDateTime())

		result, err := s.commands.SelectSlot(s.ctx, s.builder.ClientID, s.builder.SessionID, s.builder.SlotID)

		s.Require().NoError(err)
		s.Require().NotNil(result.Session.Selection.SlotTime)
		s.Equal(s.builder.SlotTime, *result.Session.Selection.SlotTime)
	})

	s.Run("error: slot outside the day index", func() {
		s.seedSession(s.builder.BuildSessionAtDateTime())

		_, err := s.commands.SelectSlot(s.ctx, s.builder.ClientID, s.builder.SessionID, 9999)

		s.ErrorIs(err, errs.ErrSlotNotInDayIndex)
	})
}

// ================================================================================
// Next / confirmBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestNext() {
	s.Run("success: advances the two local steps", func() {
		sess := s.builder.BuildSession()
		s.Require().NoError(sess.SelectPrestation(s.builder.PrestationID))
		s.seedSession(sess)

		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.Equal(wizard.StepSelectDateTime, result.Session.Step)
	})

	s.Run("error: guard not met", func() {
		s.seedSession(s.builder.BuildSession())

		_, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.ErrorIs(err, errs.ErrStepGuardFailed)
	})

	s.Run("success: online confirm creates reservation then payment, in that order", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnline))

		slotID := s.builder.SlotID
		start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
		expectedInput := commands.CreateReservationInput{
			ProID:        s.builder.ProID,
			PrestationID: s.builder.PrestationID,
			Start:        start,
			End:          start.Add(60 * time.Minute),
			Price:        45.00,
			SlotID:       &slotID,
		}
		reservation := s.builder.BuildReservation(30)
		payment := s.builder.BuildPaymentAuth(30)

		gomock.InOrder(
			s.mockReservations.EXPECT().
				CreateReservation(gomock.Any(), testToken, expectedInput).
				Return(reservation, nil),
			s.mockReservations.EXPECT().
				CreatePaymentAuthorization(gomock.Any(), testToken, int64(501), wizard.PaymentTypeDeposit).
				Return(payment, nil),
		)

		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.Equal(wizard.StepPayment, result.Session.Step)
		s.Require().NotNil(result.Session.Reservation)
		s.Equal(int64(501), result.Session.Reservation.ID)
		s.InDelta(13.50, result.Session.Reservation.DepositAmount, 0.001)
		s.Require().NotNil(result.Session.Payment)
		s.InDelta(13.50, result.Session.Payment.Amount, 0.001)
	})

	s.Run("success: full prepayment derives payment type full", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnline))

		gomock.InOrder(
			s.mockReservations.EXPECT().
				CreateReservation(gomock.Any(), testToken, gomock.Any()).
				Return(s.builder.BuildReservation(100), nil),
			s.mockReservations.EXPECT().
				CreatePaymentAuthorization(gomock.Any(), testToken, int64(501), wizard.PaymentTypeFull).
				Return(s.builder.BuildPaymentAuth(100), nil),
		)

		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.InDelta(45.00, result.Session.Payment.Amount, 0.001)
	})

	s.Run("success: on-site confirm skips the payment authorization", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnSite))

		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), testToken, gomock.Any()).
			Return(s.builder.BuildReservation(30), nil)

		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.Equal(wizard.StepConfirmation, result.Session.Step)
		s.Nil(result.Session.Payment)
	})

	s.Run("error: rejected booking leaves the wizard on summary for retry", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnSite))

		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), testToken, gomock.Any()).
			Return(wizard.ReservationSnapshot{}, gatewayErr(infra.KindBusinessRule, "slot no longer available"))

		_, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.ErrorIs(err, errs.ErrBookingRejected)
		s.Equal("slot no longer available", infra.KindMessage(err))

		stored, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.Require().NoError(getErr)
		s.Equal(wizard.StepSummary, stored.Step)
		s.False(stored.Confirming)
		s.NotNil(stored.Selection.PaymentMethod, "selections survive the failure")
		s.Nil(stored.Reservation)

		// The retry re-runs the whole confirm.
		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), testToken, gomock.Any()).
			Return(s.builder.BuildReservation(30), nil)
		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)
		s.Require().NoError(err)
		s.Equal(wizard.StepConfirmation, result.Session.Step)
	})

	s.Run("error: payment setup failure keeps the reservation for the retry", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnline))

		// One CreateReservation for the whole subtest: the retry must not
		// book a second reservation upstream.
		gomock.InOrder(
			s.mockReservations.EXPECT().
				CreateReservation(gomock.Any(), testToken, gomock.Any()).
				Return(s.builder.BuildReservation(30), nil),
			s.mockReservations.EXPECT().
				CreatePaymentAuthorization(gomock.Any(), testToken, int64(501), wizard.PaymentTypeDeposit).
				Return(wizard.PaymentSnapshot{}, gatewayErr(infra.KindUnavailable, "")),
		)

		_, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.ErrorIs(err, errs.ErrUpstreamFailure)
		stored, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.Require().NoError(getErr)
		s.Equal(wizard.StepSummary, stored.Step)
		s.False(stored.Confirming)
		s.Require().NotNil(stored.Reservation, "the created reservation survives the failure")
		s.Equal(int64(501), stored.Reservation.ID)

		// The retry reuses it and only retries the authorization.
		s.mockReservations.EXPECT().
			CreatePaymentAuthorization(gomock.Any(), testToken, int64(501), wizard.PaymentTypeDeposit).
			Return(s.builder.BuildPaymentAuth(30), nil)

		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)
		s.Require().NoError(err)
		s.Equal(wizard.StepPayment, result.Session.Step)
		s.Require().NotNil(result.Session.Payment)
	})

	s.Run("success: next after back from payment reuses both snapshots", func() {
		s.seedSession(s.builder.BuildSessionAtPayment(30))
		_, err := s.commands.Back(s.ctx, s.builder.ClientID, s.builder.SessionID)
		s.Require().NoError(err)

		// No gateway expectations: reservation and authorization already
		// exist, so the confirm settles without any upstream call.
		result, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.Equal(wizard.StepPayment, result.Session.Step)
		s.Require().NotNil(result.Session.Reservation)
		s.Equal(int64(501), result.Session.Reservation.ID)
		s.Require().NotNil(result.Session.Payment)
	})

	s.Run("error: rejected token during confirm drops the session", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnSite))

		s.mockReservations.EXPECT().
			CreateReservation(gomock.Any(), testToken, gomock.Any()).
			Return(wizard.ReservationSnapshot{}, gatewayErr(infra.KindUnauthenticated, "token expired"))

		_, err := s.commands.Next(s.ctx, testToken, s.builder.ClientID, s.builder.SessionID)

		s.ErrorIs(err, errs.ErrUnauthenticated)
		_, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.ErrorIs(getErr, sessionstore.ErrNotFound)
	})
}

// ================================================================================
// Back
// ================================================================================

func (s *BookingCommandsTestSuite) TestBack() {
	s.Run("success: steps backward", func() {
		s.seedSession(s.builder.BuildSessionAtDateTime())

		result, err := s.commands.Back(s.ctx, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.Equal(wizard.StepSelectPrestation, result.Session.Step)
	})

	s.Run("success: back from the first step deletes the session", func() {
		s.seedSession(s.builder.BuildSession())

		result, err := s.commands.Back(s.ctx, s.builder.ClientID, s.builder.SessionID)

		s.Require().NoError(err)
		s.True(result.Exited)
		_, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.ErrorIs(getErr, sessionstore.ErrNotFound)
	})
}

// ================================================================================
// ConfirmPayment
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirmPayment() {
	secret := "pi_3Abc_secret_xyz"

	s.Run("success: confirmed payment reaches the terminal step", func() {
		s.seedSession(s.builder.BuildSessionAtPayment(30))
		s.mockConfirmer.EXPECT().
			Confirm(gomock.Any(), secret, "pm_card", testReturnURL).
			Return(commands.PaymentOutcome{Status: commands.PaymentConfirmed}, nil)

		result, err := s.commands.ConfirmPayment(s.ctx, s.builder.ClientID, s.builder.SessionID, "pm_card", "")

		s.Require().NoError(err)
		s.Equal(commands.PaymentConfirmed, result.Status)
		s.Equal(wizard.StepConfirmation, result.Session.Step)
	})

	s.Run("success: caller's return URL overrides the default", func() {
		s.seedSession(s.builder.BuildSessionAtPayment(30))
		s.mockConfirmer.EXPECT().
			Confirm(gomock.Any(), secret, "pm_card", "https://app.example.com/done").
			Return(commands.PaymentOutcome{Status: commands.PaymentConfirmed}, nil)

		_, err := s.commands.ConfirmPayment(s.ctx, s.builder.ClientID, s.builder.SessionID, "pm_card", "https://app.example.com/done")

		s.Require().NoError(err)
	})

	s.Run("success: redirect outcome keeps the wizard on payment", func() {
		s.seedSession(s.builder.BuildSessionAtPayment(30))
		s.mockConfirmer.EXPECT().
			Confirm(gomock.Any(), secret, "pm_card", testReturnURL).
			Return(commands.PaymentOutcome{
				Status:      commands.PaymentRequiresRedirect,
				RedirectURL: "https://processor.example.com/3ds",
			}, nil)

		result, err := s.commands.ConfirmPayment(s.ctx, s.builder.ClientID, s.builder.SessionID, "pm_card", "")

		s.Require().NoError(err)
		s.Equal(commands.PaymentRequiresRedirect, result.Status)
		s.Equal("https://processor.example.com/3ds", result.RedirectURL)
		s.Equal(wizard.StepPayment, result.Session.Step)
	})

	s.Run("success: no payment method resumes after the redirect", func() {
		s.seedSession(s.builder.BuildSessionAtPayment(30))
		s.mockConfirmer.EXPECT().
			Resume(gomock.Any(), secret).
			Return(commands.PaymentOutcome{Status: commands.PaymentConfirmed}, nil)

		result, err := s.commands.ConfirmPayment(s.ctx, s.builder.ClientID, s.builder.SessionID, "", "")

		s.Require().NoError(err)
		s.Equal(wizard.StepConfirmation, result.Session.Step)
	})

	s.Run("error: declined payment stays on the payment step", func() {
		s.seedSession(s.builder.BuildSessionAtPayment(30))
		s.mockConfirmer.EXPECT().
			Confirm(gomock.Any(), secret, "pm_card", testReturnURL).
			Return(commands.PaymentOutcome{}, gatewayErr(infra.KindBusinessRule, "card declined"))

		_, err := s.commands.ConfirmPayment(s.ctx, s.builder.ClientID, s.builder.SessionID, "pm_card", "")

		s.ErrorIs(err, errs.ErrPaymentDeclined)
		stored, getErr := s.store.Get(s.ctx, s.builder.SessionID)
		s.Require().NoError(getErr)
		s.Equal(wizard.StepPayment, stored.Step)
	})

	s.Run("error: nothing awaiting confirmation", func() {
		s.seedSession(s.builder.BuildSessionAtSummary(wizard.PayOnline))

		_, err := s.commands.ConfirmPayment(s.ctx, s.builder.ClientID, s.builder.SessionID, "pm_card", "")

		s.ErrorIs(err, errs.ErrNoPaymentToConfirm)
	})
}
