package api

import (
	"errors"
	"net/http"

	reqdto "bellebook/internal/handler/dto/request"
	resdto "bellebook/internal/handler/dto/response"
	"bellebook/internal/handler/middleware"
	"bellebook/internal/pkg/errs"
	"bellebook/internal/usecase/commands"
	"bellebook/internal/usecase/queries"

	"bellebook/internal/domain/schedule"
	"bellebook/internal/domain/wizard"
	"bellebook/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	bookingCommands commands.BookingCommands
	sessionQueries  queries.SessionQueries
	availability    queries.AvailabilityQueries
}

func NewWizardHandler(
	bookingCommands commands.BookingCommands,
	sessionQueries queries.SessionQueries,
	availability queries.AvailabilityQueries,
) *WizardHandler {
	return &WizardHandler{
		bookingCommands: bookingCommands,
		sessionQueries:  sessionQueries,
		availability:    availability,
	}
}

func (h *WizardHandler) StartSession(c *gin.Context) {
	clientID, token, ok := h.authContext(c)
	if !ok {
		return
	}

	var req reqdto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, err := h.bookingCommands.StartSession(c.Request.Context(), token, clientID, req.ProID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSession(sess))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	sess, err := h.sessionQueries.Get(c.Request.Context(), clientID, sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(sess))
}

func (h *WizardHandler) CancelSession(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.CancelSession(c.Request.Context(), clientID, sessionID); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) SelectPrestation(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectPrestationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.SelectPrestation(c.Request.Context(), clientID, sessionID, req.PrestationID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(result.Session))
}

// AvailableDates renders the calendar grid for the month given by the
// `month` query parameter (defaults to the current month).
func (h *WizardHandler) AvailableDates(c *gin.Context) {
	clientID, token, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	sess, err := h.sessionQueries.Get(c.Request.Context(), clientID, sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	month := schedule.MonthOf(sess.CreatedAt)
	if raw := c.Query("month"); raw != "" {
		month, err = schedule.ParseMonth(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format, expected yyyy-mm"})
			return
		}
	}

	selectedDate := ""
	if sess.Selection.Date != nil {
		selectedDate = *sess.Selection.Date
	}

	cal, err := h.availability.Calendar(c.Request.Context(), token, sess.Professional.ID, month, selectedDate)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendar(cal))
}

func (h *WizardHandler) SelectDate(c *gin.Context) {
	clientID, token, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.SelectDate(c.Request.Context(), token, clientID, sessionID, req.Date)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(result.Session))
}

func (h *WizardHandler) SelectSlot(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.SelectSlot(c.Request.Context(), clientID, sessionID, req.SlotID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(result.Session))
}

func (h *WizardHandler) SelectPaymentMethod(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	result, err := h.bookingCommands.SelectPaymentMethod(c.Request.Context(), clientID, sessionID, wizard.PaymentMethod(req.Method))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(result.Session))
}

func (h *WizardHandler) Next(c *gin.Context) {
	clientID, token, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.bookingCommands.Next(c.Request.Context(), token, clientID, sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(result.Session))
}

func (h *WizardHandler) Back(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.bookingCommands.Back(c.Request.Context(), clientID, sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if result.Exited {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(result.Session))
}

func (h *WizardHandler) ConfirmPayment(c *gin.Context) {
	clientID, _, ok := h.authContext(c)
	if !ok {
		return
	}
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.ConfirmPayment(c.Request.Context(), clientID, sessionID, req.PaymentMethodID, req.ReturnURL)
	if err != nil {
		h.renderError(c, err)
		return
	}

	resp := &resdto.PaymentResultResponse{
		Status:      string(result.Status),
		RedirectURL: result.RedirectURL,
		Session:     resdto.FromSession(result.Session),
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WizardHandler) authContext(c *gin.Context) (uuid.UUID, string, bool) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", false
	}
	return clientID, middleware.GetAuthToken(c), true
}

func (h *WizardHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *WizardHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking session not found"})
	case errors.Is(err, errs.ErrProfessionalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
	case errors.Is(err, errs.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
	case errors.Is(err, errs.ErrPrestationNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Prestation is not offered by this professional"})
	case errors.Is(err, errs.ErrSlotNotInDayIndex):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slot is not available on the selected date"})
	case errors.Is(err, errs.ErrDateNotBookable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Date cannot be booked"})
	case errors.Is(err, errs.ErrStepGuardFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Current step is not complete"})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation does not apply to the current step"})
	case errors.Is(err, errs.ErrConfirmInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking confirmation is already in progress"})
	case errors.Is(err, errs.ErrNoPaymentToConfirm):
		c.JSON(http.StatusConflict, gin.H{"error": "No payment is awaiting confirmation"})
	case errors.Is(err, errs.ErrBookingRejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": upstreamMessage(err, "Booking was rejected")})
	case errors.Is(err, errs.ErrPaymentSetup):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": upstreamMessage(err, "Payment could not be set up")})
	case errors.Is(err, errs.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": upstreamMessage(err, "Payment was declined")})
	case errors.Is(err, errs.ErrUpstreamFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// upstreamMessage surfaces the business-rule message sent by the upstream
// service or the payment processor, falling back to a generic one.
func upstreamMessage(err error, fallback string) string {
	if msg := infra.KindMessage(err); msg != "" {
		return msg
	}
	return fallback
}
