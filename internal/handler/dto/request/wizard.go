package request

type StartSessionRequest struct {
	ProID int64 `json:"proId" binding:"required"`
}

type SelectPrestationRequest struct {
	PrestationID int64 `json:"prestationId" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectSlotRequest struct {
	SlotID int64 `json:"slotId" binding:"required"`
}

type SelectPaymentMethodRequest struct {
	Method string `json:"method" binding:"required,oneof=on-site online"`
}

// ConfirmPaymentRequest without a payment method id resumes a confirmation
// that was interrupted by the processor's external redirect.
type ConfirmPaymentRequest struct {
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
	ReturnURL       string `json:"returnUrl,omitempty"`
}
