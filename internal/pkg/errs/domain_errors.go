package errs

import "errors"

// Domain-specific sentinel errors for the booking usecase layers
var (
	// Catalog errors
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrPrestationNotFound   = errors.New("prestation not found")

	// Wizard session errors
	ErrSessionNotFound    = errors.New("booking session not found")
	ErrStepGuardFailed    = errors.New("step requirements not met")
	ErrInvalidTransition  = errors.New("invalid step transition")
	ErrConfirmInProgress  = errors.New("confirmation already in progress")
	ErrSlotNotInDayIndex  = errors.New("slot not in the fetched day index")
	ErrDateNotBookable    = errors.New("date is not bookable")
	ErrNoPaymentToConfirm = errors.New("no payment authorization to confirm")

	// Upstream errors
	ErrUnauthenticated = errors.New("session token rejected upstream")
	ErrBookingRejected = errors.New("booking rejected upstream")
	ErrPaymentSetup    = errors.New("payment authorization could not be created")
	ErrUpstreamFailure = errors.New("upstream call failed")

	// Payment processor errors
	ErrPaymentDeclined = errors.New("payment confirmation declined")

	// Operation errors
	ErrStoreOperationFailed = errors.New("session store operation failed")
)
