package wizard

// Step is the wizard's position. Exactly one step is active at a time and the
// Session transition methods are the only code that changes it.
type Step int

const (
	StepSelectPrestation Step = iota + 1
	StepSelectDateTime
	StepSummary
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepSelectPrestation:
		return "select_prestation"
	case StepSelectDateTime:
		return "select_datetime"
	case StepSummary:
		return "summary"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

func (s Step) IsValid() bool {
	return s >= StepSelectPrestation && s <= StepConfirmation
}

// PaymentMethod is how the client settles the reservation: online through the
// payment processor, or on site at the appointment.
type PaymentMethod string

const (
	PayOnSite PaymentMethod = "on-site"
	PayOnline PaymentMethod = "online"
)

func (m PaymentMethod) IsValid() bool {
	return m == PayOnSite || m == PayOnline
}

// PaymentType is what the payment authorization charges: the full price when
// the professional mandates full prepayment (deposit percentage 100), the
// deposit otherwise.
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeDeposit PaymentType = "deposit"
)

func PaymentTypeFor(depositPercentage int) PaymentType {
	if depositPercentage == 100 {
		return PaymentTypeFull
	}
	return PaymentTypeDeposit
}
