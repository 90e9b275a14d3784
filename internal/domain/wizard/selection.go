package wizard

// Selection is the accumulating draft of one booking attempt. It is replaced
// wholesale by the Session transition methods rather than mutated field by
// field, so a partial update can never leave the draft in an inconsistent
// combination.
//
// Changing the prestation intentionally keeps the date and slot. Changing the
// date always clears the chosen slot, because the slot is a dependent value
// of the date.
type Selection struct {
	PrestationID  *int64         `json:"prestation_id,omitempty"`
	Date          *string        `json:"date,omitempty"` // "2006-01-02"
	SlotID        *int64         `json:"slot_id,omitempty"`
	SlotTime      *string        `json:"slot_time,omitempty"` // "15:04"
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
}

func (s Selection) withPrestation(id int64) Selection {
	s.PrestationID = &id
	return s
}

func (s Selection) withDate(date string) Selection {
	s.Date = &date
	s.SlotID = nil
	s.SlotTime = nil
	return s
}

func (s Selection) withSlot(id int64, slotTime string) Selection {
	s.SlotID = &id
	s.SlotTime = &slotTime
	return s
}

func (s Selection) withPaymentMethod(m PaymentMethod) Selection {
	s.PaymentMethod = &m
	return s
}

// Step validity guards. "Next" is only enabled when the guard of the current
// step holds.

func (s Selection) HasPrestation() bool {
	return s.PrestationID != nil
}

func (s Selection) HasDateAndSlot() bool {
	return s.Date != nil && s.SlotID != nil && s.SlotTime != nil
}

func (s Selection) HasPaymentMethod() bool {
	return s.PaymentMethod != nil
}
