package domain

import "time"

// ScheduleStatus represents the negotiation state of a delivery schedule.
type ScheduleStatus string

// List of possible schedule statuses
const (
	ScheduleProposed  ScheduleStatus = "proposed"
	ScheduleConfirmed ScheduleStatus = "confirmed"
	ScheduleRejected  ScheduleStatus = "rejected"
)

var allowedScheduleStatuses = [...]ScheduleStatus{
	ScheduleProposed, ScheduleConfirmed, ScheduleRejected,
}

// Valid checks if the ScheduleStatus is valid
func (s ScheduleStatus) Valid() bool {
	for _, v := range allowedScheduleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DeliverySchedule is a proposal for when and how an order will be delivered.
type DeliverySchedule struct {
	ID              int64
	OrderID         int64
	ScheduledDate   time.Time
	ScheduledTime   string
	Route           *string
	IsCBD           bool
	TruckWeightKg   *float64
	DeliveryAddress *string
	Notes           *string
	Status          ScheduleStatus
	ProposedBy      int64
	ConfirmedBy     *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeliveryFields are the schedule attributes mirrored onto an order once agreed.
type DeliveryFields struct {
	ScheduledDate   time.Time
	ScheduledTime   string
	Route           *string
	IsCBD           bool
	TruckWeightKg   *float64
	DeliveryAddress *string
}

// DeliveryFields returns the subset of the schedule that is copied onto the order on confirmation.
func (s *DeliverySchedule) DeliveryFields() DeliveryFields {
	return DeliveryFields{
		ScheduledDate:   s.ScheduledDate,
		ScheduledTime:   s.ScheduledTime,
		Route:           s.Route,
		IsCBD:           s.IsCBD,
		TruckWeightKg:   s.TruckWeightKg,
		DeliveryAddress: s.DeliveryAddress,
	}
}

// ScheduleAction is the counterparty's answer to a proposal.
type ScheduleAction string

// List of possible responses to a proposal
const (
	ActionConfirm ScheduleAction = "confirm"
	ActionReject  ScheduleAction = "reject"
)

// Valid checks if the ScheduleAction is valid
func (a ScheduleAction) Valid() bool {
	return a == ActionConfirm || a == ActionReject
}

// ResultingStatus maps an action to the status the schedule moves to.
func (a ScheduleAction) ResultingStatus() ScheduleStatus {
	if a == ActionConfirm {
		return ScheduleConfirmed
	}
	return ScheduleRejected
}

// ScheduleFilter narrows schedule listings. Nil fields are not applied.
type ScheduleFilter struct {
	OrderID *int64
	Status  *ScheduleStatus
}
