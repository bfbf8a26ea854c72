package negotiation

import (
	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/truckban"
)

// Errors returned by the negotiation and order scheduling services.
var (
	ErrAuthRequired     = apperr.New(apperr.ErrUnauthorized, "authentication required")
	ErrOrderNotFound    = apperr.New(apperr.ErrNotFound, "order not found")
	ErrNotInvolved      = apperr.New(apperr.ErrForbidden, "you are not a party to this order")
	ErrAlreadyProposed  = apperr.New(apperr.ErrConflict, "a delivery schedule is already proposed for this order")
	ErrScheduleNotFound = apperr.New(apperr.ErrNotFound, "delivery schedule not found")
	ErrAlreadyProcessed = apperr.New(apperr.ErrConflict, "delivery schedule has already been processed")
	ErrOwnProposal      = apperr.New(apperr.ErrForbidden, "you cannot respond to your own proposal")
)

// ViolationError reports a schedule that breaks the truck ban. It carries the full validation result.
type ViolationError struct {
	Result truckban.Result
}

func (e *ViolationError) Error() string {
	return "delivery schedule violates truck ban regulations"
}

func (e *ViolationError) Unwrap() error { return apperr.ErrInvalid }
