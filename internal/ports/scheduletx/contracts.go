package scheduletx

import (
	"context"

	"agrimarket-delivery/internal/domain"
)

// Repository is the view of the store available inside a negotiation transaction.
type Repository interface {
	// GetScheduleForUpdate locks the schedule row until the transaction ends. Nil when absent.
	GetScheduleForUpdate(ctx context.Context, id int64) (*domain.DeliverySchedule, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	// UpdateScheduleStatus moves a proposed schedule to status. Nil when it is no longer proposed.
	UpdateScheduleStatus(ctx context.Context, id int64, status domain.ScheduleStatus, responderID int64, notes *string) (*domain.DeliverySchedule, error)
	ApplyToOrder(ctx context.Context, orderID int64, f domain.DeliveryFields, status domain.OrderStatus) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
