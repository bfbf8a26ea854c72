//go:generate mockgen -source=contracts.go -destination=negotiation_mocks_test.go -package=negotiation

package negotiation

import (
	"context"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/ports/scheduletx"
	"agrimarket-delivery/internal/truckban"
)

type scheduleRepository interface {
	Get(ctx context.Context, id int64) (*domain.DeliverySchedule, error)
	List(ctx context.Context, f domain.ScheduleFilter, visibleTo *int64) ([]domain.DeliverySchedule, error)
	HasProposed(ctx context.Context, orderID int64) (bool, error)
	Insert(ctx context.Context, s *domain.DeliverySchedule) error
	WithTx(ctx context.Context, fn func(tx scheduletx.Repository) error) error
}

type orderReader interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
}

type ruleEngine interface {
	Validate(s truckban.Schedule) (truckban.Result, error)
}

// notifier raises notification tasks. It must not block the caller on delivery failures.
type notifier interface {
	Notify(ctx context.Context, recipients []int64, ev domain.ScheduleEvent)
}

type recorder interface {
	Proposal(outcome string)
	Violation(zone string)
}
