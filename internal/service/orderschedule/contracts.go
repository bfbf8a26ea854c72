//go:generate mockgen -source=contracts.go -destination=orderschedule_mocks_test.go -package=orderschedule

package orderschedule

import (
	"context"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/truckban"
)

type orderStore interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	UpdateSchedule(ctx context.Context, u domain.OrderScheduleUpdate) (*domain.Order, error)
}

type ruleEngine interface {
	Validate(s truckban.Schedule) (truckban.Result, error)
}
