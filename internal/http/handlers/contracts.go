package handlers

import (
	"context"
	"time"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/service/negotiation"
	"agrimarket-delivery/internal/service/orderschedule"
	"agrimarket-delivery/internal/truckban"
)

type scheduleUsecase interface {
	Propose(ctx context.Context, caller domain.Caller, in negotiation.ProposeInput) (*domain.DeliverySchedule, error)
	Respond(ctx context.Context, caller domain.Caller, in negotiation.RespondInput) (*domain.DeliverySchedule, error)
	List(ctx context.Context, caller domain.Caller, f domain.ScheduleFilter) ([]domain.DeliverySchedule, error)
}

type orderScheduleUsecase interface {
	ScheduleAndValidate(ctx context.Context, caller domain.Caller, orderID int64, in orderschedule.ScheduleInput) (*orderschedule.Result, error)
	Get(ctx context.Context, caller domain.Caller, orderID int64) (*domain.Order, error)
}

type truckBanRules interface {
	Windows(zone truckban.Zone) []truckban.Window
	NextAvailableWindow(zone truckban.Zone, now time.Time) string
	ComplianceThresholdKg() float64
	Validate(s truckban.Schedule) (truckban.Result, error)
	Penalty(violations int) int
	Impounds(violations int) bool
}

type pinger interface {
	Ping(ctx context.Context) error
}
