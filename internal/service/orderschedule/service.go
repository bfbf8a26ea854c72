package orderschedule

import (
	"context"
	"strings"
	"time"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/service/negotiation"
	"agrimarket-delivery/internal/truckban"
)

// ScheduleInput is a single-step schedule for an order, optionally claiming an exemption.
type ScheduleInput struct {
	negotiation.DeliveryInput
	IsExempt      bool
	ExemptionType *string
}

// Result is a committed order together with advisory warnings from the rule engine.
type Result struct {
	Order    *domain.Order
	Warnings []string
}

// Service validates and commits delivery details straight onto an order, without negotiation.
type Service struct {
	orders           orderStore
	engine           ruleEngine
	operationTimeout time.Duration
	logger           logx.Logger
}

func NewService(orders orderStore, engine ruleEngine, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{orders: orders, engine: engine, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// ScheduleAndValidate checks the schedule against the truck ban and, when compliant,
// writes it onto the order. A violation leaves the order untouched.
func (s *Service) ScheduleAndValidate(ctx context.Context, caller domain.Caller, orderID int64, in ScheduleInput) (*Result, error) {
	if caller.UserID <= 0 {
		return nil, negotiation.ErrAuthRequired
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.lookup(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	fields, err := in.Parse()
	if err != nil {
		return nil, err
	}

	var exemption *string
	if in.IsExempt {
		if in.ExemptionType == nil || !truckban.ExemptionType(strings.TrimSpace(*in.ExemptionType)).Valid() {
			return nil, apperr.Invalidf("exemptionType must be one of %s", exemptionList())
		}
		v := strings.TrimSpace(*in.ExemptionType)
		exemption = &v
	}

	rs := negotiation.RuleSchedule(fields)
	rs.IsExempt = in.IsExempt
	if exemption != nil {
		rs.ExemptionType = truckban.ExemptionType(*exemption)
	}
	res, err := s.engine.Validate(rs)
	if err != nil {
		return nil, err
	}
	if !res.IsValid {
		s.logger.Info("order schedule violates truck ban",
			logx.String("event", "order_schedule_violation"),
			logx.Int64("order_id", order.ID),
			logx.String("time", fields.ScheduledTime),
		)
		return nil, &negotiation.ViolationError{Result: res}
	}

	updated, err := s.orders.UpdateSchedule(ctx, domain.OrderScheduleUpdate{
		OrderID:        order.ID,
		DeliveryFields: fields,
		IsExempt:       in.IsExempt,
		ExemptionType:  exemption,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, negotiation.ErrOrderNotFound
	}

	s.logger.Info("order schedule committed",
		logx.String("event", "order_schedule_committed"),
		logx.Int64("order_id", updated.ID),
		logx.Int64("user_id", caller.UserID),
		logx.Bool("exempt", in.IsExempt),
		logx.Int("warnings", len(res.Warnings)),
	)
	return &Result{Order: updated, Warnings: res.Warnings}, nil
}

// Get returns the order with its committed delivery fields.
func (s *Service) Get(ctx context.Context, caller domain.Caller, orderID int64) (*domain.Order, error) {
	if caller.UserID <= 0 {
		return nil, negotiation.ErrAuthRequired
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.lookup(ctx, caller, orderID)
}

func (s *Service) lookup(ctx context.Context, caller domain.Caller, orderID int64) (*domain.Order, error) {
	if orderID <= 0 {
		return nil, negotiation.ErrOrderNotFound
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, negotiation.ErrOrderNotFound
	}
	if !caller.HasStanding(order) {
		return nil, negotiation.ErrNotInvolved
	}
	return order, nil
}

func exemptionList() string {
	types := truckban.ExemptionTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
