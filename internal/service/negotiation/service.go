package negotiation

import (
	"context"
	"errors"
	"strings"
	"time"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/metrics"
	"agrimarket-delivery/internal/ports/scheduletx"
	"agrimarket-delivery/internal/truckban"
)

const defaultOperationTimeout = 3 * time.Second

// ProposeInput is a request to propose a delivery schedule for an order.
type ProposeInput struct {
	OrderID int64
	DeliveryInput
	Notes *string
}

// RespondInput is the counterparty's answer to a proposal.
type RespondInput struct {
	ScheduleID int64
	Action     domain.ScheduleAction
	Notes      *string
}

// Service runs the propose/confirm/reject protocol for delivery schedules.
type Service struct {
	schedules        scheduleRepository
	orders           orderReader
	engine           ruleEngine
	notifier         notifier
	metrics          recorder
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a negotiation Service. A non-positive timeout falls back to 3s.
func NewService(
	schedules scheduleRepository,
	orders orderReader,
	engine ruleEngine,
	n notifier,
	m recorder,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		schedules:        schedules,
		orders:           orders,
		engine:           engine,
		notifier:         n,
		metrics:          m,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Propose validates the proposal against the truck ban and stores it as proposed.
// An order that already has a proposed schedule fails with ErrAlreadyProposed
// before the fields are parsed or checked against the ban.
// The other party to the order is notified; both parties are when an administrator proposes.
func (s *Service) Propose(ctx context.Context, caller domain.Caller, in ProposeInput) (*domain.DeliverySchedule, error) {
	if caller.UserID <= 0 {
		return nil, ErrAuthRequired
	}
	if in.OrderID <= 0 {
		return nil, apperr.Invalidf("orderId is required")
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.orders.Get(opCtx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !caller.HasStanding(order) {
		return nil, ErrNotInvolved
	}

	proposed, err := s.schedules.HasProposed(opCtx, order.ID)
	if err != nil {
		return nil, err
	}
	if proposed {
		s.record(metrics.OutcomeConflict)
		return nil, ErrAlreadyProposed
	}

	fields, err := in.Parse()
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Validate(RuleSchedule(fields))
	if err != nil {
		return nil, err
	}
	if !res.IsValid {
		zone := truckban.ZoneFor(fields.IsCBD)
		s.record(metrics.OutcomeViolation)
		if s.metrics != nil {
			s.metrics.Violation(string(zone))
		}
		s.logger.Info("schedule proposal violates truck ban",
			logx.String("event", "schedule_violation"),
			logx.Int64("order_id", order.ID),
			logx.String("zone", string(zone)),
			logx.String("time", fields.ScheduledTime),
		)
		return nil, &ViolationError{Result: res}
	}

	sched := &domain.DeliverySchedule{
		OrderID:         order.ID,
		ScheduledDate:   fields.ScheduledDate,
		ScheduledTime:   fields.ScheduledTime,
		Route:           fields.Route,
		IsCBD:           fields.IsCBD,
		TruckWeightKg:   fields.TruckWeightKg,
		DeliveryAddress: fields.DeliveryAddress,
		Notes:           trimmed(in.Notes),
		Status:          domain.ScheduleProposed,
		ProposedBy:      caller.UserID,
	}
	if err := s.schedules.Insert(opCtx, sched); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.record(metrics.OutcomeConflict)
			return nil, ErrAlreadyProposed
		}
		return nil, err
	}

	s.record(metrics.OutcomeCreated)
	s.logger.Info("delivery schedule proposed",
		logx.String("event", "schedule_proposed"),
		logx.Int64("schedule_id", sched.ID),
		logx.Int64("order_id", order.ID),
		logx.Int64("proposed_by", caller.UserID),
		logx.Int("warnings", len(res.Warnings)),
	)

	s.notify(ctx, order.Counterparties(caller.UserID), domain.ScheduleEvent{
		Type:     domain.NotificationScheduleProposed,
		ActorID:  caller.UserID,
		Order:    *order,
		Schedule: *sched,
	})
	return sched, nil
}

// Respond confirms or rejects a proposal on behalf of the counterparty.
// Confirmation copies the delivery fields onto the order in the same transaction.
func (s *Service) Respond(ctx context.Context, caller domain.Caller, in RespondInput) (*domain.DeliverySchedule, error) {
	if caller.UserID <= 0 {
		return nil, ErrAuthRequired
	}
	if in.ScheduleID <= 0 {
		return nil, ErrScheduleNotFound
	}
	action := domain.ScheduleAction(strings.ToLower(strings.TrimSpace(string(in.Action))))
	if !action.Valid() {
		return nil, apperr.Invalidf("action must be %q or %q", domain.ActionConfirm, domain.ActionReject)
	}
	notes := trimmed(in.Notes)

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		updated *domain.DeliverySchedule
		order   *domain.Order
	)
	err := s.schedules.WithTx(opCtx, func(tx scheduletx.Repository) error {
		current, err := tx.GetScheduleForUpdate(opCtx, in.ScheduleID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrScheduleNotFound
		}
		if current.Status != domain.ScheduleProposed {
			return ErrAlreadyProcessed
		}

		order, err = tx.GetOrder(opCtx, current.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !caller.HasStanding(order) {
			return ErrNotInvolved
		}
		if current.ProposedBy == caller.UserID {
			return ErrOwnProposal
		}

		updated, err = tx.UpdateScheduleStatus(opCtx, current.ID, action.ResultingStatus(), caller.UserID, notes)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrAlreadyProcessed
		}

		if action == domain.ActionConfirm {
			return tx.ApplyToOrder(opCtx, order.ID, updated.DeliveryFields(), domain.OrderStatusDeliveryConfirmed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := domain.ScheduleEvent{ActorID: caller.UserID, Order: *order, Schedule: *updated}
	if action == domain.ActionConfirm {
		ev.Type = domain.NotificationScheduleConfirmed
		ev.Order.Status = domain.OrderStatusDeliveryConfirmed
	} else {
		ev.Type = domain.NotificationScheduleRejected
	}

	s.logger.Info("delivery schedule answered",
		logx.String("event", "schedule_"+string(updated.Status)),
		logx.Int64("schedule_id", updated.ID),
		logx.Int64("order_id", updated.OrderID),
		logx.Int64("responded_by", caller.UserID),
	)

	s.notify(ctx, []int64{updated.ProposedBy}, ev)
	return updated, nil
}

// List returns the schedules visible to the caller. Administrators see every schedule.
func (s *Service) List(ctx context.Context, caller domain.Caller, f domain.ScheduleFilter) ([]domain.DeliverySchedule, error) {
	if caller.UserID <= 0 {
		return nil, ErrAuthRequired
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, apperr.Invalidf("status must be one of proposed, confirmed, rejected")
	}
	if f.OrderID != nil && *f.OrderID <= 0 {
		return nil, apperr.Invalidf("orderId must be a positive integer")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var visibleTo *int64
	if !caller.IsAdmin() {
		id := caller.UserID
		visibleTo = &id
	}
	return s.schedules.List(ctx, f, visibleTo)
}

func (s *Service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.Proposal(outcome)
	}
}

func (s *Service) notify(ctx context.Context, recipients []int64, ev domain.ScheduleEvent) {
	if s.notifier == nil || len(recipients) == 0 {
		return
	}
	s.notifier.Notify(ctx, recipients, ev)
}
