package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/ports/scheduletx"
)

const scheduleColumns = `ds.id, ds.order_id, ds.scheduled_date, ds.scheduled_time, ds.route, ds.is_cbd,
        ds.truck_weight_kg::float8, ds.delivery_address, ds.notes, ds.status, ds.proposed_by,
        ds.confirmed_by, ds.created_at, ds.updated_at`

// ScheduleRepo stores delivery schedule proposals.
type ScheduleRepo struct {
	db *pgxpool.Pool
}

// NewScheduleRepo creates a new ScheduleRepo.
func NewScheduleRepo(db *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// Get returns the schedule or nil when it does not exist.
func (r *ScheduleRepo) Get(ctx context.Context, id int64) (*domain.DeliverySchedule, error) {
	s, err := scanSchedule(r.db.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM delivery_schedules ds WHERE ds.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule %d: %w", id, err)
	}
	return s, nil
}

// List returns schedules newest first. When visibleTo is set, only schedules whose
// order has that user as buyer or seller, or that the user proposed or answered, are returned.
func (r *ScheduleRepo) List(ctx context.Context, f domain.ScheduleFilter, visibleTo *int64) ([]domain.DeliverySchedule, error) {
	var status *string
	if f.Status != nil {
		s := string(*f.Status)
		status = &s
	}

	rows, err := r.db.Query(ctx, `
        SELECT `+scheduleColumns+`
        FROM delivery_schedules ds
        JOIN orders o ON o.id = ds.order_id
        WHERE ($1::bigint IS NULL OR ds.order_id = $1)
          AND ($2::text IS NULL OR ds.status = $2)
          AND ($3::bigint IS NULL
               OR o.buyer_id = $3 OR o.seller_id = $3
               OR ds.proposed_by = $3 OR ds.confirmed_by = $3)
        ORDER BY ds.created_at DESC, ds.id DESC
    `, f.OrderID, status, visibleTo)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DeliverySchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// HasProposed reports whether the order already has an outstanding proposal.
func (r *ScheduleRepo) HasProposed(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM delivery_schedules WHERE order_id = $1 AND status = 'proposed'
        )`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check proposed schedule for order %d: %w", orderID, err)
	}
	return exists, nil
}

// Insert stores a new proposal and fills in its id and timestamps.
// A second outstanding proposal for the same order yields apperr.ErrConflict.
func (r *ScheduleRepo) Insert(ctx context.Context, s *domain.DeliverySchedule) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO delivery_schedules
            (order_id, scheduled_date, scheduled_time, route, is_cbd, truck_weight_kg,
             delivery_address, notes, status, proposed_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `, s.OrderID, s.ScheduledDate, s.ScheduledTime, s.Route, s.IsCBD, s.TruckWeightKg,
		s.DeliveryAddress, s.Notes, string(s.Status), s.ProposedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("order %d already has a proposed schedule: %w", s.OrderID, apperr.ErrConflict)
		}
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// WithTx opens a transaction and executes fn within it.
func (r *ScheduleRepo) WithTx(ctx context.Context, fn func(tx scheduletx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo is the transaction-scoped repository handed to WithTx callbacks.
type TxRepo struct {
	tx pgx.Tx
}

var _ scheduletx.Repository = (*TxRepo)(nil)

// GetScheduleForUpdate reads and locks a schedule row.
func (r *TxRepo) GetScheduleForUpdate(ctx context.Context, id int64) (*domain.DeliverySchedule, error) {
	s, err := scanSchedule(r.tx.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM delivery_schedules ds WHERE ds.id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock schedule %d: %w", id, err)
	}
	return s, nil
}

func (r *TxRepo) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.tx, id)
}

// UpdateScheduleStatus answers a proposal. It only touches rows still in the proposed state.
func (r *TxRepo) UpdateScheduleStatus(
	ctx context.Context,
	id int64,
	status domain.ScheduleStatus,
	responderID int64,
	notes *string,
) (*domain.DeliverySchedule, error) {
	s, err := scanSchedule(r.tx.QueryRow(ctx, `
        UPDATE delivery_schedules ds
        SET status       = $2,
            confirmed_by = $3,
            notes        = COALESCE($4, ds.notes),
            updated_at   = now()
        WHERE ds.id = $1 AND ds.status = 'proposed'
        RETURNING `+scheduleColumns,
		id, string(status), responderID, notes))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		if IsCheckViolation(err) {
			return nil, fmt.Errorf("schedule %d cannot be answered by its proposer: %w", id, apperr.ErrForbidden)
		}
		return nil, fmt.Errorf("update schedule %d status: %w", id, err)
	}
	return s, nil
}

// ApplyToOrder mirrors agreed delivery fields onto the order and sets its status.
func (r *TxRepo) ApplyToOrder(ctx context.Context, orderID int64, f domain.DeliveryFields, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET scheduled_date   = $2,
            scheduled_time   = $3,
            route            = $4,
            is_cbd           = $5,
            truck_weight_kg  = $6,
            delivery_address = $7,
            status           = $8,
            updated_at       = now()
        WHERE id = $1
    `, orderID, f.ScheduledDate, f.ScheduledTime, f.Route, f.IsCBD, f.TruckWeightKg, f.DeliveryAddress, string(status))
	if err != nil {
		return fmt.Errorf("apply schedule to order %d: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
	}
	return nil
}

func scanSchedule(row pgx.Row) (*domain.DeliverySchedule, error) {
	var s domain.DeliverySchedule
	err := row.Scan(&s.ID, &s.OrderID, &s.ScheduledDate, &s.ScheduledTime, &s.Route, &s.IsCBD,
		&s.TruckWeightKg, &s.DeliveryAddress, &s.Notes, &s.Status, &s.ProposedBy,
		&s.ConfirmedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
