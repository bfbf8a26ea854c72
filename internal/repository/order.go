package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agrimarket-delivery/internal/domain"
)

const orderColumns = `o.id, o.buyer_id, o.seller_id, o.status, o.scheduled_date, o.scheduled_time,
        o.route, o.is_cbd, o.truck_weight_kg::float8, o.delivery_address, o.is_exempt, o.exemption_type`

// OrderRepo reads marketplace orders and writes their delivery columns.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// Get returns the order or nil when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.db, id)
}

// UpdateSchedule writes the delivery fields, leaving status untouched, and returns the updated order.
func (r *OrderRepo) UpdateSchedule(ctx context.Context, u domain.OrderScheduleUpdate) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE orders o
        SET scheduled_date   = $2,
            scheduled_time   = $3,
            route            = $4,
            is_cbd           = $5,
            truck_weight_kg  = $6,
            delivery_address = $7,
            is_exempt        = $8,
            exemption_type   = $9,
            updated_at       = now()
        WHERE o.id = $1
        RETURNING `+orderColumns,
		u.OrderID, u.ScheduledDate, u.ScheduledTime, u.Route, u.IsCBD, u.TruckWeightKg,
		u.DeliveryAddress, u.IsExempt, u.ExemptionType)

	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order %d schedule: %w", u.OrderID, err)
	}
	return o, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getOrder(ctx context.Context, q queryRower, id int64) (*domain.Order, error) {
	o, err := scanOrder(q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.BuyerID, &o.SellerID, &o.Status, &o.ScheduledDate, &o.ScheduledTime,
		&o.Route, &o.IsCBD, &o.TruckWeightKg, &o.DeliveryAddress, &o.IsExempt, &o.ExemptionType)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
