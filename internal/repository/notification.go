package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"agrimarket-delivery/internal/domain"
)

// NotificationRepo persists notification tasks consumed by the worker.
type NotificationRepo struct{ db *pgxpool.Pool }

func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo { return &NotificationRepo{db: db} }

// Insert stores the task once. It reports false when a task with the same id was already stored.
func (r *NotificationRepo) Insert(ctx context.Context, t domain.NotificationTask) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        INSERT INTO notifications (id, user_id, type, title, message, link, order_id, schedule_id, created_at)
        VALUES ($1::text::uuid, $2, $3, $4, $5, $6, NULLIF($7::bigint, 0), NULLIF($8::bigint, 0), $9)
        ON CONFLICT (id) DO NOTHING
    `, t.ID, t.UserID, string(t.Type), t.Title, t.Message, t.Link, t.OrderID, t.ScheduleID, t.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert notification %s: %w", t.ID, err)
	}
	return ct.RowsAffected() == 1, nil
}
