package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/logx"
)

// Processor persists notification tasks delivered by the worker.
type Processor struct {
	store  taskStore
	logger logx.Logger
}

func NewProcessor(store taskStore, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{store: store, logger: logger}
}

// Handle stores the task. Redelivered tasks are ignored.
func (p *Processor) Handle(ctx context.Context, task domain.NotificationTask) error {
	if err := validateTask(task); err != nil {
		return err
	}

	inserted, err := p.store.Insert(ctx, task)
	if err != nil {
		return err
	}
	if !inserted {
		p.logger.Info("notification already stored",
			logx.String("event", "notification_duplicate"),
			logx.String("id", task.ID))
		return nil
	}
	p.logger.Info("notification stored",
		logx.String("event", "notification_stored"),
		logx.String("id", task.ID),
		logx.Int64("user_id", task.UserID),
		logx.String("type", string(task.Type)))
	return nil
}

func validateTask(t domain.NotificationTask) error {
	if _, err := uuid.Parse(t.ID); err != nil {
		return fmt.Errorf("notification id %q: %w", t.ID, apperr.ErrInvalid)
	}
	if t.UserID <= 0 {
		return fmt.Errorf("notification %s has no recipient: %w", t.ID, apperr.ErrInvalid)
	}
	if strings.TrimSpace(string(t.Type)) == "" || strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("notification %s has no type or title: %w", t.ID, apperr.ErrInvalid)
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("notification %s has no timestamp: %w", t.ID, apperr.ErrInvalid)
	}
	return nil
}
