package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/logx"
)

// Dispatcher turns schedule events into one notification task per recipient.
// Publishing is best effort: failures are logged and counted, never returned.
type Dispatcher struct {
	pub      publisher
	failures counter
	logger   logx.Logger

	newID func() string
	now   func() time.Time
}

func NewDispatcher(pub publisher, failures counter, logger logx.Logger) *Dispatcher {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Dispatcher{
		pub:      pub,
		failures: failures,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, recipients []int64, ev domain.ScheduleEvent) {
	if d == nil || d.pub == nil {
		return
	}
	title, message := compose(ev)
	for _, userID := range recipients {
		if userID <= 0 || userID == ev.ActorID {
			continue
		}
		task := domain.NotificationTask{
			ID:         d.newID(),
			UserID:     userID,
			Type:       ev.Type,
			Title:      title,
			Message:    message,
			Link:       orderLink(ev.Order.ID),
			OrderID:    ev.Order.ID,
			ScheduleID: ev.Schedule.ID,
			CreatedAt:  d.now().UTC(),
		}
		if err := d.pub.Publish(ctx, task); err != nil {
			if d.failures != nil {
				d.failures.Inc()
			}
			d.logger.Warn("notification publish failed",
				logx.String("event", "notification_publish_failed"),
				logx.String("type", string(ev.Type)),
				logx.Int64("user_id", userID),
				logx.Int64("order_id", ev.Order.ID),
				logx.Err(err))
		}
	}
}
