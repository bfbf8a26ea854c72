package notify

import (
	"context"

	"agrimarket-delivery/internal/domain"
)

type publisher interface {
	Publish(ctx context.Context, task domain.NotificationTask) error
}

type taskStore interface {
	Insert(ctx context.Context, t domain.NotificationTask) (bool, error)
}

type counter interface {
	Inc()
}
