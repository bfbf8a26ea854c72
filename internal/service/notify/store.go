package notify

import (
	"context"

	"agrimarket-delivery/internal/domain"
)

// StorePublisher writes tasks straight to the notifications table.
// It stands in for the Kafka producer when no brokers are configured.
type StorePublisher struct {
	store taskStore
}

func NewStorePublisher(store taskStore) *StorePublisher {
	return &StorePublisher{store: store}
}

func (p *StorePublisher) Publish(ctx context.Context, task domain.NotificationTask) error {
	_, err := p.store.Insert(ctx, task)
	return err
}
