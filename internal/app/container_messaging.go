package app

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/config"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/gateway/notifications"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/repository"
	"agrimarket-delivery/internal/service/notify"
	"agrimarket-delivery/internal/transport/kafka"
)

type notificationPublisher interface {
	Publish(ctx context.Context, task domain.NotificationTask) error
}

type scheduleNotifier interface {
	Notify(ctx context.Context, recipients []int64, ev domain.ScheduleEvent)
}

func registerMessaging(container *dig.Container) error {
	return provideAll(container,
		newProducer,
		newNotificationPublisher,
		newDispatcher,
		func(d *notify.Dispatcher) scheduleNotifier { return d },
	)
}

func newProducer(cfg *config.Config) (*kafka.Producer, error) {
	return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
}

type publisherIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Producer *kafka.Producer
	Store    *repository.NotificationRepo
	Retries  prometheus.Counter `name:"notification_publish_retries_total"`
}

// newNotificationPublisher sends tasks through Kafka when a broker is configured and writes them straight to the store otherwise.
func newNotificationPublisher(in publisherIn) notificationPublisher {
	if in.Producer == nil {
		in.Logger.Info("kafka disabled, notifications are stored directly",
			logx.String("event", "notification_store_direct"))
		return notify.NewStorePublisher(in.Store)
	}
	return notifications.NewRetryingPublisher(in.Producer, in.Logger, in.Retries, notifications.RetryConfig{
		MaxAttempts: in.Config.Notify.MaxAttempts,
		BaseDelay:   in.Config.Notify.BaseDelay,
		MaxDelay:    in.Config.Notify.MaxDelay,
	})
}

type dispatcherIn struct {
	dig.In

	Publisher notificationPublisher
	Failures  prometheus.Counter `name:"notification_publish_failures_total"`
	Logger    logx.Logger
}

func newDispatcher(in dispatcherIn) *notify.Dispatcher {
	return notify.NewDispatcher(in.Publisher, in.Failures, in.Logger)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(store *repository.NotificationRepo, logger logx.Logger) *notify.Processor {
			return notify.NewProcessor(store, logger)
		},
		func(p *notify.Processor) kafka.HandleFunc { return makeNotificationHandler(p) },
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, h)
		},
	)
}

type taskHandler interface {
	Handle(ctx context.Context, task domain.NotificationTask) error
}

// makeNotificationHandler marks malformed tasks as permanent so the consumer commits past them.
func makeNotificationHandler(p taskHandler) kafka.HandleFunc {
	return func(ctx context.Context, task domain.NotificationTask) error {
		err := p.Handle(ctx, task)
		if err != nil && errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
