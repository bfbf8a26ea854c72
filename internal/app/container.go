package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"agrimarket-delivery/internal/config"
	"agrimarket-delivery/internal/http/handlers"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/metrics"
	"agrimarket-delivery/internal/repository"
	"agrimarket-delivery/internal/service/negotiation"
	"agrimarket-delivery/internal/service/orderschedule"
	"agrimarket-delivery/internal/truckban"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	migrate   func(dsn string, logger logx.Logger) error
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		migrate:   repository.Migrate,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate replaces the migration runner used when MIGRATE is set.
func (b *ContainerBuilder) WithMigrate(fn func(string, logx.Logger) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container or dies.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the notification worker container or dies.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMessaging(container); err != nil {
		return nil, fmt.Errorf("messaging: %w", err)
	}
	if err := registerServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container with production wiring.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with production wiring.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		newMetrics,
		truckban.Default,
		func(cfg *config.Config) *time.Location { return cfg.Schedule.Location },
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate func(string, logx.Logger) error) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		dsn := cfg.DB.DSN()
		if cfg.Migrate {
			if err := migrate(dsn, logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return dbConnect(ctx, logger, dsn, 10, time.Second)
	}
	return provideAll(container,
		providerDB,
		repository.NewOrderRepo,
		repository.NewScheduleRepo,
		repository.NewNotificationRepo,
	)
}

type negotiationIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	Schedules *repository.ScheduleRepo
	Orders    *repository.OrderRepo
	Engine    *truckban.Engine
	Notifier  scheduleNotifier
	Metrics   *metrics.Schedule
}

func registerServices(container *dig.Container) error {
	return provideAll(container,
		func(in negotiationIn) *negotiation.Service {
			return negotiation.NewService(
				in.Schedules, in.Orders, in.Engine, in.Notifier, in.Metrics,
				in.Config.Schedule.OperationTimeout, in.Logger,
			)
		},
		func(cfg *config.Config, orders *repository.OrderRepo, engine *truckban.Engine, logger logx.Logger) *orderschedule.Service {
			return orderschedule.NewService(orders, engine, cfg.Schedule.OperationTimeout, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		func(logger logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
			if pool == nil {
				return handlers.New(logger, nil)
			}
			return handlers.New(logger, pool)
		},
		func(logger logx.Logger, svc *negotiation.Service) *handlers.ScheduleHandler {
			return handlers.NewScheduleHandler(logger, svc)
		},
		func(logger logx.Logger, svc *orderschedule.Service) *handlers.OrderScheduleHandler {
			return handlers.NewOrderScheduleHandler(logger, svc)
		},
		func(logger logx.Logger, engine *truckban.Engine, loc *time.Location) *handlers.TruckBanHandler {
			return handlers.NewTruckBanHandler(logger, engine, loc)
		},
		newAuthenticator,
		newRedisClient,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		newPprofServer,
	)
}
