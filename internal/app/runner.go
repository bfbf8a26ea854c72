package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner wired to the production run loop.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun blocks until the container's context is cancelled. Unexpected errors panic.
func (r *Runner) MustRun(container *dig.Container) {
	mustRun(container, r.runFn)
}

// WorkerRunner runs the notification consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

func (r *WorkerRunner) MustRun(container *dig.Container) {
	mustRun(container, r.runFn)
}

func mustRun(container *dig.Container, runFn func(*dig.Container) error) {
	err := runFn(container)
	if err == nil {
		return
	}
	_ = container.Invoke(func(logger logx.Logger) {
		switch {
		case errors.Is(err, context.Canceled):
			logger.Info("shutdown requested, exiting")
		case errors.Is(err, context.DeadlineExceeded):
			logger.Warn("startup aborted: startup timeout exceeded")
		default:
			logger.Error("run error", logx.Err(err))
		}
	})
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		panic(err)
	}
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pprof    *http.Server `name:"pprof_server" optional:"true"`
	Pool     *pgxpool.Pool
	Producer *kafka.Producer `optional:"true"`
	Redis    *redis.Client   `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		errCh := make(chan error, 2)
		startServer(in.Server, in.Logger, "api", errCh)
		if in.Pprof != nil {
			startServer(in.Pprof, in.Logger, "pprof", errCh)
		}

		var runErr error
		select {
		case <-in.Ctx.Done():
			in.Logger.Info("shutting down service-delivery", logx.String("event", "shutdown"))
			runErr = in.Ctx.Err()
		case err := <-errCh:
			runErr = err
		}

		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
		}
		closeResources(in)
		return runErr
	})
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("server listening",
			logx.String("event", "server_start"),
			logx.String("server", name),
			logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.String("server", name), logx.Err(err))
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(in runIn) {
	if in.Producer != nil {
		if err := in.Producer.Close(); err != nil {
			in.Logger.Error("kafka producer close error", logx.Err(err))
		}
	}
	if in.Redis != nil {
		if err := in.Redis.Close(); err != nil {
			in.Logger.Error("redis close error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
	_ = in.Logger.Sync()
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) error {
	if consumer == nil {
		return errors.New("kafka consumer is nil: set KAFKA_BROKERS and KAFKA_NOTIFICATIONS_TOPIC")
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
		if pool != nil {
			pool.Close()
		}
		_ = logger.Sync()
	}()

	logger.Info("notification worker started", logx.String("event", "worker_start"))
	return consumer.Run(ctx)
}
