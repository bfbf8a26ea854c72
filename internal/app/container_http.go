package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"agrimarket-delivery/internal/config"
	"agrimarket-delivery/internal/http/handlers"
	"agrimarket-delivery/internal/http/middleware/auth"
	"agrimarket-delivery/internal/http/middleware/ratelimit"
	"agrimarket-delivery/internal/http/pprofserver"
	"agrimarket-delivery/internal/http/router"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/metrics"
)

func newAuthenticator(cfg *config.Config, logger logx.Logger) (*auth.Authenticator, error) {
	return auth.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer, logger)
}

// newRedisClient returns nil unless the rate limiter is configured to share state through Redis.
func newRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Backend != config.RateLimitBackendRedis {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock, client *redis.Client) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	lc := ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	}
	if rl.Backend == config.RateLimitBackendRedis && client != nil {
		return ratelimit.NewRedisLimiter(client, clock, lc)
	}
	return ratelimit.NewMemoryLimiter(clock, lc)
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}

type routerIn struct {
	dig.In

	Logger        logx.Logger
	Metrics       *metrics.HTTP
	MetricsSource http.Handler `name:"metrics_handler"`
	Auth          *auth.Authenticator
	RateLimit     *ratelimit.Middleware

	Base          *handlers.Handlers
	Schedules     *handlers.ScheduleHandler
	OrderSchedule *handlers.OrderScheduleHandler
	TruckBan      *handlers.TruckBanHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:        in.Logger,
		Metrics:       in.Metrics,
		MetricsSource: in.MetricsSource,
		Auth:          in.Auth.Handler(),
		RateLimit:     in.RateLimit.Handler(),
		Base:          in.Base,
		Schedules:     in.Schedules,
		OrderSchedule: in.OrderSchedule,
		TruckBan:      in.TruckBan,
	})
}

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

// newPprofServer yields a nil server when profiling is switched off.
func newPprofServer(cfg *config.Config) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: pprofserver.New(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})}
}
