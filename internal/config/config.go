package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Config is the full service configuration.
type Config struct {
	Port    int
	Migrate bool

	DB        DB
	Kafka     Kafka
	Auth      Auth
	RateLimit RateLimit
	Redis     Redis
	Pprof     PprofConfig
	Log       Log
	Notify    Notify
	Schedule  Schedule
}

// DB holds Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Kafka holds notification transport settings. Empty Brokers disables it.
type Kafka struct {
	Brokers            []string
	NotificationsTopic string
	GroupID            string
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 && k.NotificationsTopic != "" }

// Auth configures bearer token verification.
type Auth struct {
	Secret string
	Issuer string
}

// RateLimit configures the per-client HTTP limiter.
type RateLimit struct {
	Enabled    bool
	Backend    string
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// PprofConfig configures the debug server.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

type Log struct {
	Level string
	File  string
}

// Notify bounds retries of notification publishing.
type Notify struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Schedule holds negotiation service settings.
type Schedule struct {
	OperationTimeout time.Duration
	Timezone         string
	Location         *time.Location
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	if fs.Lookup("port") == nil {
		fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
		fs.BoolVar(&cfg.Migrate, "migrate", cfg.Migrate, "apply database migrations on startup")
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	var (
		cfg = &Config{
			DB:        DefaultDB(),
			Kafka:     DefaultKafka(),
			RateLimit: DefaultRateLimit(),
			Redis:     DefaultRedis(),
			Pprof:     DefaultPprof(),
			Log:       DefaultLog(),
			Notify:    DefaultNotify(),
			Schedule:  DefaultSchedule(),
		}
		err error
	)

	if cfg.Port, err = envInt("PORT", DefaultPort()); err != nil {
		return nil, err
	}
	if cfg.Migrate, err = envBool("MIGRATE", false); err != nil {
		return nil, err
	}

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := cast.ToUint16E(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("POSTGRES_PORT: %w", err)
	}

	if v := envString("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.NotificationsTopic = envString("KAFKA_NOTIFICATIONS_TOPIC", cfg.Kafka.NotificationsTopic)
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.Auth.Secret = envString("JWT_SECRET", "")
	cfg.Auth.Issuer = envString("JWT_ISSUER", "")

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return nil, err
	}
	cfg.RateLimit.Backend = strings.ToLower(envString("RATE_LIMIT_BACKEND", cfg.RateLimit.Backend))
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimit.Rate); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return nil, err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return nil, err
	}
	if cfg.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets); err != nil {
		return nil, err
	}

	cfg.Redis.Addr = envString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envString("REDIS_PASSWORD", cfg.Redis.Password)
	if cfg.Redis.DB, err = envInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return nil, err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return nil, err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASSWORD", cfg.Pprof.Pass)

	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = envString("LOG_FILE", cfg.Log.File)

	if cfg.Notify.MaxAttempts, err = envInt("NOTIFY_MAX_ATTEMPTS", cfg.Notify.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.Notify.BaseDelay, err = envDuration("NOTIFY_BASE_DELAY", cfg.Notify.BaseDelay); err != nil {
		return nil, err
	}
	if cfg.Notify.MaxDelay, err = envDuration("NOTIFY_MAX_DELAY", cfg.Notify.MaxDelay); err != nil {
		return nil, err
	}

	if cfg.Schedule.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", cfg.Schedule.OperationTimeout); err != nil {
		return nil, err
	}
	cfg.Schedule.Timezone = envString("TRUCKBAN_TIMEZONE", cfg.Schedule.Timezone)
	if cfg.Schedule.Location, err = time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return nil, fmt.Errorf("TRUCKBAN_TIMEZONE: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.RateLimit.Backend {
	case RateLimitBackendMemory:
	case RateLimitBackendRedis:
		if c.RateLimit.Enabled && c.Redis.Addr == "" {
			return errors.New("RATE_LIMIT_BACKEND=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown rate limit backend %q", c.RateLimit.Backend)
	}
	if c.Notify.MaxAttempts < 1 {
		return fmt.Errorf("NOTIFY_MAX_ATTEMPTS must be positive, got %d", c.Notify.MaxAttempts)
	}
	if c.Schedule.OperationTimeout <= 0 {
		return fmt.Errorf("OPERATION_TIMEOUT must be positive, got %s", c.Schedule.OperationTimeout)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
