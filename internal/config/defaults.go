package config

import "time"

const defaultPort = 8080

// Rate limiter backends.
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "agrimarket",
}

var defaultKafka = Kafka{
	NotificationsTopic: "delivery-notifications",
	GroupID:            "delivery-notifications-worker",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Backend:    RateLimitBackendMemory,
	Rate:       10,
	Burst:      20,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultRedis = Redis{}

var defaultPprof = PprofConfig{Addr: "127.0.0.1:6060"}

var defaultLog = Log{Level: "info"}

var defaultNotify = Notify{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    time.Second,
}

var defaultSchedule = Schedule{
	OperationTimeout: 3 * time.Second,
	Timezone:         "Asia/Manila",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

func DefaultKafka() Kafka { return defaultKafka }

func DefaultRateLimit() RateLimit { return defaultRateLimit }

func DefaultRedis() Redis { return defaultRedis }

func DefaultPprof() PprofConfig { return defaultPprof }

func DefaultLog() Log { return defaultLog }

// DefaultNotify returns the default notification retry settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultSchedule returns the default negotiation service settings.
func DefaultSchedule() Schedule {
	return defaultSchedule
}
