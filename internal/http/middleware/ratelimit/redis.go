package ratelimit

import (
	"context"
	"fmt"
	"math"

	"github.com/redis/go-redis/v9"
)

// KEYS[1] bucket key
// ARGV rate (tokens/s), capacity, now (unix seconds, fractional), ttl (seconds)
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call("HMGET", key, "tokens", "last")
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if not tokens or not last then
    tokens = capacity
    last = now
end

local elapsed = now - last
if elapsed > 0 then
    tokens = math.min(capacity, tokens + elapsed * rate)
    last = now
end

local allowed = 0
if tokens >= 1 then
    tokens = tokens - 1
    allowed = 1
end

redis.call("HSET", key, "tokens", tostring(tokens), "last", tostring(last))
redis.call("EXPIRE", key, ttl)
return allowed
`)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter shares token buckets between service replicas through Redis.
type RedisLimiter struct {
	client redis.Scripter
	cfg    Config
	clock  Clock
}

func NewRedisLimiter(client redis.Scripter, clock Clock, cfg Config) *RedisLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	return &RedisLimiter{client: client, cfg: cfg.normalized(), clock: clock}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := float64(l.clock.Now().UnixMicro()) / 1e6
	ttl := int64(math.Ceil(l.cfg.TTL.Seconds()))
	if ttl <= 0 {
		// long enough for an empty bucket to refill
		ttl = int64(math.Ceil(float64(l.cfg.Burst)/l.cfg.Rate)) + 1
	}

	res, err := tokenBucketScript.Run(ctx, l.client, []string{redisKeyPrefix + key},
		l.cfg.Rate, l.cfg.Burst, now, ttl).Int64()
	if err != nil {
		return false, fmt.Errorf("redis limiter: %w", err)
	}
	return res == 1, nil
}
