package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// refillScript refills the bucket for the elapsed time and, when ARGV[5] is
// "1", consumes one token. It returns {allowed, tokens_left}.
var refillScript = redis.NewScript(`
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local refill_rate = tonumber(ARGV[2])
	local window = tonumber(ARGV[3])
	local now = tonumber(ARGV[4])
	local consume = ARGV[5] == "1"

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1]) or capacity
	local last_refill = tonumber(bucket[2]) or now

	local tokens_to_add = math.floor(((now - last_refill) / window) * refill_rate)
	if tokens_to_add > 0 then
		tokens = math.min(capacity, tokens + tokens_to_add)
		last_refill = now
	end

	if not consume then
		return {0, tokens}
	end

	local allowed = 0
	if tokens > 0 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill', last_refill)
	redis.call('EXPIRE', key, window * 2)
	return {allowed, tokens}
`)

// TokenBucket is a Redis-backed token bucket shared by every server instance
type TokenBucket struct {
	redis    *redis.Client
	capacity int64         // Maximum number of tokens
	refill   int64         // Tokens added per window
	window   time.Duration // Refill window
	now      func() time.Time
}

// NewTokenBucket creates a bucket refilled refillRate tokens per minute
func NewTokenBucket(redisClient *redis.Client, capacity, refillRate int64) *TokenBucket {
	return &TokenBucket{
		redis:    redisClient,
		capacity: capacity,
		refill:   refillRate,
		window:   time.Minute,
		now:      time.Now,
	}
}

// Capacity returns the maximum number of tokens in the bucket
func (tb *TokenBucket) Capacity() int64 {
	return tb.capacity
}

// Window returns the refill window
func (tb *TokenBucket) Window() time.Duration {
	return tb.window
}

// Allow consumes a token for clientID/action if one is available
func (tb *TokenBucket) Allow(ctx context.Context, clientID, action string) (bool, int64, error) {
	allowed, remaining, err := tb.run(ctx, clientID, action, true)
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}
	return allowed, remaining, nil
}

// GetRemaining returns the tokens left for clientID/action without consuming one
func (tb *TokenBucket) GetRemaining(ctx context.Context, clientID, action string) (int64, error) {
	_, remaining, err := tb.run(ctx, clientID, action, false)
	if err != nil {
		return 0, fmt.Errorf("failed to get remaining tokens: %w", err)
	}
	return remaining, nil
}

// Reset clears the bucket for clientID/action
func (tb *TokenBucket) Reset(ctx context.Context, clientID, action string) error {
	return tb.redis.Del(ctx, key(clientID, action)).Err()
}

func (tb *TokenBucket) run(ctx context.Context, clientID, action string, consume bool) (bool, int64, error) {
	flag := "0"
	if consume {
		flag = "1"
	}

	result, err := refillScript.Run(ctx, tb.redis, []string{key(clientID, action)},
		tb.capacity, tb.refill, int64(tb.window.Seconds()), tb.now().Unix(), flag).Result()
	if err != nil {
		return false, 0, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return false, 0, fmt.Errorf("unexpected result %v from rate limit script", result)
	}
	allowed, ok1 := values[0].(int64)
	remaining, ok2 := values[1].(int64)
	if !ok1 || !ok2 {
		return false, 0, fmt.Errorf("unexpected result types from rate limit script")
	}

	return allowed == 1, remaining, nil
}

func key(clientID, action string) string {
	return fmt.Sprintf("rate_limit:%s:%s", action, clientID)
}
