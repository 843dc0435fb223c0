package factory

import (
	"time"

	"github.com/akeren/landing-intake/pkg/ratelimit"
	"github.com/go-redis/redis/v8"
)

// RateLimiterFactory builds rate limiters that share a common backend, so
// endpoint-specific limits (signup, comment submission) use Redis whenever the
// service-wide limiter does.
type RateLimiterFactory interface {
	CreateRateLimiter(requests int, window time.Duration) ratelimit.RateLimiter
}

type DefaultRateLimiterFactory struct {
	redisClient *redis.Client
	logger      ratelimit.Logger
}

// NewDefaultRateLimiterFactory creates a factory bound to the given Redis
// client. A nil client produces in-memory limiters.
func NewDefaultRateLimiterFactory(redisClient *redis.Client, logger ratelimit.Logger) *DefaultRateLimiterFactory {
	return &DefaultRateLimiterFactory{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (f *DefaultRateLimiterFactory) CreateRateLimiter(requests int, window time.Duration) ratelimit.RateLimiter {
	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: requests,
		Window:   window,
		Redis:    f.redisClient,
		Logger:   f.logger,
	})
}
