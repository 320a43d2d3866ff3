package middleware

import (
	"time"

	"nexstock/pkg/log"
)

// RateLimitConfig bounds request rates per client IP.
type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
	ClientTTL      time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rl),
	}
}
