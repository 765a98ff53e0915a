package middleware

import (
	"bank-services/internal/config"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// limiter decides whether one more request from key fits in its budget.
type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimiterMiddleware struct {
	limiter limiter
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

// NewRateLimiterMiddleware counts requests in Redis when redisClient is set, so
// that every instance shares the budget, and falls back to per-process token
// buckets otherwise. The in-process buckets are swept until ctx is done.
func NewRateLimiterMiddleware(ctx context.Context, cfg config.RateLimitConfig, redisClient *redis.Client, logger *slog.Logger) *RateLimiterMiddleware {
	rl := &RateLimiterMiddleware{cfg: cfg, logger: logger}

	switch {
	case !cfg.Enabled:
		logger.Info("Rate limiting is disabled via configuration.")
	case redisClient != nil:
		logger.Info("Rate limiter middleware configured with Redis", "rps", cfg.RPS, "window", time.Second)
		rl.limiter = newRedisLimiter(redisClient, cfg)
	default:
		logger.Info("Rate limiter middleware configured in memory", "rps", cfg.RPS, "burst", cfg.Burst)
		rl.limiter = newLocalLimiter(ctx, cfg, limiterSweepInterval)
	}

	return rl
}

func (rl *RateLimiterMiddleware) IsEnabled() bool {
	return rl.cfg.Enabled && rl.limiter != nil
}

// extractIP keys clients on RemoteAddr only. Forwarding headers are client
// controlled; middleware.RealIP has already applied them upstream.
func (rl *RateLimiterMiddleware) extractIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.IsEnabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.extractIP(r)

		allowed, err := rl.limiter.Allow(r.Context(), ip)
		if err != nil {
			rl.logger.Error("Rate limiter check failed, letting request through", "error", err, "ip", ip)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			rl.logger.Warn("Rate limit exceeded", "ip", ip)
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

const limiterSweepInterval = 10 * time.Minute

type localLimiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
	// done is closed once the sweeping goroutine has returned.
	done chan struct{}
}

func newLocalLimiter(ctx context.Context, cfg config.RateLimitConfig, sweepEvery time.Duration) *localLimiter {
	l := &localLimiter{limit: rate.Limit(cfg.RPS), burst: cfg.Burst, done: make(chan struct{})}
	go l.cleanupLimiters(ctx, sweepEvery)
	return l
}

func (l *localLimiter) Allow(_ context.Context, key string) (bool, error) {
	v, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.limit, l.burst))
	return v.(*rate.Limiter).Allow(), nil
}

// cleanupLimiters drops the buckets that have refilled completely, which are
// indistinguishable from fresh ones, until ctx is done.
func (l *localLimiter) cleanupLimiters(ctx context.Context, every time.Duration) {
	defer close(l.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

func (l *localLimiter) sweep(now time.Time) {
	l.limiters.Range(func(key, value interface{}) bool {
		if value.(*rate.Limiter).TokensAt(now) >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

type redisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func newRedisLimiter(client redis.Cmdable, cfg config.RateLimitConfig) *redisLimiter {
	limit := int64(cfg.RPS)
	if limit < 1 {
		limit = 1
	}
	return &redisLimiter{client: client, limit: limit, window: time.Second}
}

// Allow implements a fixed window counter: the first INCR of a window also sets
// the key's TTL. A key found over the limit without a TTL, left behind by a
// failed EXPIRE, gets one again so the client is not locked out for good.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("redis INCR failed: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("redis EXPIRE failed: %w", err)
		}
		return count <= l.limit, nil
	}

	if count > l.limit {
		ttl, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil {
			return false, fmt.Errorf("redis TTL failed: %w", err)
		}
		if ttl == noExpiry {
			if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
				return false, fmt.Errorf("redis EXPIRE failed: %w", err)
			}
		}
	}

	return count <= l.limit, nil
}

// noExpiry is what TTL reports for a key that exists but has no timeout.
const noExpiry = time.Duration(-1)
