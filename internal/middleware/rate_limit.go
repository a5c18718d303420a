package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	LoginLimitMessage  = "Too many login attempts. Try again later."
	SignupLimitMessage = "Too many signup attempts. Try again later."

	maxPeekBody = 1 << 20
	noEmail     = "no-email"
)

// Limiter decides whether one more attempt under key fits in the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// SlidingWindowLimiter keeps one sorted set per key in Redis. Every attempt is
// recorded; attempts older than the window are trimmed before counting.
type SlidingWindowLimiter struct {
	rdb    redis.Cmdable
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewSlidingWindowLimiter(rdb redis.Cmdable, prefix string, limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// WithClock returns a copy reading time from now.
func (l *SlidingWindowLimiter) WithClock(now func() time.Time) *SlidingWindowLimiter {
	cp := *l
	cp.now = now
	return &cp
}

func (l *SlidingWindowLimiter) Key(key string) string {
	return "ratelimit:" + l.prefix + ":" + key
}

func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now()
	redisKey := l.Key(key)
	oldest := strconv.FormatInt(now.Add(-l.window).UnixMilli(), 10)

	var card *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "-inf", oldest)
		pipe.ZAdd(ctx, redisKey, redis.Z{
			Score:  float64(now.UnixMilli()),
			Member: strconv.FormatInt(now.UnixNano(), 10),
		})
		card = pipe.ZCard(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}

	return card.Val() <= int64(l.limit), nil
}

// minPruneSize is the bucket count below which IPRateLimiter never prunes.
const minPruneSize = 1024

// IPRateLimiter holds one token bucket per key. Buckets that have refilled
// completely are dropped once the map doubles in size, so distinct keys do
// not accumulate forever.
type IPRateLimiter struct {
	ips     map[string]*rate.Limiter
	mu      *sync.RWMutex
	r       rate.Limit // jumlah request per detik
	b       int        // burst (kapasitas kantong)
	pruneAt int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:     make(map[string]*rate.Limiter),
		mu:      &sync.RWMutex{},
		r:       r,
		b:       b,
		pruneAt: minPruneSize,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[key]
	if !exists {
		if len(i.ips) >= i.pruneAt {
			i.prune()
			i.pruneAt = max(2*len(i.ips), minPruneSize)
		}
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[key] = limiter
	}

	return limiter
}

// Prune drops every full bucket and reports how many were removed. A full
// bucket behaves exactly like a new one.
func (i *IPRateLimiter) Prune() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.prune()
}

func (i *IPRateLimiter) prune() int {
	removed := 0
	for key, l := range i.ips {
		if l.Tokens() >= float64(i.b) {
			delete(i.ips, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked keys.
func (i *IPRateLimiter) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.ips)
}

// LocalLimiter is the single-process fallback used when Redis is not
// configured: a bucket of limit tokens refilled over window.
type LocalLimiter struct {
	buckets *IPRateLimiter
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit < 1 {
		limit = 1
	}
	return &LocalLimiter{buckets: NewIPRateLimiter(rate.Every(window/time.Duration(limit)), limit)}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.buckets.GetLimiter(key).Allow(), nil
}

// NewLimiter picks the Redis limiter when rdb is set, the local one otherwise.
func NewLimiter(rdb redis.Cmdable, prefix string, limit int, window time.Duration) Limiter {
	if rdb == nil {
		return NewLocalLimiter(limit, window)
	}
	return NewSlidingWindowLimiter(rdb, prefix, limit, window)
}

// RateLimitByIPAndEmail counts attempts per (client IP, submitted email) pair.
// It throttles repeated guesses against one account from one address; a
// client that changes its IP or the email gets a fresh budget. If the limiter
// store fails the request is let through.
func RateLimitByIPAndEmail(limiter Limiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := c.ClientIP() + "|" + peekEmail(c)

		allowed, err := limiter.Allow(ctx, key)
		if err != nil {
			contextutil.GetLogger(ctx, zap.L()).Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			contextutil.GetLogger(ctx, zap.L()).Warn("rate limit exceeded",
				zap.String("path", c.FullPath()),
				zap.String("client_ip", c.ClientIP()),
			)
			response.Abort(c, apperror.ErrTooManyRequests.HTTPStatus, apperror.CodeTooManyRequests, message)
			return
		}
		c.Next()
	}
}

// peekEmail reads the email from a JSON body and puts the body back for the handler.
func peekEmail(c *gin.Context) string {
	if c.Request.Body == nil {
		return noEmail
	}
	original := c.Request.Body
	body, err := io.ReadAll(io.LimitReader(original, maxPeekBody))
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(body), original), original}
	if err != nil {
		return noEmail
	}

	var payload struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return noEmail
	}
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" {
		return noEmail
	}
	return email
}
