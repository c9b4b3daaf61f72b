package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/RyanW84/ShiftsLogger-sub001/pkg/response"
)

// RateLimiter 限流计数后端（Redis 或进程内）
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 速率限制中间件，按客户端 IP 计数
// limiter 出错时降级放行
func RateLimit(limiter RateLimiter, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.Request.Method)
		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("限流检查失败，降级放行", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			response.TooManyRequests(c, "Too many requests, please retry later")
			return
		}

		c.Next()
	}
}

// ── 进程内限流（无 Redis 时使用）──

// localIdleTTL 桶闲置超过该时长（且不短于窗口）后被回收
const localIdleTTL = 10 * time.Minute

type localBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter 基于令牌桶的进程内限流，每个 key 一个桶，闲置的桶定期回收
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*localBucket
	lastSweep time.Time
	now       func() time.Time
}

// NewLocalLimiter 创建进程内限流器
func NewLocalLimiter() *LocalLimiter {
	return &LocalLimiter{buckets: make(map[string]*localBucket), now: time.Now}
}

// Allow 桶容量为 limit，每 window 补满
func (l *LocalLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := l.now()
	idle := localIdleTTL
	if window > idle {
		idle = window
	}

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= idle {
		l.sweep(now, idle)
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{lim: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.lim.AllowN(now, 1), nil
}

// sweep 删除闲置超过 idle 的桶，调用方持有锁
func (l *LocalLimiter) sweep(now time.Time, idle time.Duration) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > idle {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
