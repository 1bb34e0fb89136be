package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client-IP token bucket. Idle clients are
// evicted after staleAfter so the map stays bounded.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	limit      rate.Limit
	burst      int
	staleAfter time.Duration
}

func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	return &RateLimiter{
		clients:    make(map[string]*clientLimiter),
		limit:      rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:      requestsPerMinute,
		staleAfter: 10 * time.Minute,
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cl, ok := r.clients[ip]
	if !ok {
		r.evictStaleLocked(now)
		cl = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.Allow()
}

func (r *RateLimiter) evictStaleLocked(now time.Time) {
	for ip, cl := range r.clients {
		if now.Sub(cl.lastSeen) > r.staleAfter {
			delete(r.clients, ip)
		}
	}
}
