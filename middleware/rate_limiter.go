package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Booking traffic is bursty around checkout and payment confirmation, so
// short bursts are allowed while the sustained rate stays low enough to
// blunt scripted scraping of plans and stories.
const (
	sustainedPerMinute = 120
	burstSize          = 30
	idleEviction       = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterStore struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

var limiterStore = &rateLimiterStore{clients: make(map[string]*clientLimiter)}

func (s *rateLimiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cl, ok := s.clients[ip]
	if !ok {
		s.evictIdle(now)
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute/sustainedPerMinute), burstSize)}
		s.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// evictIdle drops limiters for addresses that have gone quiet so the map
// does not grow without bound. Called with the lock held.
func (s *rateLimiterStore) evictIdle(now time.Time) {
	for ip, cl := range s.clients {
		if now.Sub(cl.lastSeen) > idleEviction {
			delete(s.clients, ip)
		}
	}
}

// RateLimitMiddleware limits each client address to a sustained request
// rate with a small burst allowance.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiterStore.get(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Slow down and retry."})
			return
		}
		c.Next()
	}
}
