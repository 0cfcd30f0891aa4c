package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"library-services/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// client pairs a per-IP limiter with the time it was last seen so stale
// entries can be evicted.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a per-IP token bucket to every request. A background
// goroutine drops entries not seen within three cleanup intervals.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		for {
			time.Sleep(interval)
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*interval {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			ip = c.Request.RemoteAddr
		}

		mu.Lock()
		cl, found := clients[ip]
		if !found {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.BurstSize)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
