// Package monitoring collects in-process request counters and exposes
// them with health probes on /metrics and /health.
package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Monitor struct {
	mu            sync.RWMutex
	requestCount  int64
	errorCount    int64
	statusCodes   map[string]int64
	endpoints     map[string]int64
	totalDuration time.Duration
	startTime     time.Time
	checks        map[string]HealthCheckFunc
}

type HealthCheckFunc func(ctx context.Context) error

func NewMonitor() *Monitor {
	return &Monitor{
		statusCodes: make(map[string]int64),
		endpoints:   make(map[string]int64),
		startTime:   time.Now(),
		checks:      make(map[string]HealthCheckFunc),
	}
}

// RegisterHealthCheck adds a named probe run on every /health request.
func (m *Monitor) RegisterHealthCheck(name string, check HealthCheckFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks[name] = check
}

// Middleware counts every request by endpoint and status class.
func (m *Monitor) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		endpoint := c.Request.Method + " " + c.FullPath()
		statusCode := c.Writer.Status()

		m.mu.Lock()
		m.requestCount++
		m.totalDuration += duration
		if statusCode >= 400 {
			m.errorCount++
		}
		m.statusCodes[http.StatusText(statusCode)]++
		m.endpoints[endpoint]++
		m.mu.Unlock()
	}
}

func (m *Monitor) MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		m.mu.RLock()
		avg := time.Duration(0)
		if m.requestCount > 0 {
			avg = m.totalDuration / time.Duration(m.requestCount)
		}
		statusCodes := make(map[string]int64, len(m.statusCodes))
		for k, v := range m.statusCodes {
			statusCodes[k] = v
		}
		endpoints := make(map[string]int64, len(m.endpoints))
		for k, v := range m.endpoints {
			endpoints[k] = v
		}
		response := gin.H{
			"request_count":        m.requestCount,
			"error_count":          m.errorCount,
			"avg_request_duration": avg.String(),
			"status_codes":         statusCodes,
			"endpoint_calls":       endpoints,
			"uptime":               time.Since(m.startTime).String(),
			"goroutine_count":      runtime.NumGoroutine(),
			"alloc_mb":             mem.Alloc / 1024 / 1024,
			"go_version":           runtime.Version(),
		}
		m.mu.RUnlock()

		c.JSON(http.StatusOK, response)
	}
}

func (m *Monitor) HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.mu.RLock()
		checks := make(map[string]HealthCheckFunc, len(m.checks))
		for name, check := range m.checks {
			checks[name] = check
		}
		m.mu.RUnlock()

		results := make(map[string]string, len(checks))
		status := "healthy"
		for name, check := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			if err := check(ctx); err != nil {
				results[name] = err.Error()
				status = "unhealthy"
			} else {
				results[name] = "ok"
			}
			cancel()
		}

		code := http.StatusOK
		if status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status": status,
			"checks": results,
			"uptime": time.Since(m.startTime).String(),
		})
	}
}
