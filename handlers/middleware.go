package handlers

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

var (
	// requestTotal counts requests by route, method and status
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalgpt_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// requestDuration tracks request latency by route
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "legalgpt_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
	}, []string{"route"})

	// rateLimited counts rejected requests per route
	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalgpt_http_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})

	// consultationCacheHits counts consultations served from the cache
	consultationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "legalgpt_consultation_cache_hits_total",
		Help: "Consultations answered from the cache",
	})
)

// Metrics records request counts and latency
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Logger logs every request
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

const (
	defaultLimiterIdle    = 10 * time.Minute
	defaultLimiterCleanup = time.Minute
)

// ClientLimiter keeps one token bucket per client IP. Buckets of clients idle longer than
// the idle timeout are evicted.
type ClientLimiter struct {
	limiters *gocache.Cache
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	idle     time.Duration
}

// LimiterOption is a functional option for ClientLimiter
type LimiterOption func(*limiterOptions)

type limiterOptions struct {
	idle    time.Duration
	cleanup time.Duration
}

// WithIdleEviction sets how long an idle client's bucket is kept and how often idle
// buckets are swept
func WithIdleEviction(idle, cleanup time.Duration) LimiterOption {
	return func(o *limiterOptions) {
		if idle > 0 {
			o.idle = idle
		}
		if cleanup > 0 {
			o.cleanup = cleanup
		}
	}
}

// NewClientLimiter creates a limiter allowing requestsPerSecond per client
func NewClientLimiter(requestsPerSecond float64, burst int, opts ...LimiterOption) *ClientLimiter {
	if burst <= 0 {
		burst = 5
	}
	o := limiterOptions{idle: defaultLimiterIdle, cleanup: defaultLimiterCleanup}
	for _, opt := range opts {
		opt(&o)
	}
	return &ClientLimiter{
		limiters: gocache.New(o.idle, o.cleanup),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		idle:     o.idle,
	}
}

// Allow reports whether the client may make a request now
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	var limiter *rate.Limiter
	if v, ok := l.limiters.Get(client); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.rate, l.burst)
	}
	// every request pushes the eviction deadline back
	l.limiters.Set(client, limiter, l.idle)
	l.mu.Unlock()
	return limiter.Allow()
}

// Clients returns the number of tracked client buckets
func (l *ClientLimiter) Clients() int {
	return l.limiters.ItemCount()
}

// RateLimit rejects clients exceeding their budget with 429. A zero rate disables limiting.
func RateLimit(l *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.rate == 0 {
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			rateLimited.WithLabelValues(c.FullPath()).Inc()
			abortError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down")
			return
		}
		c.Next()
	}
}

// APIKey requires an X-API-Key header matching the bcrypt hash. An empty hash disables the check.
func APIKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hash == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if key == "" {
			abortError(c, http.StatusUnauthorized, "MISSING_API_KEY", "X-API-Key header is required")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			abortError(c, http.StatusUnauthorized, "INVALID_API_KEY", "Invalid API key")
			return
		}
		c.Next()
	}
}
