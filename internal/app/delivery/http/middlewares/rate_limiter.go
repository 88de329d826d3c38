package middlewares

import (
	"fmt"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is an in memory token bucket per client IP. A client that
// exhausts its bucket is blocked for blockTime. It guards the login route
// against password guessing.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

// NewRateLimiter admits requests calls per window with bursts up to the same size.
func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := utils.GetClientIP(req)

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, time.Until(blockedUntil))
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			r.blocked[ip] = time.Now().Add(r.blockTime)
			r.mu.Unlock()

			r.reject(w, req, ip, r.blockTime)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, retryAfter time.Duration) {
	requestID, _ := req.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.LogSecurityEvent(r.log, "client_blocked", requestID,
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)

	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, fmt.Sprintf("%d", seconds))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
}

// NewLoginRateLimiter builds the limiter for the login route from
// APP_LOGIN_RATE_LIMIT_PER_MINUTE. A blocked client waits a full minute.
func (m *Middlewares) NewLoginRateLimiter() *RateLimiter {
	return NewRateLimiter(m.Log, m.InternalConfig.App.LoginRateLimitPerMinute, time.Minute, time.Minute)
}
