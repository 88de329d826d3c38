package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// Requests authorised with the superadmin API key get a larger budget.
const apiKeyRateMultiplier = 10

// ConditionalRateLimit applies different rate limits based on authentication method
func (m *Middlewares) ConditionalRateLimit(normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		normal := normalLimiter(next)
		privileged := apiKeyLimiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsAPIKeyAuthorized(r.Context()) {
				privileged.ServeHTTP(w, r)
				return
			}
			normal.ServeHTTP(w, r)
		})
	}
}

// CreateRateLimiters creates the per IP limiters for normal and API key requests
func (m *Middlewares) CreateRateLimiters() (normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
	apiKeyLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests*apiKeyRateMultiplier, window)
	return normalLimiter, apiKeyLimiter
}
