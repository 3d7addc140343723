package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"cupcake-api/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an idle client's bucket is kept before it is dropped.
const clientIdleTTL = 10 * time.Minute

// ClientLimiter hands out one token bucket per client host.
type ClientLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter builds a per-client limiter from requests per second and burst.
// It returns nil when rps is not positive.
func NewLimiter(rps float64, burst int) *ClientLimiter {
	if rps <= 0 {
		return nil
	}
	return &ClientLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*clientBucket),
	}
}

// get returns the bucket for key, creating it on first use. Buckets idle for
// longer than clientIdleTTL are swept at most once per TTL.
func (l *ClientLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > clientIdleTTL {
		for k, b := range l.clients {
			if now.Sub(b.lastSeen) > clientIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// clientKey is the host part of the remote address. Forwarding headers are
// not trusted.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects requests beyond the client's budget with 429.
// A nil limiter disables rate limiting.
func RateLimit(limiter *ClientLimiter, metrics *Metrics, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isInfraEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			client := clientKey(r)
			bucket := limiter.get(client)

			if !bucket.Allow() {
				if metrics != nil {
					metrics.rateLimitRejects.Inc()
				}
				logger.Warn().
					Str("path", r.URL.Path).
					Str("client", client).
					Msg("rate limit exceeded")

				w.Header().Set("Retry-After", "1")
				writeError(w, r, http.StatusTooManyRequests, model.ErrCodeRateLimited, "rate limit exceeded")
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(bucket.Limit())))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(bucket.Tokens())))

			next.ServeHTTP(w, r)
		})
	}
}

// isInfraEndpoint reports whether path is an infrastructure endpoint exempt from limits.
func isInfraEndpoint(path string) bool {
	switch path {
	case "/health", "/ready", "/metrics":
		return true
	}
	return false
}
