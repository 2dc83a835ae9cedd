package authhandlers

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	authdomain "github.com/Black-And-White-Club/darts-league/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/darts-league/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/Black-And-White-Club/darts-league/app/shared/httpx"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Clients idle longer than clientTTL are forgotten on the next sweep.
const (
	clientTTL     = 10 * time.Minute
	sweepInterval = time.Minute
)

type bucket struct {
	*rate.Limiter
	seen time.Time
}

// ClientLimiter hands out one token bucket per client address.
type ClientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewClientLimiter(limit rate.Limit, burst int) *ClientLimiter {
	return &ClientLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow spends one token from the client's bucket.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		for key, b := range l.buckets {
			if now.Sub(b.seen) > clientTTL {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{Limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[client] = b
	}
	b.seen = now
	return b.AllowN(now, 1)
}

// tracked reports how many clients currently hold a bucket.
func (l *ClientLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RateLimitMiddleware answers 429 once a client address runs out of tokens.
// RemoteAddr is expected to be rewritten by chi's RealIP upstream.
func RateLimitMiddleware(limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := r.RemoteAddr
			if host, _, err := net.SplitHostPort(client); err == nil {
				client = host
			}
			if !limiter.Allow(client) {
				httpx.WriteJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too Many Requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware returns a middleware that sets CORS headers for the configured origins.
// When allowedOrigins is empty, no CORS headers are added and the middleware is a no-op.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := origins[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				}
			}

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CorrelationIDHeader carries a caller-supplied request id.
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationMiddleware attaches a correlation id to the request context,
// generating one when the caller did not send it.
func CorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationIDHeader, id)
		next.ServeHTTP(w, r.WithContext(attr.WithCorrelationID(r.Context(), id)))
	})
}

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context. Role checks happen later, in the services.
func AuthMiddleware(provider authjwt.Provider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				return
			}

			claims, err := provider.ValidateToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "Rejected bearer token", attr.Error(err))
				httpx.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(authdomain.WithClaims(r.Context(), claims)))
		})
	}
}
