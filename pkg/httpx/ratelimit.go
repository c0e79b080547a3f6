package httpx

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fluxline/accountd/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines token-bucket rate limiting parameters for a group
// of endpoints.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window.
	RequestsPerWindow int
	// Window is the time window for rate limiting.
	Window time.Duration
	// Burst allows temporary bursts above the sustained rate.
	Burst int
}

// Rate limit profiles. Overridable via environment variables, mostly so tests
// can loosen them (see ParseRateLimitFromEnv).
var (
	// StrictLimit for credential endpoints (brute force prevention).
	// Override with: RATELIMIT_STRICT_REQUESTS, RATELIMIT_STRICT_WINDOW_SEC, RATELIMIT_STRICT_BURST
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	// DefaultLimit for authenticated API operations.
	// Override with: RATELIMIT_DEFAULT_REQUESTS, RATELIMIT_DEFAULT_WINDOW_SEC, RATELIMIT_DEFAULT_BURST
	DefaultLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	DefaultLimit = ParseRateLimitFromEnv("DEFAULT", DefaultLimit)
}

// ParseRateLimitFromEnv reads rate limit overrides from environment variables
// following the pattern RATELIMIT_{prefix}_{field}.
func ParseRateLimitFromEnv(prefix string, defaults RateLimitConfig) RateLimitConfig {
	cfg := defaults

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.RequestsPerWindow = n
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Window = time.Duration(n) * time.Second
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Burst = n
		}
	}

	return cfg
}

// KeyExtractor derives the bucketing key for a request (IP, user ID, ...).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP, honoring X-Forwarded-For and
// X-Real-IP for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor extracts the authenticated user ID from the request
// context, or empty when the request is unauthenticated.
func UserIDKeyExtractor(r *http.Request) string {
	id, _ := UserIDFromCtx(r.Context())
	return id
}

// limiterPool manages one token bucket per key.
type limiterPool struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastSweep   time.Time
	sweepPeriod time.Duration
}

func (p *limiterPool) get(key string) *rate.Limiter {
	if l, ok := p.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}

	l := rate.NewLimiter(p.rate, p.burst)
	actual, _ := p.limiters.LoadOrStore(key, l)

	p.maybeSweep()
	return actual.(*rate.Limiter)
}

// maybeSweep drops idle buckets so ephemeral keys don't accumulate forever. A
// bucket holding its full burst of tokens hasn't been touched in a while.
func (p *limiterPool) maybeSweep() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastSweep) < p.sweepPeriod {
		return
	}
	p.lastSweep = time.Now()

	p.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(p.burst) {
			p.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware creates a rate limiting stage with the given
// configuration. keyExtractor determines how requests are grouped.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	pool := &limiterPool{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastSweep:   time.Now(),
		sweepPeriod: 5 * time.Minute,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				// No key to bucket on; allow the request but note it.
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := pool.get(key)
			if !limiter.Allow() {
				reservation := limiter.Reserve()
				delay := reservation.Delay()
				reservation.Cancel() // don't actually consume it

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				log.Warn("rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"code":    "rate_limited",
					"message": "Too many requests. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits by client IP address only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user ID, falling back to IP for
// unauthenticated requests.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, func(r *http.Request) string {
		if id := UserIDKeyExtractor(r); id != "" {
			return id
		}
		return IPKeyExtractor(r)
	})
}
