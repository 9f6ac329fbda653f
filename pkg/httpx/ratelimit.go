package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Common rate limit profiles. Overridable via environment variables
// (RATELIMIT_{PROFILE}_REQUESTS, _WINDOW_SEC, _BURST), which the e2e tests
// rely on to avoid tripping the credential-endpoint limits.
var (
	// StrictLimit for credential endpoints (brute force prevention).
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}

	// ModerateLimit for authenticated write operations.
	ModerateLimit = RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		Burst:             20,
	}

	// LenientLimit for authenticated read operations.
	LenientLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
}

// ParseRateLimitFromEnv reads a rate limit profile from environment
// variables following the pattern RATELIMIT_{prefix}_{field}.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if v := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.RequestsPerWindow = n
		}
	}
	if v := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Window = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("RATELIMIT_" + prefix + "_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Burst = n
		}
	}

	return config
}

// KeyExtractor derives the bucket key for a request.
type KeyExtractor func(r *http.Request) string

// IPKeyExtractor buckets by client IP.
func IPKeyExtractor(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserKeyExtractor buckets by authenticated subject, falling back to IP for
// requests that did not pass through the guard.
func UserKeyExtractor(r *http.Request) string {
	if uid := UserIDFromContext(r.Context()); uid != "" {
		return "user:" + uid
	}
	return "ip:" + IPKeyExtractor(r)
}

// How often a pool sweeps for idle entries, and how long an entry may sit
// unused before the sweep drops it.
const (
	sweepInterval = time.Minute
	idleRetention = 10 * time.Minute
)

// limiterPool tracks one token bucket per key. Idle entries are swept
// opportunistically on access, so a pool owns no goroutine and needs no
// shutdown hook.
type limiterPool struct {
	mu        sync.Mutex
	limiters  map[string]*pooledLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

type pooledLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterPool(config RateLimitConfig) *limiterPool {
	return &limiterPool{
		limiters:  make(map[string]*pooledLimiter),
		limit:     rate.Every(config.Window / time.Duration(config.RequestsPerWindow)),
		burst:     config.Burst,
		lastSweep: time.Now(),
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastSweep) >= sweepInterval {
		p.sweep()
	}

	entry, ok := p.limiters[key]
	if !ok {
		entry = &pooledLimiter{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// sweep drops entries idle past the retention window. Caller holds mu.
func (p *limiterPool) sweep() {
	p.lastSweep = time.Now()
	for key, entry := range p.limiters {
		if time.Since(entry.lastSeen) > idleRetention {
			delete(p.limiters, key)
		}
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given
// configuration and key extractor. Rejected requests get a 429 with a
// Retry-After hint.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	pool := newLimiterPool(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pool.get(keyExtractor(r)).Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(int(config.Window.Seconds())))
				WriteError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP applies config keyed by client IP.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser applies config keyed by authenticated subject.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, UserKeyExtractor)
}
