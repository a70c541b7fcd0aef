package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/tripmatch-backend/pkg/ctxutil"
)

// idleAfter is how long a caller's limiter is kept without traffic.
const idleAfter = 10 * time.Minute

// RateLimiter hands out per-caller token buckets. Authenticated callers are
// keyed by user ID, anonymous ones by client IP. Each Limit call gets its own
// set of buckets.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*limitScope
	stop   chan struct{}
	once   sync.Once
}

type limitScope struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	callers map[string]*callerLimiter
}

type callerLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a goroutine that drops idle callers every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per caller with a burst of the same
// size, answering 429 with Retry-After beyond that. It must run after Auth
// to see the user ID.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	scope := &limitScope{
		every:   rate.Limit(float64(maxPerMinute) / 60),
		burst:   maxPerMinute,
		callers: make(map[string]*callerLimiter),
	}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, scope)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := scope.limiter(callerKey(r)).Reserve()
			if delay := res.Delay(); !res.OK() || delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(delay)))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d time.Duration) int {
	if d <= 0 || d == rate.InfDuration {
		return 60
	}
	return int(math.Ceil(d.Seconds()))
}

func callerKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (s *limitScope) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.callers[key]
	if !ok {
		c = &callerLimiter{lim: rate.NewLimiter(s.every, s.burst)}
		s.callers[key] = c
	}
	c.lastSeen = time.Now()
	return c.lim
}

func (s *limitScope) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, c := range s.callers {
		if now.Sub(c.lastSeen) > idleAfter {
			delete(s.callers, key)
		}
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			scopes := append([]*limitScope(nil), rl.scopes...)
			rl.mu.Unlock()
			for _, s := range scopes {
				s.evictIdle(now)
			}
		}
	}
}
