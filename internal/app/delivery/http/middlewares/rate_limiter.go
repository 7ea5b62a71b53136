package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket. A client that runs out of tokens
// is blocked for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	onLimited http.HandlerFunc
}

// NewRateLimiter allows a burst of requests and refills one token every
// per. onLimited writes the response for rejected requests.
func NewRateLimiter(requests int, per, blockTime time.Duration, onLimited http.HandlerFunc) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		onLimited: onLimited,
	}
}

// SubmitRateLimiter limits entry submissions using the app config.
func (m *Middlewares) SubmitRateLimiter() *RateLimiter {
	perMinute := m.InternalConfig.App.SubmitRequestsPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	return NewRateLimiter(
		perMinute,
		time.Minute/time.Duration(perMinute),
		time.Duration(m.InternalConfig.App.SubmitBlockTimeInSeconds)*time.Second,
		m.tooManyRequests,
	)
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip, time.Now()) {
			r.onLimited(w, req)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}
