package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type RateLimiter struct {
	CardLimit *IPRateLimiter
}

func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		CardLimit: NewIPRateLimiter(perMinute, time.Minute),
	}
}

// IPRateLimiter is a sliding-window limiter keyed by client IP.
type IPRateLimiter struct {
	ips    map[string][]time.Time
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		ips:    make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records a request from ip and reports whether it fits the window.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)

	requests := l.ips[ip]
	valid := requests[:0]
	for _, req := range requests {
		if req.After(windowStart) {
			valid = append(valid, req)
		}
	}

	if len(valid) >= l.limit {
		l.ips[ip] = valid
		return false
	}
	l.ips[ip] = append(valid, now)
	return true
}

func (l *IPRateLimiter) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.Allow(ip) {
			log.WithField("ip", ip).Warn("Rate limit exceeded")
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
