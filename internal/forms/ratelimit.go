package forms

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// tokenBucket allows capacity requests in a burst and refills at a steady
// rate.
type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter rate-limits form posts per client IP.
type Limiter struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	buckets    map[string]*tokenBucket
	now        func() time.Time
}

// maxBuckets bounds memory; beyond it idle full buckets are dropped.
const maxBuckets = 4096

// NewLimiter allows requests per window for each client. A non-positive
// requests value disables limiting.
func NewLimiter(requests int, window time.Duration) *Limiter {
	l := &Limiter{
		capacity: float64(requests),
		buckets:  map[string]*tokenBucket{},
		now:      time.Now,
	}
	if requests > 0 && window > 0 {
		l.refillRate = float64(requests) / window.Seconds()
	}
	return l
}

// Allow consumes a token for client. When the bucket is empty it reports
// how long until the next token.
func (l *Limiter) Allow(client string) (bool, time.Duration) {
	if l.capacity <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[client]
	if !ok {
		if len(l.buckets) >= maxBuckets {
			l.prune(now)
		}
		b = &tokenBucket{tokens: l.capacity, lastRefill: now}
		l.buckets[client] = b
	}

	b.tokens = min(l.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*l.refillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if l.refillRate == 0 {
		return false, 0
	}
	wait := (1 - b.tokens) / l.refillRate
	return false, time.Duration(wait * float64(time.Second))
}

// prune drops buckets that have refilled completely. The caller holds l.mu.
func (l *Limiter) prune(now time.Time) {
	for k, b := range l.buckets {
		if b.tokens+now.Sub(b.lastRefill).Seconds()*l.refillRate >= l.capacity {
			delete(l.buckets, k)
		}
	}
}

// Middleware rejects requests over the limit with 429 Too Many Requests.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retry := l.Allow(clientIP(r))
		if !ok {
			secs := max(1, int(retry.Round(time.Second)/time.Second))
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			writeError(w, r, http.StatusTooManyRequests, "Твърде много заявки. Опитайте отново след малко.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which chi's RealIP middleware
// has already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
