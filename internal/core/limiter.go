package core

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiters idle for this long are dropped, a fresh one is created on the next request.
const LIMITER_IDLE_TTL = 10 * time.Minute

type Limiter interface {
	Allow() bool
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiters struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewLimiters() *Limiters {
	return &Limiters{
		limiters:  make(map[string]*limiterEntry),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Use returns the limiter of key, creating one that allows perMinute requests per
// minute with a burst of twice that. A non-positive perMinute never limits.
func (l *Limiters) Use(key string, perMinute int) Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, exist := l.limiters[key]
	if !exist {
		limit := rate.Every(time.Minute / time.Duration(perMinute))
		entry = &limiterEntry{limiter: rate.NewLimiter(limit, perMinute*2)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// sweep drops idle limiters, at most once per LIMITER_IDLE_TTL.
// The burst of an idle limiter has refilled long before the ttl, so a new one behaves the same.
func (l *Limiters) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < LIMITER_IDLE_TTL {
		return
	}
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= LIMITER_IDLE_TTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func (l *Limiters) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
