// Package ratelimit implements a fixed-window request counter keyed by
// client identifier. The store is owned by the Limiter value, not by the
// package, so each server (and each test) gets isolated state.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests in discrete, non-overlapping windows per key.
// The check and the increment are a single operation under the mutex:
// every call against a live window mutates the count exactly once, so a
// limited call still burns budget in its window.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   int
	window  time.Duration
	now     func() time.Time

	cleanupOnce sync.Once
}

// New creates a limiter allowing limit requests per window per key.
func New(limit int, window time.Duration) *Limiter {
	return NewWithClock(limit, window, time.Now)
}

// NewWithClock injects the clock; tests drive window expiry through it.
func NewWithClock(limit int, window time.Duration, now func() time.Time) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		limit:   limit,
		window:  window,
		now:     now,
	}
}

// Allow records one request for key and reports whether it is within the
// window budget, together with the window's reset time. A missing or
// expired entry is replaced with a fresh window counting this request.
func (l *Limiter) Allow(key string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(l.window)}
		l.entries[key] = e
		return true, e.resetAt
	}

	e.count++
	return e.count <= l.limit, e.resetAt
}

// StartCleanup launches a background sweep of expired windows. Safe to
// call more than once; only the first call starts the goroutine.
func (l *Limiter) StartCleanup(interval time.Duration) {
	l.cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(interval)
			for range ticker.C {
				l.sweep()
			}
		}()
	})
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
		}
	}
}
