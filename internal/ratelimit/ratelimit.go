package ratelimit

import (
	"context"
	"time"

	"github.com/orgball2608/insta-shop-sync/pkg/logger"
)

// Result describes the state of a key's window after one attempt.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Window is the counter stored for one key.
type Window struct {
	Count   int
	ResetAt time.Time
}

// Store keeps fixed-window counters.
type Store interface {
	// Increment counts one attempt against key, opening a new window when
	// the previous one has ended.
	Increment(ctx context.Context, key string, window time.Duration, now time.Time) (Window, error)

	// Sweep drops windows that ended before now and reports how many were removed.
	Sweep(ctx context.Context, now time.Time) (int, error)
}

// Limiter caps attempts per key within a window.
type Limiter struct {
	store  Store
	now    func() time.Time
	logger logger.Logger
}

func NewLimiter(store Store, now func() time.Time, log logger.Logger) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		store:  store,
		now:    now,
		logger: log.WithComponent("RateLimiter"),
	}
}

// Check records an attempt for key. When the store fails the attempt is allowed.
func (l *Limiter) Check(ctx context.Context, key string, max int, window time.Duration) Result {
	now := l.now()

	w, err := l.store.Increment(ctx, key, window, now)
	if err != nil {
		l.logger.Warn("Rate limit store unavailable, allowing request", "key", key, "error", err)
		return Result{Allowed: true, Remaining: max, ResetAt: now.Add(window)}
	}

	remaining := max - w.Count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   w.Count <= max,
		Remaining: remaining,
		ResetAt:   w.ResetAt,
	}
}

func (l *Limiter) Sweep(ctx context.Context) {
	removed, err := l.store.Sweep(ctx, l.now())
	if err != nil {
		l.logger.Warn("Rate limit sweep failed", "error", err)
		return
	}
	if removed > 0 {
		l.logger.Debug("Expired rate limit windows removed", "count", removed)
	}
}
