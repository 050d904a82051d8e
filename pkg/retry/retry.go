package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
)

type Config struct {
	// MaxAttempts counts the first call, so 3 means at most two retries.
	MaxAttempts         uint64
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64

	// Timer replaces the wall-clock timer between attempts. Nil uses real time.
	Timer backoff.Timer
}

// DefaultConfig waits 1s before the second attempt and 2s before the third.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     3,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2,
	}
}

// Permanent marks err as not worth retrying. Do returns the unwrapped err.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.RandomizationFactor = cfg.RandomizationFactor
	bo.MaxElapsedTime = 0
	bo.Reset()

	var policy backoff.BackOff = bo
	if cfg.MaxAttempts > 0 {
		policy = backoff.WithMaxRetries(bo, cfg.MaxAttempts-1)
	}
	retryableWithContext := backoff.WithContext(policy, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotifyWithTimer(operation, retryableWithContext, notify, cfg.Timer)
}
