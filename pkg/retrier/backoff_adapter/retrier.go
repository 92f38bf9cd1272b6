// Package backoff_adapter реализует retrier.Retrier поверх
// экспоненциального бэкоффа из cenkalti/backoff.
package backoff_adapter

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/retrier"
)

type Retrier struct {
	cfg retrier.Config
}

func New(cfg retrier.Config) *Retrier {
	return &Retrier{cfg: cfg}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.cfg.InitialInterval),
		backoff.WithMaxInterval(r.cfg.MaxInterval),
		backoff.WithMaxElapsedTime(r.cfg.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.cfg.Randomization),
		backoff.WithMultiplier(r.cfg.Multiplier),
	)

	attempt := func() error {
		err := fn(ctx)
		if err != nil && r.cfg.ShouldRetry != nil && !r.cfg.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(attempt, backoff.WithContext(policy, ctx))
}
