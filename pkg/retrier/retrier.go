package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn с паузами между попытками, пока та не вернет
// nil, не истечет MaxElapsedTime или не отменится контекст.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc отделяет временные ошибки от постоянных.
type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc
}
