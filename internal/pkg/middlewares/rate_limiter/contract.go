package rate_limiter

import "github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"

// Limiter - rate.Limiter из golang.org/x/time/rate подходит как есть
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
