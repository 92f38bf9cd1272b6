package metrics

import "github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
