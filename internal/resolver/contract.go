//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resolver_test
package resolver

import (
	"context"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

// Source - минимальный контракт репозитория referenceable-типа,
// против которого регистрируется резолвер.
//
// GetByKey возвращает (nil, nil), если объекта с таким ключом нет.
// GetByKeys не гарантирует ни порядок, ни полноту результата -
// сопоставление с заглушками делается только по ключам через KeyOf,
// никогда по позиции.
type Source interface {
	KeyOf(v any) reference.Key
	GetByKey(ctx context.Context, key reference.Key) (any, error)
	GetByKeys(ctx context.Context, keys []reference.Key) ([]any, error)
}

type resolverLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
