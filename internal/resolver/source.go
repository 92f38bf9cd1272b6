package resolver

import (
	"context"
	"fmt"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
)

// TypedSource адаптирует типизированный репозиторий под Source.
// absent говорит, какие ошибки репозитория означают "не найдено" -
// они превращаются в (nil, nil), остальные пробрасываются как есть.
type TypedSource[T any] struct {
	key    func(*T) reference.Key
	byKey  func(ctx context.Context, key reference.Key) (*T, error)
	byKeys func(ctx context.Context, keys []reference.Key) ([]*T, error)
	absent func(error) bool
}

func NewTypedSource[T any](
	key func(*T) reference.Key,
	byKey func(ctx context.Context, key reference.Key) (*T, error),
	byKeys func(ctx context.Context, keys []reference.Key) ([]*T, error),
	absent func(error) bool,
) *TypedSource[T] {
	return &TypedSource[T]{
		key:    key,
		byKey:  byKey,
		byKeys: byKeys,
		absent: absent,
	}
}

func (s *TypedSource[T]) KeyOf(v any) reference.Key {
	typed, ok := v.(*T)
	if !ok || typed == nil {
		return ""
	}
	return s.key(typed)
}

func (s *TypedSource[T]) GetByKey(ctx context.Context, key reference.Key) (any, error) {
	typed, err := s.byKey(ctx, key)
	if err != nil {
		if s.absent != nil && s.absent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("source get by key %q: %w", key, err)
	}
	if typed == nil {
		return nil, nil
	}
	return typed, nil
}

func (s *TypedSource[T]) GetByKeys(ctx context.Context, keys []reference.Key) ([]any, error) {
	typedList, err := s.byKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("source get by keys: %w", err)
	}

	result := make([]any, 0, len(typedList))
	for _, typed := range typedList {
		if typed == nil {
			continue
		}
		result = append(result, typed)
	}
	return result, nil
}
