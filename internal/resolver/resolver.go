package resolver

import (
	"context"
	"fmt"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

// Resolver заменяет заглушки в reference-полях полными объектами.
// Для коллекции на каждый вид ссылки уходит ровно один батч-запрос,
// сколько бы сущностей и полей его ни ждали.
type Resolver struct {
	registry *Registry
	log      resolverLogger
}

func New(log resolverLogger, registry *Registry) *Resolver {
	return &Resolver{
		registry: registry,
		log:      log.With(),
	}
}

// Diagnostic - нефатальный итог резолва одного поля: ключ в целевом
// репозитории не найден, поле обнулено.
type Diagnostic struct {
	Field string
	Kind  reference.Kind
	Key   reference.Key
}

// Resolve мутирует targets на месте: каждое поле-заглушка либо заменяется
// полным объектом, либо обнуляется с диагностикой. Незаглушки не трогаются.
// Ошибка возвращается только при незарегистрированном виде ссылки
// или отказе хранилища.
func (r *Resolver) Resolve(ctx context.Context, targets ...reference.Referencing) ([]Diagnostic, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	grouped := make(map[reference.Kind][]reference.Field)
	for _, target := range targets {
		if target == nil {
			continue
		}
		for _, field := range target.ReferenceFields() {
			if field.Key == "" {
				continue
			}
			grouped[field.Kind] = append(grouped[field.Kind], field)
		}
	}
	if len(grouped) == 0 {
		return nil, nil
	}

	// реестр проверяется целиком до первого запроса в хранилище
	sources := make(map[reference.Kind]Source, len(grouped))
	for kind := range grouped {
		src, ok := r.registry.Source(kind)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedReferenceKind, kind)
		}
		sources[kind] = src
	}

	if len(targets) == 1 {
		return r.resolveSingle(ctx, grouped, sources)
	}
	return r.resolveBatched(ctx, grouped, sources)
}

// ResolveAll - хелпер для однородных коллекций конкретного типа.
func ResolveAll[T reference.Referencing](ctx context.Context, r *Resolver, items []T) ([]Diagnostic, error) {
	targets := make([]reference.Referencing, len(items))
	for i := range items {
		targets[i] = items[i]
	}
	return r.Resolve(ctx, targets...)
}

func (r *Resolver) resolveSingle(
	ctx context.Context,
	grouped map[reference.Kind][]reference.Field,
	sources map[reference.Kind]Source,
) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	for kind, fields := range grouped {
		src := sources[kind]
		for _, field := range fields {
			resolved, err := src.GetByKey(ctx, field.Key)
			if err != nil {
				return diagnostics, fmt.Errorf("resolve %s reference: %w", kind, err)
			}
			if resolved == nil {
				diagnostics = append(diagnostics, r.unresolved(field))
				continue
			}
			field.Set(resolved)
		}
	}
	return diagnostics, nil
}

func (r *Resolver) resolveBatched(
	ctx context.Context,
	grouped map[reference.Kind][]reference.Field,
	sources map[reference.Kind]Source,
) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	for kind, fields := range grouped {
		src := sources[kind]

		// дедупликация ключей по всей коллекции
		seen := make(map[reference.Key]struct{}, len(fields))
		keys := make([]reference.Key, 0, len(fields))
		for _, field := range fields {
			if _, ok := seen[field.Key]; ok {
				continue
			}
			seen[field.Key] = struct{}{}
			keys = append(keys, field.Key)
		}

		resolvedList, err := src.GetByKeys(ctx, keys)
		if err != nil {
			return diagnostics, fmt.Errorf("resolve %s references: %w", kind, err)
		}

		// раздача результатов обратно - только по равенству ключей,
		// батч не обязан сохранять ни порядок, ни кардинальность запроса
		byKey := make(map[reference.Key]any, len(resolvedList))
		for _, resolved := range resolvedList {
			if key := src.KeyOf(resolved); key != "" {
				byKey[key] = resolved
			}
		}

		for _, field := range fields {
			resolved, ok := byKey[field.Key]
			if !ok {
				diagnostics = append(diagnostics, r.unresolved(field))
				continue
			}
			field.Set(resolved)
		}
	}
	return diagnostics, nil
}

func (r *Resolver) unresolved(field reference.Field) Diagnostic {
	field.Set(nil)
	r.log.Warn("unresolved reference",
		logger.NewField("field", field.Name),
		logger.NewField("kind", field.Kind.String()),
		logger.NewField("key", field.Key.String()),
	)
	return Diagnostic{
		Field: field.Name,
		Kind:  field.Kind,
		Key:   field.Key,
	}
}
