package resolver

import "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"

// Registry - статическое отображение kind -> source. Заполняется один раз
// при сборке приложения и дальше только читается, поэтому без блокировок.
type Registry struct {
	sources map[reference.Kind]Source
}

func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[reference.Kind]Source),
	}
}

func (r *Registry) Register(kind reference.Kind, src Source) *Registry {
	r.sources[kind] = src
	return r
}

func (r *Registry) Source(kind reference.Kind) (Source, bool) {
	src, ok := r.sources[kind]
	return src, ok
}
