package resolver

import "errors"

var (
	// ErrUnsupportedReferenceKind - для вида ссылки не зарегистрирован source.
	// Это пробел в конфигурации реестра, а не отсутствие данных,
	// поэтому резолв прерывается целиком, без частичного результата.
	ErrUnsupportedReferenceKind = errors.New("unsupported reference kind")
)
