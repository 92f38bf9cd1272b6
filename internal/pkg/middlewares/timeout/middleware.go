package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает время обработки запроса: контекст запроса
// (ongoingCtx из BaseContext) получает дедлайн, дальше его уважают
// репозитории и продюсер.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
