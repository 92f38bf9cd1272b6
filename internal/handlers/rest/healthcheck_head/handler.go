package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler - readiness-проба. При дрейнинге трафика отвечает 503,
// чтобы балансировщик перестал слать запросы до остановки процесса.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
