package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает на HEAD /healthcheck. После начала остановки сервис
// возвращает 503, чтобы балансировщик перестал направлять на него трафик
// до завершения активных запросов.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
