package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

// Middleware пишет access-лог и метрики по каждому запросу.
// В лейбл route идет шаблон mux-роута ("/order/{id}"), а не сырой
// путь - иначе кардинальность метрик растет с каждым новым ID.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)

			routeTemplate := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					routeTemplate = template
				}
			}

			HTTPRequestDuration.WithLabelValues(r.Method, routeTemplate, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, routeTemplate, statusCode).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", routeTemplate),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			).Info("HTTP request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
