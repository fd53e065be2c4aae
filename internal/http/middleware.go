package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dropDatabas3/teamster/internal/domain"
	"github.com/dropDatabas3/teamster/internal/observability/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithLogging loguea cada request con método, ruta, status y latencia.
func WithLogging(next http.Handler) http.Handler {
	log := logger.Named("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}

// WithRecovery convierte un panic en INTERNAL_ERROR en vez de tirar la
// conexión: ninguna condición de negocio esperada llega como panic.
func WithRecovery(next http.Handler) http.Handler {
	log := logger.Named("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec))
				WriteDomainError(w, domain.NewError(domain.CodeInternalError, "unexpected failure"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
