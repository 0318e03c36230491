package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Recovery recovers from panics in downstream handlers, logs them with a
// stack trace and responds with 500 Internal Server Error
func Recovery(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("Panic recovered",
						zap.String("panic", fmt.Sprint(rec)),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", RequestIDFromContext(r.Context())),
						zap.Stack("stack"),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
