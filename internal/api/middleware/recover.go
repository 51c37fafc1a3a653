package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
)

// Recover превращает панику обработчика в 500 с записью в лог
func Recover(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					requestID, _ := GetRequestID(r.Context())
					logger.Error("%s %s - Panic recovered: %v, request_id=%s\n%s",
						r.Method, r.URL.Path, rec, requestID, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
