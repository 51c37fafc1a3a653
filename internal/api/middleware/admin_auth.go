package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

const (
	msgMissingAdminToken = "Se requiere el encabezado X-Admin-Token"
	msgInvalidAdminToken = "Token de administrador inválido"
)

// AdminAuth пропускает только запросы с верным X-Admin-Token
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingAdminToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				logger.Warn("%s %s - Invalid admin token, remote=%s", r.Method, r.URL.Path, clientKey(r))
				handlers.RespondForbidden(w, msgInvalidAdminToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
