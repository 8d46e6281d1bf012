package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/RTC-AppointmentService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

const msgAdminTokenRequired = "admin token required"

// AdminAuth проверяет заголовок X-Admin-Token для административных маршрутов
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgAdminTokenRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
