package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
)

// adminTokenHeader заголовок с токеном администратора
const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "требуется токен администратора"

// Auth пропускает только запросы с корректным административным токеном.
// Управление комнатами и существующими бронированиями доступно только
// персоналу гостевого дома.
func Auth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || r.Header.Get(adminTokenHeader) != token {
				handlers.RespondForbidden(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
