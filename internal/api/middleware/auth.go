package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
)

// adminTokenHeader заголовок с административным токеном
const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет административный токен в заголовке запроса.
// Сравнение константное по времени, чтобы не допустить timing-атаку на токен.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "требуется административный токен")
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, "неверный административный токен")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
