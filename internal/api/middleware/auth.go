package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с идентификатором пользователя,
	// проставляется API-шлюзом после проверки сессии
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "отсутствует идентификатор пользователя"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth извлекает идентификатор пользователя из заголовка и кладет его
// в контекст запроса. Запросы без заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
