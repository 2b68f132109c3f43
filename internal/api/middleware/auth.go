package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
)

type contextKey string

const businessIDKey contextKey = "businessID"

// HeaderBusinessID заголовок аутентификации владельца бизнеса
// Сервис работает за API gateway, который проставляет заголовок
// после проверки токена
const HeaderBusinessID = "X-Business-ID"

// Auth проверяет наличие заголовка X-Business-ID и кладет ID бизнеса
// в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderBusinessID)
		if header == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderBusinessID+" header")
			return
		}

		businessID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || businessID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+HeaderBusinessID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), businessIDKey, businessID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetBusinessID достает ID бизнеса из контекста запроса
func GetBusinessID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(businessIDKey).(int64)
	return id, ok
}
