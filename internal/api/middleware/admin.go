package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
)

// HeaderAdminID заголовок с идентификатором администратора
const HeaderAdminID = "X-Admin-ID"

type adminIDKey struct{}

// AdminScope требует X-Admin-ID; все административные запросы ограничены этим администратором
// Аутентификация выполняется до сервиса (gateway)
func AdminScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := strings.TrimSpace(r.Header.Get(HeaderAdminID))
		if adminID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "X-Admin-ID header is required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAdminID(r.Context(), adminID)))
	})
}

// WithAdminID кладет идентификатор администратора в контекст
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey{}, adminID)
}

// AdminIDFromContext идентификатор администратора из контекста
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey{}).(string)
	return id, ok && id != ""
}
