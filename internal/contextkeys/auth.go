package contextkeys

import (
	"context"

	"classifieds-service/internal/core/domain"
)

type authKeyType struct{}

var authKey = authKeyType{}

// ContextWithAuth помещает контекст вызывающего в context.Context.
// Кладется один раз в auth middleware; хендлеры больше никуда
// за сессией не ходят.
func ContextWithAuth(ctx context.Context, auth *domain.AuthContext) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// AuthFromContext извлекает контекст вызывающего.
// nil означает анонимный запрос - это легальное состояние
// для публичных маршрутов.
func AuthFromContext(ctx context.Context) *domain.AuthContext {
	if auth, ok := ctx.Value(authKey).(*domain.AuthContext); ok {
		return auth
	}
	return nil
}
