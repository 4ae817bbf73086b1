package rest

import (
	"net/http"
	"strings"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/port/usecases_port"
)

// AuthMiddleware проверяет Bearer-токен и кладет AuthContext в контекст.
// Роль и бан читаются из хранилища, а не из claims: токен живет сутки,
// а бан должен действовать немедленно.
type AuthMiddleware struct {
	validateUC usecases_port.ValidateTokenUseCasePort
	users      port.UserRepositoryPort
}

func NewAuthMiddleware(validateUC usecases_port.ValidateTokenUseCasePort, users port.UserRepositoryPort) *AuthMiddleware {
	return &AuthMiddleware{
		validateUC: validateUC,
		users:      users,
	}
}

// resolveAuth разбирает заголовок и возвращает контекст вызывающего.
// Пустой заголовок - анонимный запрос (nil, nil).
func (m *AuthMiddleware) resolveAuth(r *http.Request) (*domain.AuthContext, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, nil
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := m.validateUC.Execute(r.Context(), tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTokenInvalid
	}
	if user.Banned {
		return nil, domain.ErrUserBanned
	}

	return user.AuthContext(), nil
}

// Authenticate - обязательная аутентификация: без валидного токена 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, err := m.resolveAuth(r)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		if auth == nil {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		ctx := contextkeys.ContextWithAuth(r.Context(), auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate - для публичных маршрутов, где залогиненный
// пользователь видит больше (свои неопубликованные объявления).
// Некорректный токен здесь тоже отклоняется, а не игнорируется.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, err := m.resolveAuth(r)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		ctx := r.Context()
		if auth != nil {
			ctx = contextkeys.ContextWithAuth(ctx, auth)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
