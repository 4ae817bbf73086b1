package port

import (
	"context"
	"time"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// Claims - данные, которые мы "зашиваем" в JWT токен.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// TokenServicePort - контракт сервиса токенов.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
