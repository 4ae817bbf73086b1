package port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort - контракт хранилища пользователей.
// Методы Find* возвращают (nil, nil), если пользователь не найден.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	// Update сохраняет изменяемые поля (роль, бан, заявка на subadmin, профиль).
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
