package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// DeleteUserUseCase - удаление аккаунта админом с каскадным удалением
// объявлений пользователя.
type DeleteUserUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, userID uuid.UUID) error
}
