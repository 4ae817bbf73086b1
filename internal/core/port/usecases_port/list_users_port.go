package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

type ListUsersUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext) ([]domain.User, error)
}
