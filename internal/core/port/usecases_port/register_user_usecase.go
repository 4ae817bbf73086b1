package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
