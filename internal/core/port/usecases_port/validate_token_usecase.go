package usecases_port

import (
	"context"

	"classifieds-service/internal/core/port"
)

type ValidateTokenUseCasePort interface {
	Execute(ctx context.Context, token string) (*port.Claims, error)
}
