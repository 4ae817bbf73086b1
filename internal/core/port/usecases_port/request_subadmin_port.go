package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

// RequestSubadminUseCase - пользователь помечает свой аккаунт заявкой
// на роль SUBADMIN. Доступно только обычным USER.
type RequestSubadminUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext) error
}
