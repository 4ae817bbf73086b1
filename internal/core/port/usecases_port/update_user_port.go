package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserPatch - что админ может поменять у пользователя. nil - поле не трогаем.
type UserPatch struct {
	// Banned - заблокировать/разблокировать.
	Banned *bool

	// SubadminRequest: true одобряет ожидающую заявку (USER -> SUBADMIN),
	// false отклоняет ее. Одобрение без ожидающей заявки - no-op,
	// как в исходной системе.
	SubadminRequest *bool

	// Role - прямое назначение роли, только USER или SUBADMIN.
	Role *string
}

type UpdateUserUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, userID uuid.UUID, patch UserPatch) (*domain.User, error)
}
