package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/port/usecases_port"
)

// UpdateUserUseCase - админские правки аккаунта: бан, решение по заявке
// на SUBADMIN и прямое назначение роли. Админ не может забанить себя
// и сменить собственную роль.
type UpdateUserUseCase struct {
	users port.UserRepositoryPort
}

func NewUpdateUserUseCase(users port.UserRepositoryPort) *UpdateUserUseCase {
	return &UpdateUserUseCase{users: users}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, auth *domain.AuthContext, userID uuid.UUID, patch usecases_port.UserPatch) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateUser",
		"user_id":  userID.String(),
	})

	if !auth.IsAdmin() {
		ucLogger.Warn("Caller is not an admin", nil)
		return nil, domain.ErrForbidden
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if patch.Banned != nil {
		if userID == auth.UserID {
			return nil, fmt.Errorf("%w: admin cannot ban own account", domain.ErrValidation)
		}
		user.Banned = *patch.Banned
	}

	if patch.SubadminRequest != nil {
		if *patch.SubadminRequest {
			// Одобрение действует только при ожидающей заявке.
			if user.SubadminRequest {
				user.Role = domain.RoleSubadmin
				user.SubadminRequest = false
			}
		} else {
			user.SubadminRequest = false
		}
	}

	if patch.Role != nil {
		if userID == auth.UserID {
			return nil, fmt.Errorf("%w: admin cannot change own role", domain.ErrValidation)
		}
		switch *patch.Role {
		case domain.RoleUser, domain.RoleSubadmin:
			user.Role = *patch.Role
		default:
			return nil, fmt.Errorf("%w: role %q cannot be assigned", domain.ErrValidation, *patch.Role)
		}
	}

	if err := uc.users.Update(ctx, user); err != nil {
		ucLogger.Error("Failed to persist user changes", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"role":   user.Role,
		"banned": user.Banned,
	})
	return user, nil
}
