package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// DeleteUserUseCase - удаление аккаунта админом. Объявления пользователя
// удаляются каскадом, чтобы каталог не ссылался на несуществующего владельца.
type DeleteUserUseCase struct {
	users    port.UserRepositoryPort
	listings port.ListingRepositoryPort
}

func NewDeleteUserUseCase(users port.UserRepositoryPort, listings port.ListingRepositoryPort) *DeleteUserUseCase {
	return &DeleteUserUseCase{users: users, listings: listings}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, auth *domain.AuthContext, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteUser",
		"user_id":  userID.String(),
	})

	if !auth.IsAdmin() {
		ucLogger.Warn("Caller is not an admin", nil)
		return domain.ErrForbidden
	}
	if userID == auth.UserID {
		return fmt.Errorf("%w: admin cannot delete own account", domain.ErrValidation)
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if err := uc.listings.DeleteByOwner(ctx, userID); err != nil {
		ucLogger.Error("Failed to delete user listings", err, nil)
		return err
	}
	if err := uc.users.Delete(ctx, userID); err != nil {
		ucLogger.Error("Failed to delete user account", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
