package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// ListUsersUseCase - список аккаунтов для админской панели.
type ListUsersUseCase struct {
	users port.UserRepositoryPort
}

func NewListUsersUseCase(users port.UserRepositoryPort) *ListUsersUseCase {
	return &ListUsersUseCase{users: users}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, auth *domain.AuthContext) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListUsers",
	})

	if !auth.IsAdmin() {
		ucLogger.Warn("Caller is not an admin", nil)
		return nil, domain.ErrForbidden
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"users_count": len(users),
	})
	return users, nil
}
