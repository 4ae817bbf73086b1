package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// RequestSubadminUseCase - пользователь подает заявку на роль SUBADMIN.
// Заявку рассматривает админ через UpdateUser.
type RequestSubadminUseCase struct {
	users port.UserRepositoryPort
}

func NewRequestSubadminUseCase(users port.UserRepositoryPort) *RequestSubadminUseCase {
	return &RequestSubadminUseCase{users: users}
}

func (uc *RequestSubadminUseCase) Execute(ctx context.Context, auth *domain.AuthContext) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RequestSubadmin",
		"user_id":  auth.UserID.String(),
	})

	// Заявка имеет смысл только для обычного пользователя.
	if auth.Role != domain.RoleUser {
		ucLogger.Warn("Caller already has an elevated role", nil)
		return domain.ErrForbidden
	}

	user, err := uc.users.FindByID(ctx, auth.UserID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.SubadminRequest {
		ucLogger.Info("Request is already pending", nil)
		return nil
	}

	user.SubadminRequest = true
	if err := uc.users.Update(ctx, user); err != nil {
		ucLogger.Error("Failed to persist the request", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
