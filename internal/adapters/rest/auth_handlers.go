package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/port/usecases_port"
)

// Минимальная длина пароля при регистрации.
const minPasswordLength = 8

// AuthHandlers - обработчики регистрации и входа.
type AuthHandlers struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
	validateUC usecases_port.ValidateTokenUseCasePort
}

// NewAuthHandlers - конструктор.
func NewAuthHandlers(registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
	validateUC usecases_port.ValidateTokenUseCasePort) *AuthHandlers {
	return &AuthHandlers{
		registerUC: registerUC,
		loginUC:    loginUC,
		validateUC: validateUC,
	}
}

// Register обрабатывает POST /auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode register request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Простая валидация
	if req.Email == "" || req.Password == "" {
		logger.Warn("Email and password are required", nil)
		WriteJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		logger.Warn("Password is too short", nil)
		WriteJSONError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	// Обогащаем логгер данными запроса (без пароля!)
	handlerLogger := logger.WithFields(port.Fields{
		"email": req.Email,
	})
	handlerLogger.Info("Processing register request", nil)

	user, token, err := h.registerUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			handlerLogger.Warn("Registration failed: email already in use", nil)
			WriteJSONError(w, http.StatusConflict, err.Error())
			return
		}
		handlerLogger.Error("Register use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	handlerLogger.Info("User registered successfully", port.Fields{"user_id": user.ID})

	RespondWithJSON(w, http.StatusCreated, AuthResponse{
		Token:  token,
		UserID: user.ID.String(),
		Role:   user.Role,
	})
}

// Login обрабатывает POST /auth/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		// Ошибка "invalid credentials" - это 401 Unauthorized
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			handlerLogger.Warn("Login failed: invalid credentials", nil)
			WriteJSONError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
			return
		}
		if errors.Is(err, domain.ErrUserBanned) {
			handlerLogger.Warn("Login rejected: account is banned", nil)
			WriteJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}
		handlerLogger.Error("Login use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	handlerLogger.Info("User logged in successfully", port.Fields{"user_id": user.ID})

	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token:  token,
		UserID: user.ID.String(),
		Role:   user.Role,
	})
}

// ValidateToken обрабатывает POST /auth/validate
func (h *AuthHandlers) ValidateToken(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ValidateToken"})

	var req ValidateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		logger.Warn("Failed to decode validate request body", nil)
		WriteJSONError(w, http.StatusBadRequest, "Token is required")
		return
	}

	claims, err := h.validateUC.Execute(r.Context(), req.Token)
	if err != nil {
		logger.Warn("Token validation failed", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusUnauthorized, domain.ErrTokenInvalid.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, ValidateTokenResponse{
		UserID: claims.UserID.String(),
		Email:  claims.Email,
		Role:   claims.Role,
	})
}
