package rest

import (
	"encoding/json"
	"net/http"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/port/usecases_port"
)

// SettingsHandlers - настройки витрины (слайдеры главной страницы).
type SettingsHandlers struct {
	getUC    usecases_port.GetSettingsUseCase
	updateUC usecases_port.UpdateSettingsUseCase
}

func NewSettingsHandlers(getUC usecases_port.GetSettingsUseCase, updateUC usecases_port.UpdateSettingsUseCase) *SettingsHandlers {
	return &SettingsHandlers{
		getUC:    getUC,
		updateUC: updateUC,
	}
}

// GetSettings обрабатывает GET /api/v1/settings (публичный)
func (h *SettingsHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSettings"})

	settings, err := h.getUC.Execute(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, newSettingsResponse(*settings))
}

// UpdateSettings обрабатывает PUT /api/v1/admin/settings
func (h *SettingsHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateSettings"})

	var req SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode settings body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	auth := contextkeys.AuthFromContext(r.Context())
	settings, err := h.updateUC.Execute(r.Context(), auth, req.toDomain())
	if err != nil {
		logger.Warn("Settings update rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Settings updated", nil)
	RespondWithJSON(w, http.StatusOK, newSettingsResponse(*settings))
}
