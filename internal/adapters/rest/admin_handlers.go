package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/port/usecases_port"
)

// AdminHandlers - панель модерации и управление пользователями.
type AdminHandlers struct {
	reviewUC     usecases_port.ReviewListingsUseCase
	moderateUC   usecases_port.ModerateListingUseCase
	listUsersUC  usecases_port.ListUsersUseCase
	updateUserUC usecases_port.UpdateUserUseCase
	deleteUserUC usecases_port.DeleteUserUseCase
}

func NewAdminHandlers(
	reviewUC usecases_port.ReviewListingsUseCase,
	moderateUC usecases_port.ModerateListingUseCase,
	listUsersUC usecases_port.ListUsersUseCase,
	updateUserUC usecases_port.UpdateUserUseCase,
	deleteUserUC usecases_port.DeleteUserUseCase,
) *AdminHandlers {
	return &AdminHandlers{
		reviewUC:     reviewUC,
		moderateUC:   moderateUC,
		listUsersUC:  listUsersUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
	}
}

// ReviewListings обрабатывает GET /api/v1/admin/listings
// Тот же конвейер фильтров, что и в каталоге, но без условия published.
func (h *AdminHandlers) ReviewListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	page := parsePage(query)
	sortKey := parseString(query, "sort")
	filters := parseListingFilters(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "ReviewListings",
		"page":    page,
	})

	auth := contextkeys.AuthFromContext(r.Context())
	result, err := h.reviewUC.Execute(r.Context(), auth, filters, sortKey, page)
	if err != nil {
		handlerLogger.Warn("Review listings rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found listings for review", port.Fields{
		"total_found": result.TotalCount,
	})

	RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
		Data:       newListingResponses(result.Listings),
		Total:      result.TotalCount,
		Page:       result.CurrentPage,
		TotalPages: result.TotalPages,
		PerPage:    result.ItemsPerPage,
	})
}

// ModerateListing обрабатывает PATCH /api/v1/admin/listings/{listingID}
func (h *AdminHandlers) ModerateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ModerateListing"})

	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID format")
		return
	}

	var req ModerationPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode moderation request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state := domain.ModerationStateFromPublished(req.Published)

	auth := contextkeys.AuthFromContext(r.Context())
	listing, err := h.moderateUC.Execute(r.Context(), auth, listingID, state)
	if err != nil {
		logger.Warn("Moderation rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Moderation decision applied", port.Fields{
		"listing_id": listingID.String(),
		"state":      string(state),
	})
	RespondWithJSON(w, http.StatusOK, newListingResponse(*listing))
}

// ListUsers обрабатывает GET /api/v1/admin/users
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListUsers"})

	auth := contextkeys.AuthFromContext(r.Context())
	users, err := h.listUsersUC.Execute(r.Context(), auth)
	if err != nil {
		logger.Warn("List users rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = newUserResponse(u)
	}
	RespondWithJSON(w, http.StatusOK, responses)
}

// UpdateUser обрабатывает PATCH /api/v1/admin/users/{userID}
func (h *AdminHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateUser"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var req UserPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode user patch body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	auth := contextkeys.AuthFromContext(r.Context())
	user, err := h.updateUserUC.Execute(r.Context(), auth, userID, usecases_port.UserPatch{
		Banned:          req.Banned,
		SubadminRequest: req.SubadminRequest,
		Role:            req.Role,
	})
	if err != nil {
		logger.Warn("User patch rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("User updated", port.Fields{"user_id": userID.String()})
	RespondWithJSON(w, http.StatusOK, newUserResponse(*user))
}

// DeleteUser обрабатывает DELETE /api/v1/admin/users/{userID}
func (h *AdminHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteUser"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	auth := contextkeys.AuthFromContext(r.Context())
	if err := h.deleteUserUC.Execute(r.Context(), auth, userID); err != nil {
		logger.Warn("User deletion rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("User deleted", port.Fields{"user_id": userID.String()})
	w.WriteHeader(http.StatusNoContent)
}
