package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/contracts"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/port/usecases_port"
)

const listingPayloadSchema = "ListingPayloadRequest"
const listingPayloadVersion = "1.0.0"

type ListingHandlers struct {
	browseUC          usecases_port.BrowseListingsUseCase
	detailsUC         usecases_port.GetListingDetailsUseCase
	createUC          usecases_port.CreateListingUseCase
	updateUC          usecases_port.UpdateListingUseCase
	deleteUC          usecases_port.DeleteListingUseCase
	ownListingsUC     usecases_port.GetOwnListingsUseCase
	subadminRequestUC usecases_port.RequestSubadminUseCase
}

func NewListingHandlers(
	browseUC usecases_port.BrowseListingsUseCase,
	detailsUC usecases_port.GetListingDetailsUseCase,
	createUC usecases_port.CreateListingUseCase,
	updateUC usecases_port.UpdateListingUseCase,
	deleteUC usecases_port.DeleteListingUseCase,
	ownListingsUC usecases_port.GetOwnListingsUseCase,
	subadminRequestUC usecases_port.RequestSubadminUseCase,
) *ListingHandlers {
	return &ListingHandlers{
		browseUC:          browseUC,
		detailsUC:         detailsUC,
		createUC:          createUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		ownListingsUC:     ownListingsUC,
		subadminRequestUC: subadminRequestUC,
	}
}

// parseListingFilters собирает фильтры каталога из query-параметров.
// Некорректные числовые значения опускаются, а не отклоняются.
func parseListingFilters(query url.Values) domain.ListingFilters {
	return domain.ListingFilters{
		FileType:       parseString(query, "fileType"),
		Category:       parseString(query, "category"),
		AreaMeterStart: parseFloat(query, "areaMeterStart"),
		AreaMeterEnd:   parseFloat(query, "areaMeterEnd"),
		MinPrice:       parseFloat(query, "minPrice"),
		MaxPrice:       parseFloat(query, "maxPrice"),
		MinRent:        parseFloat(query, "minRent"),
		MaxRent:        parseFloat(query, "maxRent"),
		Search:         parseString(query, "search"),
	}
}

// BrowseListings обрабатывает GET /api/v1/listings
func (h *ListingHandlers) BrowseListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	page := parsePage(query)
	sortKey := parseString(query, "sort")
	filters := parseListingFilters(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "BrowseListings",
		"page":    page,
		"sort":    sortKey,
	})
	handlerLogger.Debug("Processing request to browse listings", nil)

	result, err := h.browseUC.Execute(r.Context(), filters, sortKey, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found listings", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Listings),
	})

	RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
		Data:       newListingResponses(result.Listings),
		Total:      result.TotalCount,
		Page:       result.CurrentPage,
		TotalPages: result.TotalPages,
		PerPage:    result.ItemsPerPage,
	})
}

// GetListingDetails обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingHandlers) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingIDStr := chi.URLParam(r, "listingID")
	listingID, err := uuid.Parse(listingIDStr)
	if err != nil {
		logger.Warn("Invalid listing ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetListingDetails",
		"listing_id": listingIDStr,
	})

	auth := contextkeys.AuthFromContext(r.Context())
	listing, err := h.detailsUC.Execute(r.Context(), auth, listingID)
	if err != nil {
		handlerLogger.Warn("Listing is not available", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found listing details", nil)
	RespondWithJSON(w, http.StatusOK, newListingResponse(*listing))
}

// decodeListingPayload валидирует тело по JSON-схеме и разбирает его в DTO.
func decodeListingPayload(r *http.Request) (ListingPayload, error) {
	var payload ListingPayload

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return payload, err
	}
	if err := contracts.ValidateRequest(listingPayloadSchema, listingPayloadVersion, body); err != nil {
		return payload, err
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// CreateListing обрабатывает POST /api/v1/listings
func (h *ListingHandlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})

	payload, err := decodeListingPayload(r)
	if err != nil {
		logger.Warn("Listing payload rejected", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	auth := contextkeys.AuthFromContext(r.Context())
	listing, err := h.createUC.Execute(r.Context(), auth, payload.toDomain())
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	logger.Info("Listing created", port.Fields{"listing_id": listing.ID.String()})
	RespondWithJSON(w, http.StatusCreated, newListingResponse(*listing))
}

// UpdateListing обрабатывает PUT /api/v1/listings/{listingID}
func (h *ListingHandlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListing"})

	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID format")
		return
	}

	payload, err := decodeListingPayload(r)
	if err != nil {
		logger.Warn("Listing payload rejected", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	auth := contextkeys.AuthFromContext(r.Context())
	listing, err := h.updateUC.Execute(r.Context(), auth, listingID, payload.toDomain())
	if err != nil {
		logger.Warn("Listing update rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Listing updated", port.Fields{"listing_id": listing.ID.String()})
	RespondWithJSON(w, http.StatusOK, newListingResponse(*listing))
}

// DeleteListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingHandlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})

	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID format")
		return
	}

	auth := contextkeys.AuthFromContext(r.Context())
	if err := h.deleteUC.Execute(r.Context(), auth, listingID); err != nil {
		logger.Warn("Listing deletion rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Listing deleted", port.Fields{"listing_id": listingID.String()})
	w.WriteHeader(http.StatusNoContent)
}

// GetOwnListings обрабатывает GET /api/v1/my/listings
func (h *ListingHandlers) GetOwnListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetOwnListings"})

	auth := contextkeys.AuthFromContext(r.Context())
	listings, err := h.ownListingsUC.Execute(r.Context(), auth)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, newListingResponses(listings))
}

// RequestSubadmin обрабатывает POST /api/v1/my/subadmin-request
func (h *ListingHandlers) RequestSubadmin(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RequestSubadmin"})

	auth := contextkeys.AuthFromContext(r.Context())
	if err := h.subadminRequestUC.Execute(r.Context(), auth); err != nil {
		logger.Warn("Subadmin request rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Subadmin request accepted", nil)
	w.WriteHeader(http.StatusNoContent)
}
