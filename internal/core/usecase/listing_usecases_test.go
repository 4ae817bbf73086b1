package usecase

import (
	"context"
	"errors"
	"testing"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingListing(ownerID uuid.UUID) *domain.Listing {
	return &domain.Listing{
		ID:         uuid.New(),
		Title:      "Two-room apartment",
		FileType:   domain.FileTypeBuy,
		Price:      domain.NewSalePrice(150000),
		Category:   domain.CategoryApartment,
		OwnerID:    ownerID,
		Moderation: domain.ModerationPending,
	}
}

func TestGetListingDetails_VisibilityGate(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakeListingRepo()
	listing := pendingListing(ownerID)
	repo.put(listing)

	uc := NewGetListingDetailsUseCase(repo)
	ctx := context.Background()

	t.Run("anonymous caller gets not found for pending listing", func(t *testing.T) {
		_, err := uc.Execute(ctx, nil, listing.ID)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("stranger gets the same not found", func(t *testing.T) {
		stranger := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleUser}
		_, err := uc.Execute(ctx, stranger, listing.ID)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("owner sees own pending listing", func(t *testing.T) {
		owner := &domain.AuthContext{UserID: ownerID, Role: domain.RoleUser}
		got, err := uc.Execute(ctx, owner, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, listing.ID, got.ID)
	})

	t.Run("subadmin sees pending listing", func(t *testing.T) {
		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}
		_, err := uc.Execute(ctx, subadmin, listing.ID)
		assert.NoError(t, err)
	})

	t.Run("missing id gives identical not found", func(t *testing.T) {
		admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}
		_, err := uc.Execute(ctx, admin, uuid.New())
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}

func TestBrowseListings(t *testing.T) {
	repo := newFakeListingRepo()
	repo.totalCount = 31

	uc := NewBrowseListingsUseCase(repo)

	result, err := uc.Execute(context.Background(), domain.ListingFilters{FileType: "rent"}, "price-low", 0)
	require.NoError(t, err)

	// страница нормализуется, метаданные считаются от count
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, domain.ItemsPerPage, result.ItemsPerPage)

	require.NotNil(t, repo.lastQuery)
	assert.True(t, repo.lastQuery.PublicOnly)
	assert.Equal(t, domain.SortByRentPrice, repo.lastQuery.SortBy)
	assert.False(t, repo.lastQuery.SortDesc)
	assert.Equal(t, 0, repo.lastQuery.Offset)
	assert.Equal(t, domain.ItemsPerPage, repo.lastQuery.Limit)
}

func TestReviewListings(t *testing.T) {
	repo := newFakeListingRepo()
	uc := NewReviewListingsUseCase(repo)
	ctx := context.Background()

	t.Run("regular user is rejected", func(t *testing.T) {
		user := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleUser}
		_, err := uc.Execute(ctx, user, domain.ListingFilters{}, "newest", 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("subadmin sees unmoderated listings too", func(t *testing.T) {
		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}
		_, err := uc.Execute(ctx, subadmin, domain.ListingFilters{}, "newest", 1)
		require.NoError(t, err)
		assert.False(t, repo.lastQuery.PublicOnly)
	})
}

func TestCreateListing(t *testing.T) {
	ownerID := uuid.New()
	owner := &domain.AuthContext{UserID: ownerID, Role: domain.RoleUser}
	ctx := context.Background()

	t.Run("new listing starts pending and belongs to the caller", func(t *testing.T) {
		repo := newFakeListingRepo()
		uc := NewCreateListingUseCase(repo)

		created, err := uc.Execute(ctx, owner, domain.Listing{
			Title:    "House by the lake",
			FileType: domain.FileTypeBuy,
			Price:    domain.NewSalePrice(420000),
			Category: domain.CategoryVilla,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ModerationPending, created.Moderation)
		assert.Equal(t, ownerID, created.OwnerID)
		assert.NotEqual(t, uuid.Nil, created.ID)
		require.Len(t, repo.created, 1)
	})

	t.Run("price shape must match file type", func(t *testing.T) {
		repo := newFakeListingRepo()
		uc := NewCreateListingUseCase(repo)

		_, err := uc.Execute(ctx, owner, domain.Listing{
			Title:    "Rented flat with sale price",
			FileType: domain.FileTypeRent,
			Price:    domain.NewSalePrice(100000),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, repo.created)
	})

	t.Run("image limit is enforced", func(t *testing.T) {
		repo := newFakeListingRepo()
		uc := NewCreateListingUseCase(repo)

		images := make([]string, domain.MaxImages+1)
		_, err := uc.Execute(ctx, owner, domain.Listing{
			Title:    "Gallery overload",
			FileType: domain.FileTypeBuy,
			Price:    domain.NewSalePrice(1),
			Images:   images,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateListing(t *testing.T) {
	ownerID := uuid.New()
	owner := &domain.AuthContext{UserID: ownerID, Role: domain.RoleUser}
	ctx := context.Background()

	newDraft := func() domain.Listing {
		return domain.Listing{
			Title:    "Updated title",
			FileType: domain.FileTypeRent,
			Price:    domain.NewRentTerms(700, 25000),
			Category: domain.CategoryApartment,
		}
	}

	t.Run("owner updates content, moderation survives", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		existing.Moderation = domain.ModerationPublished
		repo.put(existing)

		uc := NewUpdateListingUseCase(repo)
		updated, err := uc.Execute(ctx, owner, existing.ID, newDraft())
		require.NoError(t, err)

		assert.Equal(t, "Updated title", updated.Title)
		assert.Equal(t, domain.ModerationPublished, updated.Moderation)
		assert.Equal(t, ownerID, updated.OwnerID)
	})

	t.Run("admin is not the owner and may not edit", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)

		uc := NewUpdateListingUseCase(repo)
		admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}
		_, err := uc.Execute(ctx, admin, existing.ID, newDraft())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing listing", func(t *testing.T) {
		repo := newFakeListingRepo()
		uc := NewUpdateListingUseCase(repo)
		_, err := uc.Execute(ctx, owner, uuid.New(), newDraft())
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}

func TestDeleteListing(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("owner deletes own listing", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)

		uc := NewDeleteListingUseCase(repo)
		owner := &domain.AuthContext{UserID: ownerID, Role: domain.RoleUser}
		require.NoError(t, uc.Execute(ctx, owner, existing.ID))
		assert.Equal(t, []uuid.UUID{existing.ID}, repo.deleted)
	})

	t.Run("admin deletes someone else's listing", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)

		uc := NewDeleteListingUseCase(repo)
		admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}
		assert.NoError(t, uc.Execute(ctx, admin, existing.ID))
	})

	t.Run("subadmin may not delete", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)

		uc := NewDeleteListingUseCase(repo)
		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}
		assert.ErrorIs(t, uc.Execute(ctx, subadmin, existing.ID), domain.ErrForbidden)
	})
}

func TestModerateListing(t *testing.T) {
	ownerID := uuid.New()
	admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}
	ctx := context.Background()

	t.Run("admin publishes and event is reported", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)
		reporter := &fakeModerationReporter{}

		uc := NewModerateListingUseCase(repo, reporter)
		updated, err := uc.Execute(ctx, admin, existing.ID, domain.ModerationPublished)
		require.NoError(t, err)

		assert.Equal(t, domain.ModerationPublished, updated.Moderation)
		assert.Equal(t, domain.ModerationPublished, repo.byID[existing.ID].Moderation)

		require.Len(t, reporter.events, 1)
		assert.Equal(t, existing.ID, reporter.events[0].ListingID)
		assert.Equal(t, ownerID, reporter.events[0].OwnerID)
		assert.Equal(t, admin.UserID, reporter.events[0].ModeratorID)
	})

	t.Run("broker failure does not roll back the decision", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)
		reporter := &fakeModerationReporter{err: errors.New("amqp down")}

		uc := NewModerateListingUseCase(repo, reporter)
		updated, err := uc.Execute(ctx, admin, existing.ID, domain.ModerationDenied)
		require.NoError(t, err)
		assert.Equal(t, domain.ModerationDenied, updated.Moderation)
	})

	t.Run("subadmin may not moderate", func(t *testing.T) {
		repo := newFakeListingRepo()
		existing := pendingListing(ownerID)
		repo.put(existing)

		uc := NewModerateListingUseCase(repo, &fakeModerationReporter{})
		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}
		_, err := uc.Execute(ctx, subadmin, existing.ID, domain.ModerationPublished)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown state is a validation error", func(t *testing.T) {
		repo := newFakeListingRepo()
		uc := NewModerateListingUseCase(repo, &fakeModerationReporter{})
		_, err := uc.Execute(ctx, admin, uuid.New(), domain.ModerationState("approved"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing listing", func(t *testing.T) {
		repo := newFakeListingRepo()
		uc := NewModerateListingUseCase(repo, &fakeModerationReporter{})
		_, err := uc.Execute(ctx, admin, uuid.New(), domain.ModerationPublished)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}
