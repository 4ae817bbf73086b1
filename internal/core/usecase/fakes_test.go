package usecase

import (
	"context"
	"time"

	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"

	"github.com/google/uuid"
)

// In-memory реализации портов для тестов use case-ов.

type fakeListingRepo struct {
	byID map[uuid.UUID]*domain.Listing

	page       []domain.Listing
	totalCount int64
	lastQuery  *port.ListingQuery

	created       []*domain.Listing
	updated       []*domain.Listing
	deleted       []uuid.UUID
	deletedOwners []uuid.UUID

	err error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{byID: make(map[uuid.UUID]*domain.Listing)}
}

func (r *fakeListingRepo) put(l *domain.Listing) {
	r.byID[l.ID] = l
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, listing)
	r.byID[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *domain.Listing) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, listing)
	r.byID[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

func (r *fakeListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if r.err != nil {
		return nil, r.err
	}
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *l
	return &clone, nil
}

func (r *fakeListingRepo) FindWithFilters(ctx context.Context, q port.ListingQuery) (*domain.PaginatedListings, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastQuery = &q
	return &domain.PaginatedListings{
		Listings:   r.page,
		TotalCount: r.totalCount,
	}, nil
}

func (r *fakeListingRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []domain.Listing
	for _, l := range r.byID {
		if l.OwnerID == ownerID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (r *fakeListingRepo) SetModerationState(ctx context.Context, id uuid.UUID, state domain.ModerationState) error {
	if r.err != nil {
		return r.err
	}
	l, ok := r.byID[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.Moderation = state
	return nil
}

func (r *fakeListingRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.deletedOwners = append(r.deletedOwners, ownerID)
	for id, l := range r.byID {
		if l.OwnerID == ownerID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	byID    map[uuid.UUID]*domain.User
	updated []*domain.User
	deleted []uuid.UUID
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) put(u *domain.User) {
	r.byID[u.ID] = u
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []domain.User
	for _, u := range r.byID {
		result = append(result, *u)
	}
	return result, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, user)
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

type fakeModerationReporter struct {
	events []port.ModerationEvent
	err    error
}

func (r *fakeModerationReporter) ReportModeration(ctx context.Context, event port.ModerationEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeModerationReporter) Close() error { return nil }

type fakeTokenService struct {
	err error
}

func (s *fakeTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + user.ID.String(), nil
}

func (s *fakeTokenService) ValidateToken(ctx context.Context, tokenString string) (*port.Claims, error) {
	return nil, domain.ErrTokenInvalid
}
