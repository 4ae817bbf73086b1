package port

import (
	"context"
	"time"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// ModerationEvent - решение модератора по объявлению.
type ModerationEvent struct {
	ListingID   uuid.UUID
	OwnerID     uuid.UUID
	State       domain.ModerationState
	ModeratorID uuid.UUID
	At          time.Time
}

// ModerationReporterPort публикует решения модерации во внешнюю шину.
// Публикация best-effort: ошибка логируется, но не срывает саму модерацию.
type ModerationReporterPort interface {
	ReportModeration(ctx context.Context, event ModerationEvent) error
	Close() error
}
