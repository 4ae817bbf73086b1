package domain

import "github.com/google/uuid"

// AuthContext - личность вызывающего, разрешенная один раз в middleware
// и передаваемая дальше явно. Хендлеры и use case-ы не ходят за сессией сами.
type AuthContext struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (a *AuthContext) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

func (a *AuthContext) IsSubadmin() bool {
	return a != nil && a.Role == RoleSubadmin
}

// CanModerate - менять состояние модерации может только админ.
// Субадмин имеет read-only доступ к панели.
func (a *AuthContext) CanModerate() bool {
	return a.IsAdmin()
}

// CanReviewListings - доступ к списку всех объявлений в панели.
func (a *AuthContext) CanReviewListings() bool {
	return a.IsAdmin() || a.IsSubadmin()
}
