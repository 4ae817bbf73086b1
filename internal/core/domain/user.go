package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Роли пользователей. Роль назначается при регистрации (USER)
// и повышается только админом через одобрение subadmin-заявки.
const (
	RoleUser     = "USER"
	RoleSubadmin = "SUBADMIN"
	RoleAdmin    = "ADMIN"
)

// User - основная доменная сущность пользователя.
type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	ShowName        string
	FullName        string
	Phone           string
	Role            string
	Banned          bool
	EmailVerified   bool
	SubadminRequest bool
	CreatedAt       time.Time
}

// NewUser создает нового пользователя. Хэширование пароля происходит здесь.
func NewUser(email, password, showName string) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		ShowName:     showName,
		Role:         RoleUser,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword сравнивает предоставленный пароль с хранимым хэшем.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// AuthContext строит контекст вызывающего из сущности пользователя.
func (u *User) AuthContext() *AuthContext {
	return &AuthContext{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
}
