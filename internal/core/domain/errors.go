package domain

import "errors"

// Переменные-ошибки, которые могут быть возвращены из Use Cases.
// REST-слой мапит их на HTTP-статусы через errors.Is.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrUserBanned         = errors.New("user is banned")

	// ErrListingNotFound возвращается и для несуществующего id, и при отказе
	// гейта видимости - наружу эти случаи неразличимы.
	ErrListingNotFound = errors.New("listing not found")

	ErrForbidden  = errors.New("operation is not allowed for this caller")
	ErrValidation = errors.New("invalid listing payload")
)
