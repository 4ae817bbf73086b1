package rest

import (
	"time"

	"classifieds-service/internal/core/domain"
)

// --- Аутентификация ---

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// --- Объявления ---

// ListingPayload - тело POST/PUT объявления. Форма поля price (число или
// объект {rent, mortgage}) разбирается кастомным анмаршалингом domain.Price.
type ListingPayload struct {
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Location         string       `json:"location"`
	Address          string       `json:"address"`
	RealState        string       `json:"realState"`
	Phone            string       `json:"phone"`
	FileType         string       `json:"fileType"`
	AreaMeter        float64      `json:"areaMeter"`
	Price            domain.Price `json:"price"`
	Category         string       `json:"category"`
	ConstructionDate time.Time    `json:"constructionDate"`
	Amenities        []string     `json:"amenities"`
	Rules            []string     `json:"rules"`
	Images           []string     `json:"images"`
}

func (p ListingPayload) toDomain() domain.Listing {
	return domain.Listing{
		Title:            p.Title,
		Description:      p.Description,
		Location:         p.Location,
		Address:          p.Address,
		RealState:        p.RealState,
		Phone:            p.Phone,
		FileType:         domain.FileType(p.FileType),
		AreaMeter:        p.AreaMeter,
		Price:            p.Price,
		Category:         domain.Category(p.Category),
		ConstructionDate: p.ConstructionDate,
		Amenities:        p.Amenities,
		Rules:            p.Rules,
		Images:           p.Images,
	}
}

type OwnerResponse struct {
	ID       string `json:"id"`
	ShowName string `json:"showName"`
	FullName string `json:"fullName,omitempty"`
}

// ListingResponse сохраняет исходный wire-формат: published как
// true/false/null, price как число или объект.
type ListingResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Location         string         `json:"location"`
	Address          string         `json:"address"`
	RealState        string         `json:"realState"`
	Phone            string         `json:"phone"`
	FileType         string         `json:"fileType"`
	AreaMeter        float64        `json:"areaMeter"`
	Price            domain.Price   `json:"price"`
	Category         string         `json:"category"`
	ConstructionDate time.Time      `json:"constructionDate"`
	Amenities        []string       `json:"amenities"`
	Rules            []string       `json:"rules"`
	Images           []string       `json:"images"`
	Owner            *OwnerResponse `json:"owner,omitempty"`
	Published        *bool          `json:"published"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func newListingResponse(l domain.Listing) ListingResponse {
	resp := ListingResponse{
		ID:               l.ID.String(),
		Title:            l.Title,
		Description:      l.Description,
		Location:         l.Location,
		Address:          l.Address,
		RealState:        l.RealState,
		Phone:            l.Phone,
		FileType:         string(l.FileType),
		AreaMeter:        l.AreaMeter,
		Price:            l.Price,
		Category:         string(l.Category),
		ConstructionDate: l.ConstructionDate,
		Amenities:        l.Amenities,
		Rules:            l.Rules,
		Images:           l.Images,
		Published:        l.Moderation.PublishedFlag(),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
	if l.Owner != nil {
		resp.Owner = &OwnerResponse{
			ID:       l.Owner.ID.String(),
			ShowName: l.Owner.ShowName,
			FullName: l.Owner.FullName,
		}
	}
	return resp
}

func newListingResponses(listings []domain.Listing) []ListingResponse {
	responses := make([]ListingResponse, len(listings))
	for i, l := range listings {
		responses[i] = newListingResponse(l)
	}
	return responses
}

// PaginatedListingsResponse - DTO для ответа со списком и пагинацией.
type PaginatedListingsResponse struct {
	Data       []ListingResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	PerPage    int               `json:"perPage"`
}

// ModerationPatchRequest - решение админа в исходном wire-формате:
// true = опубликовать, false = отклонить, null = вернуть в ожидание.
type ModerationPatchRequest struct {
	Published *bool `json:"published"`
}

// --- Пользователи ---

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	ShowName        string    `json:"showName"`
	FullName        string    `json:"fullName,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Role            string    `json:"role"`
	Banned          bool      `json:"banned"`
	EmailVerified   bool      `json:"emailVerified"`
	SubadminRequest bool      `json:"subadminRequest"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		ShowName:        u.ShowName,
		FullName:        u.FullName,
		Phone:           u.Phone,
		Role:            u.Role,
		Banned:          u.Banned,
		EmailVerified:   u.EmailVerified,
		SubadminRequest: u.SubadminRequest,
		CreatedAt:       u.CreatedAt,
	}
}

// UserPatchRequest - админские правки аккаунта. nil - поле не трогаем.
type UserPatchRequest struct {
	Banned          *bool   `json:"banned"`
	SubadminRequest *bool   `json:"subadminRequest"`
	Role            *string `json:"role"`
}

// --- Настройки витрины ---

type SettingsDTO struct {
	Newest    bool `json:"newest"`
	Apartment bool `json:"apartment"`
	Store     bool `json:"store"`
	Office    bool `json:"office"`
	VillaLand bool `json:"villaLand"`
}

type SettingsResponse struct {
	HomePageSliders SettingsDTO `json:"homePageSliders"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func newSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		HomePageSliders: SettingsDTO{
			Newest:    s.HomePageSliders.Newest,
			Apartment: s.HomePageSliders.Apartment,
			Store:     s.HomePageSliders.Store,
			Office:    s.HomePageSliders.Office,
			VillaLand: s.HomePageSliders.VillaLand,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

func (d SettingsDTO) toDomain() domain.Settings {
	return domain.Settings{
		HomePageSliders: domain.HomePageSliders{
			Newest:    d.Newest,
			Apartment: d.Apartment,
			Store:     d.Store,
			Office:    d.Office,
			VillaLand: d.VillaLand,
		},
	}
}
