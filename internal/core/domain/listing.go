package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FileType - тип сделки по объявлению.
type FileType string

const (
	FileTypeRent     FileType = "rent"
	FileTypeMortgage FileType = "mortgage"
	FileTypeBuy      FileType = "buy"
)

// Category - категория недвижимости.
type Category string

const (
	CategoryVilla     Category = "villa"
	CategoryApartment Category = "apartment"
	CategoryStore     Category = "store"
	CategoryOffice    Category = "office"
	CategoryLand      Category = "land"
)

// ModerationState - состояние модерации объявления.
// Вместо nullable-флага published используем явный enum,
// чтобы таблица решений видимости была исчерпывающей.
type ModerationState string

const (
	ModerationPending   ModerationState = "pending"
	ModerationPublished ModerationState = "published"
	ModerationDenied    ModerationState = "denied"
)

// ModerationStateFromPublished конвертирует wire-формат админского PATCH
// (true | false | null) во внутреннее состояние.
func ModerationStateFromPublished(published *bool) ModerationState {
	switch {
	case published == nil:
		return ModerationPending
	case *published:
		return ModerationPublished
	default:
		return ModerationDenied
	}
}

// PublishedFlag - обратная конвертация для ответов API:
// published=true/false/null, как в исходном формате.
func (s ModerationState) PublishedFlag() *bool {
	switch s {
	case ModerationPublished:
		t := true
		return &t
	case ModerationDenied:
		f := false
		return &f
	default:
		return nil
	}
}

func (s ModerationState) IsValid() bool {
	switch s {
	case ModerationPending, ModerationPublished, ModerationDenied:
		return true
	}
	return false
}

// PriceKind - дискриминатор варианта цены.
type PriceKind int

const (
	// PriceSale - скалярная цена продажи (fileType = buy).
	PriceSale PriceKind = iota + 1
	// PriceTerms - пара {rent, mortgage} (fileType = rent или mortgage).
	PriceTerms
)

// Price - тегированный вариант цены. В исходных данных поле price было
// "смешанным": число для продажи, объект {rent, mortgage} для аренды/ипотеки.
// Здесь вариант явный, а на wire-уровне формат сохраняется через
// кастомный JSON-маршалинг.
type Price struct {
	Kind     PriceKind
	Amount   float64
	Rent     float64
	Mortgage float64
}

// NewSalePrice создает цену продажи.
func NewSalePrice(amount float64) Price {
	return Price{Kind: PriceSale, Amount: amount}
}

// NewRentTerms создает условия аренды/ипотеки.
func NewRentTerms(rent, mortgage float64) Price {
	return Price{Kind: PriceTerms, Rent: rent, Mortgage: mortgage}
}

// MatchesFileType проверяет, что вариант цены согласован с типом сделки.
func (p Price) MatchesFileType(ft FileType) bool {
	if ft == FileTypeBuy {
		return p.Kind == PriceSale
	}
	return p.Kind == PriceTerms
}

// rentTermsJSON - wire-представление объектного варианта.
type rentTermsJSON struct {
	Rent     float64 `json:"rent"`
	Mortgage float64 `json:"mortgage"`
}

// MarshalJSON сериализует цену в исходный формат: число или объект.
func (p Price) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PriceSale:
		return json.Marshal(p.Amount)
	case PriceTerms:
		return json.Marshal(rentTermsJSON{Rent: p.Rent, Mortgage: p.Mortgage})
	default:
		return nil, fmt.Errorf("price: unknown kind %d", p.Kind)
	}
}

// UnmarshalJSON различает вариант по форме JSON-значения.
func (p *Price) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		*p = NewSalePrice(amount)
		return nil
	}

	var terms rentTermsJSON
	if err := json.Unmarshal(data, &terms); err != nil {
		return fmt.Errorf("price: expected number or {rent, mortgage} object: %w", err)
	}
	*p = NewRentTerms(terms.Rent, terms.Mortgage)
	return nil
}

// OwnerInfo - публичные данные владельца для карточки объявления.
type OwnerInfo struct {
	ID       uuid.UUID
	ShowName string
	FullName string
}

// Listing - объявление о недвижимости, основная доменная сущность.
type Listing struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Location         string
	Address          string
	RealState        string // название агентства
	Phone            string
	FileType         FileType
	AreaMeter        float64
	Price            Price
	Category         Category
	ConstructionDate time.Time
	Amenities        []string
	Rules            []string
	Images           []string
	OwnerID          uuid.UUID
	Owner            *OwnerInfo // заполняется join-ом только там, где нужно для отображения
	Moderation       ModerationState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MaxImages - лимит на количество изображений в объявлении.
const MaxImages = 10

// VisibleTo - гейт видимости. Опубликованное объявление видно всем;
// остальные состояния видны админу, субадмину и владельцу.
// Анонимный вызов передает auth = nil.
func (l *Listing) VisibleTo(auth *AuthContext) bool {
	if l.Moderation == ModerationPublished {
		return true
	}
	if auth == nil {
		return false
	}
	if auth.IsAdmin() || auth.IsSubadmin() {
		return true
	}
	return auth.UserID == l.OwnerID
}

// CanBeEditedBy - контентные поля меняет только владелец.
func (l *Listing) CanBeEditedBy(auth *AuthContext) bool {
	return auth != nil && auth.UserID == l.OwnerID
}

// CanBeDeletedBy - удаляет владелец или админ.
func (l *Listing) CanBeDeletedBy(auth *AuthContext) bool {
	if auth == nil {
		return false
	}
	return auth.UserID == l.OwnerID || auth.IsAdmin()
}
