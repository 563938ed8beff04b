// Пакет registry — статическая конфигурация платформ: эндпоинты поиска,
// правила извлечения, фиксированная стоимость и номинальное время доставки.
// Набор платформ закрыт и валидируется на старте, никакого поиска
// по строке в рантайме.
package registry

import (
	"errors"
	"fmt"

	"github.com/quickcart/quickcart/internal/domain"
)

// ErrInvalidProfile — профиль платформы не прошёл валидацию на старте.
var ErrInvalidProfile = errors.New("invalid platform profile")

// Selectors — CSS-селекторы извлечения полей карточки товара.
type Selectors struct {
	ProductName  string
	Price        string
	Rating       string
	Availability string
}

// PlatformProfile — неизменяемый профиль одной платформы.
type PlatformProfile struct {
	Name             domain.Platform
	BaseURL          string
	SearchURL        string
	QueryInPath      bool // поисковый запрос дописывается к URL без "?q=" (bigbasket)
	Selectors        Selectors
	DeliveryFeeMinor int64
	DeliveryMinutes  int
}

// SearchPageURL — полный URL страницы поиска для запроса query.
func (p PlatformProfile) SearchPageURL(query string) string {
	if p.QueryInPath {
		return p.SearchURL + query
	}
	return p.SearchURL + "?q=" + query
}

// Registry — закрытый упорядоченный набор профилей платформ.
// Порядок профилей значим: он разрешает ничьи при выборе best_platform.
type Registry struct {
	profiles []PlatformProfile
	index    map[domain.Platform]int
}

// New — собирает реестр из профилей и валидирует каждый.
func New(profiles []PlatformProfile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: empty profile list", ErrInvalidProfile)
	}
	r := &Registry{index: make(map[domain.Platform]int, len(profiles))}
	for _, p := range profiles {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := r.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate platform %q", ErrInvalidProfile, p.Name)
		}
		r.index[p.Name] = len(r.profiles)
		r.profiles = append(r.profiles, p)
	}
	return r, nil
}

// MustDefault — реестр с платформами по умолчанию; паникует на старте,
// если встроенная таблица некорректна.
func MustDefault() *Registry {
	r, err := New(defaultProfiles())
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup — профиль платформы; false для неизвестного имени.
func (r *Registry) Lookup(name domain.Platform) (PlatformProfile, bool) {
	i, ok := r.index[name]
	if !ok {
		return PlatformProfile{}, false
	}
	return r.profiles[i], true
}

// Profiles — копия списка профилей в порядке регистрации.
func (r *Registry) Profiles() []PlatformProfile {
	return append([]PlatformProfile(nil), r.profiles...)
}

// Platforms — имена платформ в порядке регистрации.
func (r *Registry) Platforms() []domain.Platform {
	names := make([]domain.Platform, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	return names
}

func validate(p PlatformProfile) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: empty platform name", ErrInvalidProfile)
	case p.BaseURL == "":
		return fmt.Errorf("%w: %s: empty base url", ErrInvalidProfile, p.Name)
	case p.SearchURL == "":
		return fmt.Errorf("%w: %s: empty search url", ErrInvalidProfile, p.Name)
	case p.Selectors.ProductName == "" || p.Selectors.Price == "":
		return fmt.Errorf("%w: %s: name/price selectors are required", ErrInvalidProfile, p.Name)
	case p.DeliveryFeeMinor < 0:
		return fmt.Errorf("%w: %s: negative delivery fee", ErrInvalidProfile, p.Name)
	case p.DeliveryMinutes <= 0:
		return fmt.Errorf("%w: %s: delivery minutes must be positive", ErrInvalidProfile, p.Name)
	}
	return nil
}

// defaultProfiles — встроенная таблица платформ.
// Селекторы best-effort: шлюз поиска дополнительно умеет подстраховываться
// подстрочными [class*=...] селекторами, когда платформенные не сработали.
func defaultProfiles() []PlatformProfile {
	return []PlatformProfile{
		{
			Name:      domain.PlatformZepto,
			BaseURL:   "https://www.zepto.com",
			SearchURL: "https://www.zepto.com/search",
			Selectors: Selectors{
				ProductName:  ".product-name",
				Price:        ".price",
				Rating:       ".rating",
				Availability: ".availability",
			},
			DeliveryFeeMinor: 0,
			DeliveryMinutes:  10,
		},
		{
			Name:      domain.PlatformBlinkit,
			BaseURL:   "https://blinkit.com",
			SearchURL: "https://blinkit.com/search",
			Selectors: Selectors{
				ProductName:  ".product-title",
				Price:        ".price-value",
				Rating:       ".rating-stars",
				Availability: ".stock-status",
			},
			DeliveryFeeMinor: 0,
			DeliveryMinutes:  10,
		},
		{
			Name:      domain.PlatformSwiggyInstamart,
			BaseURL:   "https://www.swiggy.com/instamart",
			SearchURL: "https://www.swiggy.com/instamart/search",
			Selectors: Selectors{
				ProductName:  ".product-name",
				Price:        ".price",
				Rating:       ".rating",
				Availability: ".availability",
			},
			DeliveryFeeMinor: 2000,
			DeliveryMinutes:  30,
		},
		{
			Name:        domain.PlatformBigBasket,
			BaseURL:     "https://www.bigbasket.com",
			SearchURL:   "https://www.bigbasket.com/ps/?q=",
			QueryInPath: true,
			Selectors: Selectors{
				ProductName:  ".prod-name, .uiv2-product-name",
				Price:        ".price, .uiv2-price",
				Rating:       ".rating, .uiv2-rating",
				Availability: ".availability, .uiv2-sold-out",
			},
			DeliveryFeeMinor: 2000,
			DeliveryMinutes:  30,
		},
	}
}
