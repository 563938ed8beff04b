package scrape

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/registry"
)

// FallbackCardSelector — платформо-независимый селектор карточки товара
// для резервной ветки (включая верстку bigbasket).
const FallbackCardSelector = ".product, .item, .product-card, .uiv2-card, .col-sm-12"

// Подстраховочные селекторы по подстроке класса — используются, когда
// платформенные селекторы из профиля ничего не нашли.
const (
	fallbackNameSelector   = "[class*='name']"
	fallbackPriceSelector  = "[class*='price']"
	fallbackRatingSelector = "[class*='rating']"
	fallbackAvailSelector  = "[class*='stock'], [class*='avail']"
)

// ParseSearchHTML — best-effort разбор страницы поиска.
// Неполная карточка получает нейтральные значения (цена 0, рейтинг 0);
// некорректная карточка пропускается и не прерывает разбор.
func ParseSearchHTML(r io.Reader, profile registry.PlatformProfile, pageURL string, limit int) ([]domain.Offer, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultMaxResults
	}

	var offers []domain.Offer
	doc.Find(FallbackCardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		name := selectText(card, profile.Selectors.ProductName, fallbackNameSelector)
		priceText := selectText(card, profile.Selectors.Price, fallbackPriceSelector)
		ratingText := selectText(card, profile.Selectors.Rating, fallbackRatingSelector)
		availability := selectText(card, profile.Selectors.Availability, fallbackAvailSelector)

		price := parsePriceMinor(priceText)

		// Карточка без имени и цены — мусор верстки, пропускаем.
		if name == "" && price == 0 {
			return true
		}

		productURL := pageURL
		if href, ok := card.Find("a").First().Attr("href"); ok && href != "" {
			productURL = href
		}

		offers = append(offers, domain.Offer{
			Name:         name,
			PriceMinor:   price,
			Rating:       parseRating(ratingText),
			Availability: availability,
			ImageURL:     card.Find("img").First().AttrOr("src", ""),
			ProductURL:   productURL,
		})
		return len(offers) < limit
	})

	return offers, nil
}

// selectText — текст по платформенному селектору, затем по подстраховочному.
func selectText(card *goquery.Selection, selector, fallback string) string {
	if selector != "" {
		if el := card.Find(selector).First(); el.Length() > 0 {
			return strings.TrimSpace(el.Text())
		}
	}
	if el := card.Find(fallback).First(); el.Length() > 0 {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// parsePriceMinor — цена в минорных единицах: из текста берутся только
// цифры ("₹45.50" → 4550). Нечисловой текст — 0 (недоступно).
func parsePriceMinor(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseRating — первое поле текста как число ("4.3 (120)" → 4.3); вне
// диапазона [0..5] или нечисловое — 0.
func parseRating(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
