package ports

import (
	"context"

	"github.com/quickcart/quickcart/internal/domain"
)

// OfferSource — поиск товаров на одной платформе.
// Никогда не возвращает ошибку: полный отказ поиска превращается
// в пустой список либо оффер-заглушку с нулевой ценой.
type OfferSource interface {
	Search(ctx context.Context, platform domain.Platform, query string) []domain.Offer
}
