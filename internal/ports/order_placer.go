package ports

import (
	"context"

	"github.com/quickcart/quickcart/internal/domain"
)

// OrderPlacer — драйвер автоматического оформления заказа на платформе.
// Возвращённый заказ содержит только фактически добавленные позиции.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, platform domain.Platform, items []domain.Offer, userID string) (*domain.Order, error)
}
