package ports

import (
	"context"

	"github.com/quickcart/quickcart/internal/domain"
)

// OrderLedger — ограниченный журнал размещённых заказов.
// Требования к реализации: потокобезопасность; вместимость не более N
// записей с FIFO-вытеснением старейшей; возврат копий сущности.
type OrderLedger interface {
	// Record — записать заказ; при переполнении вытесняется старейший.
	Record(ctx context.Context, order *domain.Order) error

	// Status — заказ по паре (orderID, userID); несовпадение любого из
	// полей — domain.ErrOrderNotFound, а не частичное совпадение.
	Status(ctx context.Context, orderID, userID string) (*domain.Order, error)

	// Advance — симулированное продвижение статуса заказа.
	Advance(ctx context.Context, orderID string) (*domain.Order, error)
}
