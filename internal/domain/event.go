package domain

import "time"

// Типы событий жизненного цикла заказа.
const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "order_status_changed"
)

// OrderEvent — событие для внешней шины (Kafka).
type OrderEvent struct {
	Type             string      `json:"type"`
	OrderID          string      `json:"order_id"`
	Platform         Platform    `json:"platform"`
	UserID           string      `json:"user_id"`
	Status           OrderStatus `json:"status"`
	TotalAmountMinor int64       `json:"total_amount_minor"`
	At               time.Time   `json:"at"`
}
