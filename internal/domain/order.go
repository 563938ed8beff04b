package domain

import "time"

// OrderStatus — статус размещённого заказа.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusFailed         OrderStatus = "failed"
)

// Order — размещённый заказ. Создаётся драйвером автоматизации,
// далее мутируется только операциями смены статуса в леджере.
type Order struct {
	OrderID           string      `json:"order_id"`
	Platform          Platform    `json:"platform"`
	UserID            string      `json:"user_id"`
	Items             []Offer     `json:"items"` // фактически добавленные в корзину позиции
	TotalAmountMinor  int64       `json:"total_amount_minor"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	TrackingURL       string      `json:"tracking_url,omitempty"`
	EstimatedDelivery time.Time   `json:"estimated_delivery,omitempty"`
}

// NextStatus — симулированное продвижение статуса:
// placed → out_for_delivery → delivered; терминальные статусы не меняются.
func (s OrderStatus) NextStatus() OrderStatus {
	switch s {
	case StatusPlaced:
		return StatusOutForDelivery
	case StatusOutForDelivery:
		return StatusDelivered
	default:
		return s
	}
}
