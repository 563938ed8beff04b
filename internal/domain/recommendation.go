package domain

// PlatformBucket — часть рекомендации, приходящаяся на одну платформу:
// выбранные офферы, их сумма и параметры доставки из реестра платформ.
type PlatformBucket struct {
	Platform         Platform `json:"platform"`
	Offers           []Offer  `json:"items"`
	SubtotalMinor    int64    `json:"subtotal_minor"`
	DeliveryFeeMinor int64    `json:"delivery_fee_minor"`
	DeliveryMinutes  int      `json:"delivery_time_minutes"`
}

// TotalMinor — стоимость корзины платформы вместе с доставкой.
func (b *PlatformBucket) TotalMinor() int64 {
	return b.SubtotalMinor + b.DeliveryFeeMinor
}

// Recommendation — итог сравнения: распределение товаров по платформам,
// суммарная стоимость и оценка экономии. Неизменяемый value-object.
//
// TotalCostMinor — сумма (subtotal + fee) по КАЖДОЙ затронутой платформе:
// мультиплатформенный заказ оплачивает доставку каждой из них.
type Recommendation struct {
	BestPlatform    Platform                     `json:"best_platform"`
	TotalCostMinor  int64                        `json:"total_cost_minor"`
	Offers          []Offer                      `json:"items"`
	Buckets         map[Platform]*PlatformBucket `json:"platform_breakdown"`
	SavingsMinor    int64                        `json:"savings_minor"`
	DeliveryMinutes int                          `json:"delivery_time_minutes"`
	Summary         string                       `json:"summary"`
}
