package domain

// Метки доступности, которые выставляет поисковый шлюз.
const (
	AvailabilityNotAvailable = "Not Available" // обе ветки поиска не дали результата
	AvailabilityError        = "Error"         // ошибка поиска по паре платформа×товар
)

// Offer — нормализованная карточка товара, найденная на одной платформе.
// Эфемерный объект: живёт в рамках одного сравнения и не сохраняется.
// Цены — в минорных единицах (пайсы); PriceMinor == 0 означает
// «нет в наличии / цена неизвестна», такой оффер никогда не выбирается.
type Offer struct {
	ItemQuery    string   `json:"item_query"` // поисковый запрос, на который отвечает карточка
	Name         string   `json:"name"`
	PriceMinor   int64    `json:"price_minor"`
	Rating       float64  `json:"rating"` // 0.0–5.0; 0 — нет данных
	Availability string   `json:"availability,omitempty"`
	Platform     Platform `json:"platform"`
	ImageURL     string   `json:"image_url,omitempty"`
	ProductURL   string   `json:"product_url,omitempty"`
	ErrorText    string   `json:"error,omitempty"` // диагностика для Availability == "Error"
}

// Available — можно ли оффер покупать (есть положительная цена).
func (o Offer) Available() bool { return o.PriceMinor > 0 }

// UnavailableOffer — оффер-заглушка «товара нет», подставляется шлюзом,
// когда обе ветки поиска не нашли ничего.
func UnavailableOffer(query string, platform Platform) Offer {
	return Offer{
		ItemQuery:    query,
		Name:         query,
		Availability: AvailabilityNotAvailable,
		Platform:     platform,
	}
}

// ErrorOffer — оффер-заглушка с текстом ошибки; сравнение не прерывается,
// а причина остаётся доступной для диагностики.
func ErrorOffer(query string, platform Platform, err error) Offer {
	o := Offer{
		ItemQuery:    query,
		Name:         query,
		Availability: AvailabilityError,
		Platform:     platform,
	}
	if err != nil {
		o.ErrorText = err.Error()
	}
	return o
}
