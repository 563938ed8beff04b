package domain

// Platform — идентификатор quick-commerce платформы.
// Закрытое множество значений задаётся реестром платформ (internal/registry).
type Platform string

const (
	PlatformZepto           Platform = "zepto"
	PlatformBlinkit         Platform = "blinkit"
	PlatformSwiggyInstamart Platform = "swiggy_instamart"
	PlatformBigBasket       Platform = "bigbasket"
)

func (p Platform) String() string { return string(p) }
