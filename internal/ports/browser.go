package ports

import (
	"context"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/registry"
)

// BrowserSession — один изолированный сеанс браузерной автоматизации.
// Сессия не потокобезопасна: ею управляет ровно один прогон (поиск либо
// оформление заказа). Каждый метод обязан уважать дедлайн контекста.
type BrowserSession interface {
	// Navigate — открыть страницу по URL.
	Navigate(ctx context.Context, url string) error

	// EnsureLoggedIn — установить/подтвердить сессию пользователя на платформе.
	EnsureLoggedIn(ctx context.Context, userID string) error

	// HarvestOffers — дождаться контейнера результатов на странице поиска
	// и извлечь карточки товаров по селекторам профиля.
	HarvestOffers(ctx context.Context, profile registry.PlatformProfile, query string) ([]domain.Offer, error)

	// SubmitSearch — найти строку поиска, ввести запрос и отправить.
	SubmitSearch(ctx context.Context, term string) error

	// OpenFirstResult — открыть первую карточку в результатах поиска.
	OpenFirstResult(ctx context.Context) error

	// AddToCart — нажать «добавить в корзину» на открытой карточке.
	AddToCart(ctx context.Context) error

	// CartItemCount — открыть корзину и вернуть число видимых позиций.
	CartItemCount(ctx context.Context) (int, error)

	// Checkout — пройти к оформлению заказа.
	Checkout(ctx context.Context) error

	// ConfirmOrder — финальное подтверждение заказа.
	ConfirmOrder(ctx context.Context) error

	// Close — освободить сеанс. Обязателен на любом пути выхода.
	Close() error
}

// Browser — фабрика изолированных браузерных сессий.
type Browser interface {
	NewSession(ctx context.Context) (BrowserSession, error)
}
