// Пакет scrape — поисковый шлюз: получение нормализованного списка
// карточек товара для пары платформа×запрос. Двухъярусная стратегия:
// основная ветка — браузерная сессия (динамический рендеринг),
// резервная — обычный HTTP-запрос со статическим разбором разметки.
// Полный отказ обеих веток — не ошибка для вызывающего кода.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/pkg/metrics"
)

const (
	defaultMaxResults  = 20
	defaultWaitTimeout = 12 * time.Second
)

// Gateway — реализация ports.OfferSource поверх браузера и HTTP-загрузчика.
type Gateway struct {
	browser     ports.Browser
	fetcher     ports.PageFetcher
	reg         *registry.Registry
	log         ports.Logger
	maxResults  int
	waitTimeout time.Duration
}

var _ ports.OfferSource = (*Gateway)(nil)

// NewGateway — DI-конструктор; нулевые лимиты заменяются дефолтами.
func NewGateway(
	browser ports.Browser,
	fetcher ports.PageFetcher,
	reg *registry.Registry,
	log ports.Logger,
	maxResults int,
	waitTimeout time.Duration,
) *Gateway {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if waitTimeout <= 0 {
		waitTimeout = defaultWaitTimeout
	}
	return &Gateway{
		browser:     browser,
		fetcher:     fetcher,
		reg:         reg,
		log:         log,
		maxResults:  maxResults,
		waitTimeout: waitTimeout,
	}
}

// Search — поиск товаров на платформе. Ошибок не возвращает:
// полный отказ логируется, а вызывающий код получает пустой список.
func (g *Gateway) Search(ctx context.Context, platform domain.Platform, query string) []domain.Offer {
	profile, ok := g.reg.Lookup(platform)
	if !ok {
		g.log.Errorf(ctx, "search: unknown platform %q", platform)
		return nil
	}

	// Основная ветка: браузерная сессия с ограниченным ожиданием
	// контейнера результатов.
	offers, browserErr := g.searchWithBrowser(ctx, profile, query)
	if browserErr == nil && len(offers) > 0 {
		metrics.SearchesTotal.WithLabelValues(platform.String(), "browser", "ok").Inc()
		return g.normalize(offers, platform, query)
	}
	if browserErr != nil {
		metrics.SearchesTotal.WithLabelValues(platform.String(), "browser", "error").Inc()
		g.log.Warnf(ctx, "browser search failed platform=%s query=%q err=%v", platform, query, browserErr)
	} else {
		metrics.SearchesTotal.WithLabelValues(platform.String(), "browser", "empty").Inc()
		g.log.Debugf(ctx, "browser search empty platform=%s query=%q, trying http", platform, query)
	}

	// Резервная ветка: загрузка страницы поиска и статический разбор.
	offers, httpErr := g.searchWithHTTP(ctx, profile, query)
	if httpErr != nil {
		metrics.SearchesTotal.WithLabelValues(platform.String(), "http", "error").Inc()
		g.log.Errorf(ctx, "search unavailable platform=%s query=%q: %v (browser: %v)",
			platform, query, fmt.Errorf("%w: %v", domain.ErrPlatformUnavailable, httpErr), browserErr)
		return nil
	}
	if len(offers) == 0 {
		metrics.SearchesTotal.WithLabelValues(platform.String(), "http", "empty").Inc()
		return nil
	}

	metrics.SearchesTotal.WithLabelValues(platform.String(), "http", "ok").Inc()
	return g.normalize(offers, platform, query)
}

// searchWithBrowser — основная ветка: изолированная сессия на один запрос,
// освобождается на любом пути выхода.
func (g *Gateway) searchWithBrowser(ctx context.Context, profile registry.PlatformProfile, query string) (_ []domain.Offer, retErr error) {
	ctx, cancel := context.WithTimeout(ctx, g.waitTimeout)
	defer cancel()

	session, err := g.browser.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cErr := session.Close(); cErr != nil && retErr == nil {
			retErr = cErr
		}
	}()

	return session.HarvestOffers(ctx, profile, query)
}

// searchWithHTTP — резервная ветка: обычный GET страницы поиска
// и best-effort разбор разметки.
func (g *Gateway) searchWithHTTP(ctx context.Context, profile registry.PlatformProfile, query string) ([]domain.Offer, error) {
	pageURL := profile.SearchPageURL(query)

	body, err := g.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	return ParseSearchHTML(body, profile, pageURL, g.maxResults)
}

// normalize — ограничивает число карточек, проставляет обязательные поля
// и заменяет отсутствующие значения нейтральными.
func (g *Gateway) normalize(offers []domain.Offer, platform domain.Platform, query string) []domain.Offer {
	if len(offers) > g.maxResults {
		offers = offers[:g.maxResults]
	}
	out := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		o.Platform = platform
		o.ItemQuery = query
		if o.Name == "" {
			o.Name = query
		}
		if o.PriceMinor < 0 {
			o.PriceMinor = 0
		}
		if o.Rating < 0 {
			o.Rating = 0
		}
		if o.Rating > 5 {
			o.Rating = 5
		}
		out = append(out, o)
	}
	return out
}
