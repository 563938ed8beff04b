package compare

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/pkg/metrics"
)

const defaultPerPlatform = 4

// Aggregator — кросс-платформенное сравнение: запускает поисковый шлюз
// по всем парам платформа×товар с ограниченной параллельностью и сводит
// матрицу к лучшему офферу на товар.
type Aggregator struct {
	source      ports.OfferSource
	reg         *registry.Registry
	log         ports.Logger
	perPlatform int // лимит одновременных запросов на одну платформу
}

// NewAggregator — DI-конструктор.
func NewAggregator(source ports.OfferSource, reg *registry.Registry, log ports.Logger, perPlatform int) *Aggregator {
	if perPlatform <= 0 {
		perPlatform = defaultPerPlatform
	}
	return &Aggregator{
		source:      source,
		reg:         reg,
		log:         log,
		perPlatform: perPlatform,
	}
}

// Compare — матрица товар → платформа → лучший оффер платформы.
// Сбой одной пары никогда не прерывает сравнение: вместо оффера
// подставляется заглушка с нулевой ценой и текстом ошибки.
// Возврат — барьер синхронизации: все пары либо завершились, либо
// истёк их контекст.
func (a *Aggregator) Compare(ctx context.Context, items []string) map[string]map[domain.Platform]domain.Offer {
	ctx, span := otel.Tracer("compare").Start(ctx, "compare.fanout")
	defer span.End()
	span.SetAttributes(attribute.Int("items", len(items)))
	metrics.ComparisonsTotal.Inc()

	platforms := a.reg.Platforms()

	matrix := make(map[string]map[domain.Platform]domain.Offer, len(items))
	for _, item := range items {
		matrix[item] = make(map[domain.Platform]domain.Offer, len(platforms))
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	// Общий пул ограничен числом платформ × лимит на платформу.
	sem := make(chan struct{}, len(platforms)*a.perPlatform)

	for _, platform := range platforms {
		for _, item := range items {
			wg.Add(1)
			go func(platform domain.Platform, item string) {
				defer wg.Done()

				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					// Дедлайн сравнения истёк: пара не запускается,
					// платформа трактуется как «без оффера».
					mu.Lock()
					matrix[item][platform] = domain.ErrorOffer(item, platform, ctx.Err())
					mu.Unlock()
					return
				}

				offer := a.searchPair(ctx, platform, item)

				mu.Lock()
				matrix[item][platform] = offer
				mu.Unlock()
			}(platform, item)
		}
	}
	wg.Wait()

	return matrix
}

// searchPair — одна пара платформа×товар; паника внутри шлюза
// превращается в заглушку-ошибку и не валит весь батч.
func (a *Aggregator) searchPair(ctx context.Context, platform domain.Platform, item string) (offer domain.Offer) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorf(ctx, "search panic platform=%s item=%q: %v", platform, item, r)
			offer = domain.ErrorOffer(item, platform, fmt.Errorf("panic: %v", r))
		}
	}()

	offers := a.source.Search(ctx, platform, item)
	if len(offers) == 0 {
		return domain.UnavailableOffer(item, platform)
	}

	best, ok := BestOnPlatform(offers)
	if !ok {
		return domain.UnavailableOffer(item, platform)
	}
	best.Platform = platform
	best.ItemQuery = item
	return best
}

// BestOffers — сравнение со свёрткой: лучший доступный оффер на товар.
func (a *Aggregator) BestOffers(ctx context.Context, items []string) map[string]domain.Offer {
	return BestAcross(a.Compare(ctx, items), a.reg.Platforms())
}
