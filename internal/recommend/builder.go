// Пакет recommend — сборка рекомендации из победителей сравнения:
// распределение по платформам, суммарная стоимость, оценка экономии
// и правило автоодобрения.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/registry"
)

// Builder — собирает Recommendation из лучших офферов, подтягивая
// стоимость и время доставки из реестра платформ.
type Builder struct {
	reg *registry.Registry
}

// NewBuilder — DI-конструктор.
func NewBuilder(reg *registry.Registry) *Builder {
	return &Builder{reg: reg}
}

// Build — рекомендация по итогам сравнения. best — лучший оффер на товар
// (результат свёртки), requested — исходный список запросов; порядок
// requested определяет порядок офферов в рекомендации.
// domain.ErrItemNotFound — ни один товар не удалось найти ни на одной
// платформе.
func (b *Builder) Build(best map[string]domain.Offer, requested []string) (*domain.Recommendation, error) {
	if len(best) == 0 {
		return nil, fmt.Errorf("%w: no purchasable items", domain.ErrItemNotFound)
	}

	buckets := make(map[domain.Platform]*domain.PlatformBucket)
	offers := make([]domain.Offer, 0, len(best))

	for _, item := range requested {
		offer, ok := best[item]
		if !ok {
			continue
		}
		offers = append(offers, offer)

		bucket, ok := buckets[offer.Platform]
		if !ok {
			profile, found := b.reg.Lookup(offer.Platform)
			if !found {
				// Оффер с платформы вне реестра — дефект выше по конвейеру.
				return nil, fmt.Errorf("%w: unknown platform %q", registry.ErrInvalidProfile, offer.Platform)
			}
			bucket = &domain.PlatformBucket{
				Platform:         offer.Platform,
				DeliveryFeeMinor: profile.DeliveryFeeMinor,
				DeliveryMinutes:  profile.DeliveryMinutes,
			}
			buckets[offer.Platform] = bucket
		}
		bucket.Offers = append(bucket.Offers, offer)
		bucket.SubtotalMinor += offer.PriceMinor
	}

	bestPlatform := b.pickBestPlatform(buckets)

	var total int64
	for _, bucket := range buckets {
		total += bucket.TotalMinor()
	}

	rec := &domain.Recommendation{
		BestPlatform:    bestPlatform,
		TotalCostMinor:  total,
		Offers:          offers,
		Buckets:         buckets,
		SavingsMinor:    savings(buckets),
		DeliveryMinutes: buckets[bestPlatform].DeliveryMinutes,
	}
	rec.Summary = summarize(rec, len(requested))
	return rec, nil
}

// pickBestPlatform — платформа с наибольшим числом выбранных офферов;
// при равенстве побеждает стоящая раньше в реестре.
func (b *Builder) pickBestPlatform(buckets map[domain.Platform]*domain.PlatformBucket) domain.Platform {
	var (
		winner domain.Platform
		most   = -1
	)
	for _, p := range b.reg.Platforms() {
		bucket, ok := buckets[p]
		if !ok {
			continue
		}
		if len(bucket.Offers) > most {
			winner = p
			most = len(bucket.Offers)
		}
	}
	return winner
}

// savings — разница между вторым и первым по дешевизне платформенными
// итогами (subtotal + fee). Одна платформа — экономии нет.
func savings(buckets map[domain.Platform]*domain.PlatformBucket) int64 {
	if len(buckets) < 2 {
		return 0
	}
	totals := make([]int64, 0, len(buckets))
	for _, bucket := range buckets {
		totals = append(totals, bucket.TotalMinor())
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i] < totals[j] })
	return totals[1] - totals[0]
}

// summarize — однострочная сводка рекомендации для логов и ответа API.
func summarize(rec *domain.Recommendation, requested int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Best option: %s | items: %d/%d | total: ₹%s",
		rec.BestPlatform, len(rec.Offers), requested, Rupees(rec.TotalCostMinor))
	if rec.SavingsMinor > 0 {
		fmt.Fprintf(&sb, " | savings: ₹%s", Rupees(rec.SavingsMinor))
	}
	fmt.Fprintf(&sb, " | delivery: ~%d min", rec.DeliveryMinutes)
	return sb.String()
}

// Rupees — минорные единицы в строку с двумя знаками после запятой.
func Rupees(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

// ShouldAutoApprove — правило автоодобрения: экономия не меньше порога.
// Нулевой и отрицательный порог означают «одобрять всегда».
func ShouldAutoApprove(rec *domain.Recommendation, thresholdMinor int64) bool {
	if rec == nil {
		return false
	}
	return rec.SavingsMinor >= thresholdMinor
}
