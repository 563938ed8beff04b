// Пакет compare — выбор лучшего оффера на платформе и кросс-платформенное
// сравнение (fan-out по парам платформа×товар, свёртка к минимальной
// положительной цене).
package compare

import (
	"sort"

	"github.com/quickcart/quickcart/internal/domain"
)

// BestOnPlatform — единственный лучший оффер платформы для одного товара.
// false — если кандидатов нет.
//
// Порядок сортировки: рейтинг по убыванию, затем цена по убыванию —
// среди одинаково оценённых побеждает более дорогой. Историческое
// поведение, закреплено отдельным тестом; не менять без подтверждения
// владельцев продукта.
func BestOnPlatform(offers []domain.Offer) (domain.Offer, bool) {
	if len(offers) == 0 {
		return domain.Offer{}, false
	}

	sorted := append([]domain.Offer(nil), offers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].PriceMinor > sorted[j].PriceMinor
	})
	return sorted[0], true
}

// BestAcross — свёртка матрицы сравнения: для каждого товара — оффер с
// минимальной положительной ценой среди всех платформ. Товары, у которых
// нет ни одной положительной цены, в результат не попадают (их нельзя
// купить; это не ошибка). Платформы перебираются в порядке platformOrder,
// чтобы результат был детерминирован при равных ценах.
func BestAcross(matrix map[string]map[domain.Platform]domain.Offer, platformOrder []domain.Platform) map[string]domain.Offer {
	best := make(map[string]domain.Offer)
	for item, byPlatform := range matrix {
		var (
			chosen domain.Offer
			found  bool
		)
		for _, p := range platformOrder {
			o, ok := byPlatform[p]
			if !ok || !o.Available() {
				continue
			}
			if !found || o.PriceMinor < chosen.PriceMinor {
				chosen = o
				found = true
			}
		}
		if found {
			best[item] = chosen
		}
	}
	return best
}
