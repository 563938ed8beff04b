package compare_test

import (
	"testing"

	"github.com/quickcart/quickcart/internal/compare"
	"github.com/quickcart/quickcart/internal/domain"
)

func TestBestOnPlatform_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := compare.BestOnPlatform(nil); ok {
		t.Fatalf("empty list must yield no offer")
	}
}

func TestBestOnPlatform_HighestRatingWins(t *testing.T) {
	t.Parallel()

	offers := []domain.Offer{
		{Name: "cheap", PriceMinor: 100, Rating: 3.9},
		{Name: "top", PriceMinor: 200, Rating: 4.6},
		{Name: "mid", PriceMinor: 150, Rating: 4.1},
	}

	best, ok := compare.BestOnPlatform(offers)
	if !ok || best.Name != "top" {
		t.Fatalf("want top, got %+v ok=%v", best, ok)
	}
}

// Закреплённое историческое поведение: при равном рейтинге побеждает
// БОЛЕЕ ДОРОГОЙ оффер. Не менять без подтверждения владельцев продукта.
func TestBestOnPlatform_EqualRating_PricierWins(t *testing.T) {
	t.Parallel()

	offers := []domain.Offer{
		{Name: "cheaper", PriceMinor: 100, Rating: 4.5},
		{Name: "pricier", PriceMinor: 300, Rating: 4.5},
		{Name: "middle", PriceMinor: 200, Rating: 4.5},
	}

	best, ok := compare.BestOnPlatform(offers)
	if !ok || best.Name != "pricier" {
		t.Fatalf("equal rating must prefer the pricier offer, got %+v", best)
	}
}

func TestBestOnPlatform_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	offers := []domain.Offer{
		{Name: "a", PriceMinor: 100, Rating: 1},
		{Name: "b", PriceMinor: 200, Rating: 5},
	}

	_, _ = compare.BestOnPlatform(offers)
	if offers[0].Name != "a" || offers[1].Name != "b" {
		t.Fatalf("input slice must not be reordered: %+v", offers)
	}
}

func TestBestAcross_PicksMinimumPositivePrice(t *testing.T) {
	t.Parallel()

	order := []domain.Platform{"a", "b"}
	matrix := map[string]map[domain.Platform]domain.Offer{
		"tomatoes": {
			"a": {ItemQuery: "tomatoes", PriceMinor: 2500, Rating: 4.5, Platform: "a"},
			"b": {ItemQuery: "tomatoes", PriceMinor: 3000, Rating: 4.2, Platform: "b"},
		},
		"milk": {
			"a": {ItemQuery: "milk", PriceMinor: 0, Platform: "a", Availability: domain.AvailabilityNotAvailable},
			"b": {ItemQuery: "milk", PriceMinor: 6000, Rating: 4.3, Platform: "b"},
		},
	}

	best := compare.BestAcross(matrix, order)
	if len(best) != 2 {
		t.Fatalf("want 2 items, got %d", len(best))
	}
	if best["tomatoes"].Platform != "a" || best["tomatoes"].PriceMinor != 2500 {
		t.Fatalf("tomatoes: %+v", best["tomatoes"])
	}
	if best["milk"].Platform != "b" || best["milk"].PriceMinor != 6000 {
		t.Fatalf("milk: %+v", best["milk"])
	}
}

// Оффер с нулевой ценой не выбирается никогда — даже если другого нет,
// товар просто выпадает из результата.
func TestBestAcross_ZeroPriceNeverSelected(t *testing.T) {
	t.Parallel()

	matrix := map[string]map[domain.Platform]domain.Offer{
		"ghee": {
			"a": {ItemQuery: "ghee", PriceMinor: 0, Platform: "a"},
			"b": {ItemQuery: "ghee", PriceMinor: 0, Platform: "b", Availability: domain.AvailabilityError},
		},
	}

	best := compare.BestAcross(matrix, []domain.Platform{"a", "b"})
	if _, ok := best["ghee"]; ok {
		t.Fatalf("zero-price offers must never be selected")
	}
}

// При равных ценах побеждает платформа, стоящая раньше в порядке реестра.
func TestBestAcross_EqualPrice_RegistryOrderWins(t *testing.T) {
	t.Parallel()

	matrix := map[string]map[domain.Platform]domain.Offer{
		"rice": {
			"b": {ItemQuery: "rice", PriceMinor: 500, Platform: "b"},
			"a": {ItemQuery: "rice", PriceMinor: 500, Platform: "a"},
		},
	}

	best := compare.BestAcross(matrix, []domain.Platform{"a", "b"})
	if best["rice"].Platform != "a" {
		t.Fatalf("registry order must break the tie, got %+v", best["rice"])
	}
}
