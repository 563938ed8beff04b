package recommend_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/recommend"
	"github.com/quickcart/quickcart/internal/registry"
)

func twoPlatformRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	profiles := []registry.PlatformProfile{
		{
			Name:            "platform_a",
			BaseURL:         "https://a.example",
			SearchURL:       "https://a.example/search",
			Selectors:       registry.Selectors{ProductName: ".name", Price: ".price"},
			DeliveryMinutes: 10,
		},
		{
			Name:             "platform_b",
			BaseURL:          "https://b.example",
			SearchURL:        "https://b.example/search",
			Selectors:        registry.Selectors{ProductName: ".name", Price: ".price"},
			DeliveryFeeMinor: 2000,
			DeliveryMinutes:  30,
		},
	}
	r, err := registry.New(profiles)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return r
}

// Помидоры дешевле на A (₹25, доставка бесплатно), молоко есть только
// на B (₹60, доставка ₹20): итог ₹105, экономия ₹55.
func TestBuild_SplitAcrossPlatforms(t *testing.T) {
	t.Parallel()

	best := map[string]domain.Offer{
		"tomatoes": {ItemQuery: "tomatoes", Name: "Tomatoes", PriceMinor: 2500, Platform: "platform_a"},
		"milk":     {ItemQuery: "milk", Name: "Milk", PriceMinor: 6000, Platform: "platform_b"},
	}

	rec, err := recommend.NewBuilder(twoPlatformRegistry(t)).Build(best, []string{"tomatoes", "milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.TotalCostMinor != 10500 {
		t.Fatalf("total: want 10500, got %d", rec.TotalCostMinor)
	}
	if rec.SavingsMinor != 5500 {
		t.Fatalf("savings: want 5500, got %d", rec.SavingsMinor)
	}
	if len(rec.Buckets) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(rec.Buckets))
	}
	if rec.Buckets["platform_b"].TotalMinor() != 8000 {
		t.Fatalf("bucket b total: want 8000, got %d", rec.Buckets["platform_b"].TotalMinor())
	}
	// По одному товару на платформу — ничья, побеждает порядок реестра.
	if rec.BestPlatform != "platform_a" {
		t.Fatalf("best platform: want platform_a, got %s", rec.BestPlatform)
	}
	if rec.DeliveryMinutes != 10 {
		t.Fatalf("delivery: want 10 (best platform), got %d", rec.DeliveryMinutes)
	}
	// Порядок офферов — порядок запроса.
	if rec.Offers[0].ItemQuery != "tomatoes" || rec.Offers[1].ItemQuery != "milk" {
		t.Fatalf("offer order: %+v", rec.Offers)
	}
}

func TestBuild_SinglePlatformNoSavings(t *testing.T) {
	t.Parallel()

	best := map[string]domain.Offer{
		"milk":  {ItemQuery: "milk", PriceMinor: 6000, Platform: "platform_b"},
		"bread": {ItemQuery: "bread", PriceMinor: 3000, Platform: "platform_b"},
	}

	rec, err := recommend.NewBuilder(twoPlatformRegistry(t)).Build(best, []string{"milk", "bread"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.SavingsMinor != 0 {
		t.Fatalf("single platform must yield zero savings, got %d", rec.SavingsMinor)
	}
	// Доставка платится один раз.
	if rec.TotalCostMinor != 11000 {
		t.Fatalf("total: want 11000, got %d", rec.TotalCostMinor)
	}
	if rec.BestPlatform != "platform_b" {
		t.Fatalf("best platform: %s", rec.BestPlatform)
	}
}

func TestBuild_MajorityWinsBestPlatform(t *testing.T) {
	t.Parallel()

	best := map[string]domain.Offer{
		"milk":  {ItemQuery: "milk", PriceMinor: 6000, Platform: "platform_b"},
		"bread": {ItemQuery: "bread", PriceMinor: 3000, Platform: "platform_b"},
		"eggs":  {ItemQuery: "eggs", PriceMinor: 7000, Platform: "platform_a"},
	}

	rec, err := recommend.NewBuilder(twoPlatformRegistry(t)).Build(best, []string{"milk", "bread", "eggs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BestPlatform != "platform_b" {
		t.Fatalf("majority platform must win, got %s", rec.BestPlatform)
	}
}

func TestBuild_SkipsUnresolvedItems(t *testing.T) {
	t.Parallel()

	best := map[string]domain.Offer{
		"milk": {ItemQuery: "milk", PriceMinor: 6000, Platform: "platform_a"},
	}

	rec, err := recommend.NewBuilder(twoPlatformRegistry(t)).Build(best, []string{"milk", "caviar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Offers) != 1 {
		t.Fatalf("unresolved item must be skipped: %+v", rec.Offers)
	}
	if !strings.Contains(rec.Summary, "items: 1/2") {
		t.Fatalf("summary must report coverage: %q", rec.Summary)
	}
}

func TestBuild_NothingFound(t *testing.T) {
	t.Parallel()

	_, err := recommend.NewBuilder(twoPlatformRegistry(t)).Build(nil, []string{"milk"})
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound, got %v", err)
	}
}

func TestSummary_Format(t *testing.T) {
	t.Parallel()

	best := map[string]domain.Offer{
		"tomatoes": {ItemQuery: "tomatoes", PriceMinor: 2500, Platform: "platform_a"},
		"milk":     {ItemQuery: "milk", PriceMinor: 6000, Platform: "platform_b"},
	}

	rec, err := recommend.NewBuilder(twoPlatformRegistry(t)).Build(best, []string{"tomatoes", "milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Best option: platform_a | items: 2/2 | total: ₹105.00 | savings: ₹55.00 | delivery: ~10 min"
	if rec.Summary != want {
		t.Fatalf("summary:\nwant %q\n got %q", want, rec.Summary)
	}
}

func TestRupees(t *testing.T) {
	t.Parallel()

	cases := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{4550, "45.50"},
		{10500, "105.00"},
	}
	for _, c := range cases {
		if got := recommend.Rupees(c.minor); got != c.want {
			t.Fatalf("Rupees(%d): want %q, got %q", c.minor, c.want, got)
		}
	}
}

func TestShouldAutoApprove(t *testing.T) {
	t.Parallel()

	rec := &domain.Recommendation{SavingsMinor: 5500}

	if !recommend.ShouldAutoApprove(rec, 5000) {
		t.Fatalf("savings above threshold must approve")
	}
	if !recommend.ShouldAutoApprove(rec, 5500) {
		t.Fatalf("savings equal to threshold must approve")
	}
	if recommend.ShouldAutoApprove(rec, 5501) {
		t.Fatalf("savings below threshold must not approve")
	}
	if recommend.ShouldAutoApprove(nil, 0) {
		t.Fatalf("nil recommendation must not approve")
	}
	// Порог растёт — решение может только уйти из «одобрено».
	approvedAt := func(th int64) bool { return recommend.ShouldAutoApprove(rec, th) }
	prev := approvedAt(0)
	for th := int64(1000); th <= 10000; th += 1000 {
		cur := approvedAt(th)
		if cur && !prev {
			t.Fatalf("approval must be monotone in threshold (flipped at %d)", th)
		}
		prev = cur
	}
}
