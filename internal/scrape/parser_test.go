package scrape_test

import (
	"strings"
	"testing"

	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/internal/scrape"
)

func testProfile() registry.PlatformProfile {
	return registry.PlatformProfile{
		Name:      "testmart",
		BaseURL:   "https://testmart.example",
		SearchURL: "https://testmart.example/search",
		Selectors: registry.Selectors{
			ProductName:  ".product-name",
			Price:        ".price",
			Rating:       ".rating",
			Availability: ".availability",
		},
		DeliveryFeeMinor: 0,
		DeliveryMinutes:  10,
	}
}

func TestParseSearchHTML_PlatformSelectors(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="product">
			<span class="product-name">Amul Milk 500ml</span>
			<span class="price">₹45.50</span>
			<span class="rating">4.3 (120)</span>
			<span class="availability">In Stock</span>
			<img src="https://cdn.example/milk.jpg"/>
			<a href="https://testmart.example/p/milk"></a>
		</div>
	</body></html>`

	offers, err := scrape.ParseSearchHTML(strings.NewReader(html), testProfile(), "https://testmart.example/search?q=milk", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("want 1 offer, got %d", len(offers))
	}

	o := offers[0]
	if o.Name != "Amul Milk 500ml" {
		t.Fatalf("name: %q", o.Name)
	}
	// "₹45.50" → только цифры → 4550 минорных единиц.
	if o.PriceMinor != 4550 {
		t.Fatalf("price: want 4550, got %d", o.PriceMinor)
	}
	if o.Rating != 4.3 {
		t.Fatalf("rating: want 4.3, got %v", o.Rating)
	}
	if o.Availability != "In Stock" {
		t.Fatalf("availability: %q", o.Availability)
	}
	if o.ImageURL != "https://cdn.example/milk.jpg" {
		t.Fatalf("image url: %q", o.ImageURL)
	}
	if o.ProductURL != "https://testmart.example/p/milk" {
		t.Fatalf("product url: %q", o.ProductURL)
	}
}

// Платформенные селекторы промахнулись — работают подстраховочные
// селекторы по подстроке класса.
func TestParseSearchHTML_ClassSubstringFallback(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="item">
			<div class="item-name-v2">Fresh Tomatoes 1kg</div>
			<div class="sale-price-tag">Rs 60</div>
			<div class="star-rating-box">4.1</div>
			<div class="stock-label">Few left</div>
		</div>
	</body></html>`

	offers, err := scrape.ParseSearchHTML(strings.NewReader(html), testProfile(), "page-url", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("want 1 offer, got %d", len(offers))
	}

	o := offers[0]
	if o.Name != "Fresh Tomatoes 1kg" {
		t.Fatalf("name: %q", o.Name)
	}
	if o.PriceMinor != 60 {
		t.Fatalf("price: want 60, got %d", o.PriceMinor)
	}
	if o.Rating != 4.1 {
		t.Fatalf("rating: want 4.1, got %v", o.Rating)
	}
	if o.Availability != "Few left" {
		t.Fatalf("availability: %q", o.Availability)
	}
	// Ссылки в карточке нет — product_url указывает на страницу поиска.
	if o.ProductURL != "page-url" {
		t.Fatalf("product url: %q", o.ProductURL)
	}
}

// Карточка без имени и цены пропускается, разбор не прерывается.
func TestParseSearchHTML_SkipsMalformedCard(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="product"><span class="banner">ad</span></div>
		<div class="product">
			<span class="product-name">Bread</span>
			<span class="price">₹30</span>
		</div>
	</body></html>`

	offers, err := scrape.ParseSearchHTML(strings.NewReader(html), testProfile(), "u", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 || offers[0].Name != "Bread" {
		t.Fatalf("want only Bread, got %+v", offers)
	}
	// Отсутствующие поля — нейтральные значения.
	if offers[0].Rating != 0 {
		t.Fatalf("missing rating must default to 0, got %v", offers[0].Rating)
	}
}

func TestParseSearchHTML_CapsResults(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 30; i++ {
		sb.WriteString(`<div class="product"><span class="product-name">x</span><span class="price">10</span></div>`)
	}
	sb.WriteString("</body></html>")

	offers, err := scrape.ParseSearchHTML(strings.NewReader(sb.String()), testProfile(), "u", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 20 {
		t.Fatalf("want 20 offers (cap), got %d", len(offers))
	}
}
