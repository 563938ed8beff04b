package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/quickcart/quickcart/config"
	"github.com/quickcart/quickcart/internal/browser"
	"github.com/quickcart/quickcart/internal/compare"
	"github.com/quickcart/quickcart/internal/recommend"
	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/internal/scrape"
	"github.com/quickcart/quickcart/pkg/logger"
	"github.com/quickcart/quickcart/pkg/metrics"
	"github.com/quickcart/quickcart/pkg/validate"
)

// CLI-приложение для разового сравнения цен без HTTP-сервера и заказа.
func main() {
	itemsFlag := flag.String("items", "", "comma-separated shopping list, e.g. \"milk,bread,tomatoes\"")
	asJSON := flag.Bool("json", false, "print the full recommendation as JSON")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	items, err := validate.Items(strings.Split(*itemsFlag, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: pricecheck -items \"milk,bread\" [-json]\n%v\n", err)
		os.Exit(2)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Compare.Deadline)
	defer cancel()

	reg := registry.MustDefault()
	chrome := browser.NewChrome(browser.Config{
		Headless:    cfg.Browser.Headless,
		NoSandbox:   cfg.Browser.NoSandbox,
		RemoteURL:   cfg.Browser.RemoteURL,
		WaitTimeout: cfg.Scrape.WaitTimeout,
	}, logg)
	defer func() { _ = chrome.Close() }()

	fetcher := scrape.NewHTTPFetcher(cfg.Scrape.FetchTimeout)
	gateway := scrape.NewGateway(chrome, fetcher, reg, logg, cfg.Scrape.MaxResults, cfg.Scrape.WaitTimeout)
	aggregator := compare.NewAggregator(gateway, reg, logg, cfg.Compare.PerPlatform)

	best := aggregator.BestOffers(ctx, items)
	rec, err := recommend.NewBuilder(reg).Build(best, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "comparison: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(rec.Summary)
	for _, bucket := range rec.Buckets {
		fmt.Printf("  %s (delivery ₹%s, ~%d min):\n",
			bucket.Platform, recommend.Rupees(bucket.DeliveryFeeMinor), bucket.DeliveryMinutes)
		for _, offer := range bucket.Offers {
			fmt.Printf("    %-30s ₹%s\n", offer.Name, recommend.Rupees(offer.PriceMinor))
		}
	}
}
