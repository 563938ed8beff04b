//go:generate mockgen -source=../browser.go         -destination=./mock_browser.go         -package=mocks
//go:generate mockgen -source=../fetcher.go         -destination=./mock_fetcher.go         -package=mocks
//go:generate mockgen -source=../offer_source.go    -destination=./mock_offer_source.go    -package=mocks
//go:generate mockgen -source=../order_placer.go    -destination=./mock_order_placer.go    -package=mocks
//go:generate mockgen -source=../order_ledger.go    -destination=./mock_order_ledger.go    -package=mocks
//go:generate mockgen -source=../event_publisher.go -destination=./mock_event_publisher.go -package=mocks

package mocks
