// Пакет browser — адаптер браузерной автоматизации поверх chromedp.
// Реализует ports.Browser/ports.BrowserSession: один аллокатор Chrome на
// процесс, изолированная вкладка на каждую сессию.
package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/internal/scrape"
)

// Селекторы интерактивных элементов платформ. Best-effort по подстроке
// класса: точной верстки у платформ нет, и она меняется.
const (
	searchInputSelector = "input[type='search'], input[placeholder*='Search'], input[name*='search']"
	addToCartSelector   = "button[class*='add'], button[class*='cart'], .add-to-cart"
	cartSelector        = ".cart, .checkout, [class*='cart-icon']"
	cartItemSelector    = ".cart-item, [class*='cart-item']"
	checkoutSelector    = "button[class*='checkout'], .checkout-button, .proceed-to-checkout"
	confirmSelector     = "button[class*='order'], button[class*='buy'], button[class*='confirm'], .place-order"
	loginSelector       = "button[class*='login'], a[class*='login']"
)

const defaultWaitTimeout = 12 * time.Second

// Config — параметры запуска Chrome.
type Config struct {
	Headless    bool
	NoSandbox   bool   // обязательно в Docker под root
	RemoteURL   string // DevTools URL внешнего Chrome; пусто — локальный запуск
	WaitTimeout time.Duration
}

// Chrome — фабрика браузерных сессий с общим аллокатором.
type Chrome struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	log         ports.Logger
	waitTimeout time.Duration
}

// NewChrome — настроенный аллокатор; сам браузер поднимается лениво,
// при первой сессии.
func NewChrome(cfg Config, log ports.Logger) *Chrome {
	waitTimeout := cfg.WaitTimeout
	if waitTimeout <= 0 {
		waitTimeout = defaultWaitTimeout
	}

	c := &Chrome{log: log, waitTimeout: waitTimeout}

	if cfg.RemoteURL != "" {
		c.allocCtx, c.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return c
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	c.allocCtx, c.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return c
}

// NewSession — новая вкладка. Закрывать обязан вызывающий.
func (c *Chrome) NewSession(ctx context.Context) (ports.BrowserSession, error) {
	tabCtx, cancel := chromedp.NewContext(c.allocCtx)

	// Пустой Run поднимает браузер и валидирует вкладку до начала работы.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("start chrome tab: %w", err)
	}
	return &session{
		tabCtx:      tabCtx,
		cancel:      cancel,
		log:         c.log,
		waitTimeout: c.waitTimeout,
	}, nil
}

// Close — останавливает аллокатор и связанный с ним браузер.
func (c *Chrome) Close() error {
	c.allocCancel()
	return nil
}

type session struct {
	tabCtx      context.Context
	cancel      context.CancelFunc
	log         ports.Logger
	waitTimeout time.Duration
}

// run — выполняет действия во вкладке, перенося дедлайн вызывающего
// контекста на контекст chromedp.
func (s *session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx := s.tabCtx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(runCtx, deadline)
		defer cancel()
	}
	return chromedp.Run(runCtx, actions...)
}

func (s *session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
}

// EnsureLoggedIn — проверка авторизации. Сессия пользователя живёт в
// профиле браузера; видимая кнопка логина означает, что профиля нет и
// автоматизация дальше бессмысленна.
func (s *session) EnsureLoggedIn(ctx context.Context, userID string) error {
	var loginButtons []*cdp.Node
	if err := s.run(ctx,
		chromedp.Nodes(loginSelector, &loginButtons, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	); err != nil {
		return fmt.Errorf("probe login state: %w", err)
	}
	if len(loginButtons) > 0 {
		return fmt.Errorf("user %s is not logged in", userID)
	}
	s.log.Debugf(ctx, "session authenticated for user %s", userID)
	return nil
}

// HarvestOffers — дождаться карточек на странице поиска и разобрать
// отрисованный HTML теми же правилами, что и резервная HTTP-ветка.
func (s *session) HarvestOffers(ctx context.Context, profile registry.PlatformProfile, query string) ([]domain.Offer, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	defer cancel()

	var html string
	err := s.run(waitCtx,
		chromedp.Navigate(profile.SearchPageURL(query)),
		chromedp.WaitVisible(scrape.FallbackCardSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("harvest %s %q: %w", profile.Name, query, err)
	}
	return scrape.ParseSearchHTML(strings.NewReader(html), profile, profile.SearchPageURL(query), 0)
}

func (s *session) SubmitSearch(ctx context.Context, term string) error {
	return s.run(ctx,
		chromedp.WaitVisible(searchInputSelector, chromedp.ByQuery),
		chromedp.Clear(searchInputSelector, chromedp.ByQuery),
		chromedp.SendKeys(searchInputSelector, term+kb.Enter, chromedp.ByQuery),
		chromedp.WaitReady("body"),
	)
}

func (s *session) OpenFirstResult(ctx context.Context) error {
	return s.run(ctx,
		chromedp.WaitVisible(scrape.FallbackCardSelector, chromedp.ByQuery),
		chromedp.Click(scrape.FallbackCardSelector, chromedp.ByQuery),
	)
}

func (s *session) AddToCart(ctx context.Context) error {
	return s.run(ctx,
		chromedp.WaitVisible(addToCartSelector, chromedp.ByQuery),
		chromedp.Click(addToCartSelector, chromedp.ByQuery),
	)
}

func (s *session) CartItemCount(ctx context.Context) (int, error) {
	var items []*cdp.Node
	err := s.run(ctx,
		chromedp.Click(cartSelector, chromedp.ByQuery),
		chromedp.WaitReady("body"),
		chromedp.Nodes(cartItemSelector, &items, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	)
	if err != nil {
		return 0, fmt.Errorf("open cart: %w", err)
	}
	return len(items), nil
}

func (s *session) Checkout(ctx context.Context) error {
	return s.run(ctx,
		chromedp.WaitVisible(checkoutSelector, chromedp.ByQuery),
		chromedp.Click(checkoutSelector, chromedp.ByQuery),
	)
}

func (s *session) ConfirmOrder(ctx context.Context) error {
	return s.run(ctx,
		chromedp.WaitVisible(confirmSelector, chromedp.ByQuery),
		chromedp.Click(confirmSelector, chromedp.ByQuery),
	)
}

func (s *session) Close() error {
	s.cancel()
	return nil
}
