// Пакет automation — драйвер оформления заказа: конечный автомат шагов
// браузерной сессии от открытия платформы до подтверждения заказа.
package automation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/registry"
	"github.com/quickcart/quickcart/pkg/metrics"
)

// State — состояние конечного автомата оформления.
type State string

const (
	StateInit         State = "init"
	StateNavigated    State = "navigated"
	StateLoggedIn     State = "logged_in"
	StateItemsAdded   State = "items_added"
	StateCartVerified State = "cart_verified"
	StateCheckedOut   State = "checked_out"
	StatePlaced       State = "placed"
	StateFailed       State = "failed" // поглощающее
)

const defaultStepTimeout = 10 * time.Second

// Driver — реализация ports.OrderPlacer поверх браузерной сессии.
// Каждый вызов PlaceOrder получает свежую сессию и закрывает её на
// любом пути выхода.
type Driver struct {
	browser     ports.Browser
	reg         *registry.Registry
	log         ports.Logger
	stepTimeout time.Duration
	now         func() time.Time
}

// NewDriver — DI-конструктор.
func NewDriver(browser ports.Browser, reg *registry.Registry, log ports.Logger, stepTimeout time.Duration) *Driver {
	if stepTimeout <= 0 {
		stepTimeout = defaultStepTimeout
	}
	return &Driver{
		browser:     browser,
		reg:         reg,
		log:         log,
		stepTimeout: stepTimeout,
		now:         time.Now,
	}
}

// PlaceOrder — прогон автомата оформления на платформе.
// Сбой добавления отдельного товара не фатален: заказ размещается на то,
// что удалось положить в корзину; ноль добавленных — domain.ErrItemNotFound.
func (d *Driver) PlaceOrder(ctx context.Context, platform domain.Platform, items []domain.Offer, userID string) (*domain.Order, error) {
	profile, ok := d.reg.Lookup(platform)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlatformUnavailable, platform)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty order", domain.ErrItemNotFound)
	}

	session, err := d.browser.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			d.log.Warnf(ctx, "close automation session: %v", cerr)
		}
	}()

	order, err := d.run(ctx, session, profile, items, userID)
	if err != nil {
		metrics.OrdersPlaced.WithLabelValues(string(platform), "failed").Inc()
		return nil, err
	}
	metrics.OrdersPlaced.WithLabelValues(string(platform), "placed").Inc()
	return order, nil
}

func (d *Driver) run(ctx context.Context, s ports.BrowserSession, profile registry.PlatformProfile, items []domain.Offer, userID string) (*domain.Order, error) {
	state := StateInit

	// Навигация и логин фатальны: без них платформа недоступна.
	if err := d.step(ctx, "navigate", func(c context.Context) error {
		return s.Navigate(c, profile.BaseURL)
	}); err != nil {
		return nil, d.fail(ctx, profile.Name, state, "navigate", err)
	}
	state = StateNavigated

	if err := d.step(ctx, "login", func(c context.Context) error {
		return s.EnsureLoggedIn(c, userID)
	}); err != nil {
		return nil, d.fail(ctx, profile.Name, state, "login", err)
	}
	state = StateLoggedIn

	added := d.addItems(ctx, s, profile.Name, items)
	if len(added) == 0 {
		return nil, d.fail(ctx, profile.Name, state, "add_items", domain.ErrItemNotFound)
	}
	state = StateItemsAdded

	// Верификация корзины: видимых позиций должно быть не меньше
	// успешно добавленных.
	var visible int
	if err := d.step(ctx, "verify_cart", func(c context.Context) (err error) {
		visible, err = s.CartItemCount(c)
		return err
	}); err != nil {
		return nil, d.fail(ctx, profile.Name, state, "verify_cart", err)
	}
	if visible < len(added) {
		err := fmt.Errorf("%w: added %d, cart shows %d", domain.ErrVerificationMismatch, len(added), visible)
		return nil, d.fail(ctx, profile.Name, state, "verify_cart", err)
	}
	state = StateCartVerified

	if err := d.step(ctx, "checkout", s.Checkout); err != nil {
		return nil, d.fail(ctx, profile.Name, state, "checkout", err)
	}
	state = StateCheckedOut

	if err := d.step(ctx, "confirm", s.ConfirmOrder); err != nil {
		return nil, d.fail(ctx, profile.Name, state, "confirm", err)
	}
	state = StatePlaced

	now := d.now()
	var total int64
	for _, o := range added {
		total += o.PriceMinor
	}
	order := &domain.Order{
		OrderID:           newOrderID(profile.Name, now),
		Platform:          profile.Name,
		UserID:            userID,
		Items:             added,
		TotalAmountMinor:  total,
		Status:            domain.StatusPlaced,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(time.Duration(profile.DeliveryMinutes) * time.Minute),
	}
	order.TrackingURL = profile.BaseURL + "/track/" + order.OrderID

	d.log.Infof(ctx, "order placed: id=%s platform=%s items=%d/%d total_minor=%d state=%s",
		order.OrderID, profile.Name, len(added), len(items), total, state)
	return order, nil
}

// addItems — поиск и добавление каждого товара; сбой одного товара
// не прерывает остальные.
func (d *Driver) addItems(ctx context.Context, s ports.BrowserSession, platform domain.Platform, items []domain.Offer) []domain.Offer {
	added := make([]domain.Offer, 0, len(items))
	for _, item := range items {
		err := d.step(ctx, "add_item", func(c context.Context) error {
			if err := s.SubmitSearch(c, item.ItemQuery); err != nil {
				return fmt.Errorf("submit search: %w", err)
			}
			if err := s.OpenFirstResult(c); err != nil {
				return fmt.Errorf("open result: %w", err)
			}
			if err := s.AddToCart(c); err != nil {
				return fmt.Errorf("add to cart: %w", err)
			}
			return nil
		})
		if err != nil {
			d.log.Warnf(ctx, "skip item %q on %s: %v", item.ItemQuery, platform, err)
			continue
		}
		added = append(added, item)
	}
	return added
}

// step — один шаг автомата со своим таймаутом. Превышение — ErrStepTimeout.
func (d *Driver) step(ctx context.Context, name string, fn func(context.Context) error) error {
	stepCtx, cancel := context.WithTimeout(ctx, d.stepTimeout)
	defer cancel()

	err := fn(stepCtx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", domain.ErrStepTimeout, name)
	}
	return err
}

func (d *Driver) fail(ctx context.Context, platform domain.Platform, from State, step string, err error) error {
	d.log.Errorf(ctx, "automation failed: platform=%s state=%s->%s step=%s: %v",
		platform, from, StateFailed, step, err)
	return fmt.Errorf("step %s: %w", step, err)
}

// newOrderID — <платформа>_<YYYYMMDD_HHMMSS>_<8 символов uuid>.
func newOrderID(platform domain.Platform, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s", platform, now.Format("20060102_150405"), uuid.NewString()[:8])
}
