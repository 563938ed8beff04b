// Пакет usecase — прикладная логика движка: сравнение цен, решение об
// автозаказе, ручное оформление и проверка статуса. Транспорта не знает.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/recommend"
	"github.com/quickcart/quickcart/pkg/validate"
)

// Decision — исход квик-заказа.
type Decision string

const (
	DecisionAutoOrdered      Decision = "auto_ordered"
	DecisionAwaitingApproval Decision = "awaiting_approval"
	DecisionFailed           Decision = "failed"
)

// offerComparer — зависимость на кросс-платформенное сравнение:
// лучший доступный оффер на каждый товар.
type offerComparer interface {
	BestOffers(ctx context.Context, items []string) map[string]domain.Offer
}

// Preferences — пользовательские предпочтения запроса; nil-поля
// означают значения по умолчанию из конфигурации.
type Preferences struct {
	AutoOrder             *bool
	SavingsThresholdMinor *int64
}

// QuickOrderResult — полный исход одного прогона: рекомендация, решение
// и, при автозаказе, размещённый заказ.
type QuickOrderResult struct {
	Recommendation   *domain.Recommendation `json:"recommendation,omitempty"`
	Decision         Decision               `json:"decision"`
	Order            *domain.Order          `json:"order,omitempty"`
	FailureReason    string                 `json:"failure_reason,omitempty"`
	TimeSavedMinutes int                    `json:"time_saved_minutes,omitempty"`
}

// QuickOrderService — оркестратор движка.
type QuickOrderService struct {
	comparer  offerComparer
	builder   *recommend.Builder
	placer    ports.OrderPlacer
	ledger    ports.OrderLedger
	publisher ports.OrderEventPublisher
	log       ports.Logger

	compareDeadline  time.Duration
	defaultThreshold int64
	platformCount    int
}

// NewQuickOrderService — DI-конструктор.
func NewQuickOrderService(
	comparer offerComparer,
	builder *recommend.Builder,
	placer ports.OrderPlacer,
	ledger ports.OrderLedger,
	publisher ports.OrderEventPublisher,
	log ports.Logger,
	compareDeadline time.Duration,
	defaultThresholdMinor int64,
	platformCount int,
) *QuickOrderService {
	if compareDeadline <= 0 {
		compareDeadline = 90 * time.Second
	}
	return &QuickOrderService{
		comparer:         comparer,
		builder:          builder,
		placer:           placer,
		ledger:           ledger,
		publisher:        publisher,
		log:              log,
		compareDeadline:  compareDeadline,
		defaultThreshold: defaultThresholdMinor,
		platformCount:    platformCount,
	}
}

// QuickOrder — главный сценарий: сравнить цены по всем платформам,
// собрать рекомендацию и, если экономия проходит порог и автозаказ
// разрешён, разместить заказ на лучшей платформе.
//
// Ошибка возвращается только на невалидном запросе; бизнес-исходы
// (ничего не найдено, заказ не разместился) выражаются Decision.
func (s *QuickOrderService) QuickOrder(ctx context.Context, items []string, userID string, prefs Preferences) (*QuickOrderResult, error) {
	items, err := validate.Items(items)
	if err != nil {
		return nil, err
	}
	if err := validate.UserID(userID); err != nil {
		return nil, err
	}

	compareCtx, cancel := context.WithTimeout(ctx, s.compareDeadline)
	defer cancel()

	start := time.Now()
	best := s.comparer.BestOffers(compareCtx, items)
	s.log.Infof(ctx, "comparison done: items=%d resolved=%d took=%s", len(items), len(best), time.Since(start))

	rec, err := s.builder.Build(best, items)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return &QuickOrderResult{
				Decision:      DecisionFailed,
				FailureReason: "no items available on any platform",
			}, nil
		}
		return nil, err
	}

	result := &QuickOrderResult{
		Recommendation:   rec,
		TimeSavedMinutes: estimateTimeSaved(len(items), s.platformCount),
	}

	threshold := s.defaultThreshold
	if prefs.SavingsThresholdMinor != nil {
		threshold = *prefs.SavingsThresholdMinor
	}
	autoOrder := true
	if prefs.AutoOrder != nil {
		autoOrder = *prefs.AutoOrder
	}

	if !autoOrder || !recommend.ShouldAutoApprove(rec, threshold) {
		result.Decision = DecisionAwaitingApproval
		s.log.Infof(ctx, "awaiting approval: savings_minor=%d threshold_minor=%d auto_order=%t",
			rec.SavingsMinor, threshold, autoOrder)
		return result, nil
	}

	bucket := rec.Buckets[rec.BestPlatform]
	order, err := s.placer.PlaceOrder(ctx, rec.BestPlatform, bucket.Offers, userID)
	if err != nil {
		// Заказ не состоялся — в журнал ничего не пишем.
		s.log.Errorf(ctx, "auto order failed: platform=%s err=%v", rec.BestPlatform, err)
		result.Decision = DecisionFailed
		result.FailureReason = err.Error()
		return result, nil
	}

	s.recordAndAnnounce(ctx, order, domain.EventOrderPlaced)

	result.Decision = DecisionAutoOrdered
	result.Order = order
	return result, nil
}

// PlaceOrder — ручное оформление на выбранной платформе (после
// awaiting_approval либо напрямую).
func (s *QuickOrderService) PlaceOrder(ctx context.Context, platform domain.Platform, items []string, userID string) (*domain.Order, error) {
	items, err := validate.Items(items)
	if err != nil {
		return nil, err
	}
	if err := validate.UserID(userID); err != nil {
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(items))
	for _, item := range items {
		offers = append(offers, domain.Offer{ItemQuery: item, Platform: platform})
	}

	order, err := s.placer.PlaceOrder(ctx, platform, offers, userID)
	if err != nil {
		return nil, fmt.Errorf("place order on %s: %w", platform, err)
	}

	s.recordAndAnnounce(ctx, order, domain.EventOrderPlaced)
	return order, nil
}

// OrderStatus — статус заказа по паре (orderID, userID). Каждая проверка
// продвигает симулированный статус на шаг (placed → out_for_delivery →
// delivered); возвращается состояние после продвижения.
func (s *QuickOrderService) OrderStatus(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	if err := validate.UserID(userID); err != nil {
		return nil, err
	}

	order, err := s.ledger.Status(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	advanced, err := s.ledger.Advance(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if advanced.Status != order.Status {
		s.announce(ctx, advanced, domain.EventStatusChanged)
	}
	return advanced, nil
}

// recordAndAnnounce — журнал + событие; сбой любого из них не ломает
// основной поток.
func (s *QuickOrderService) recordAndAnnounce(ctx context.Context, order *domain.Order, eventType string) {
	if err := s.ledger.Record(ctx, order); err != nil {
		s.log.Warnf(ctx, "ledger record failed order_id=%s err=%v", order.OrderID, err)
	}
	s.announce(ctx, order, eventType)
}

func (s *QuickOrderService) announce(ctx context.Context, order *domain.Order, eventType string) {
	event := domain.OrderEvent{
		Type:             eventType,
		OrderID:          order.OrderID,
		Platform:         order.Platform,
		UserID:           order.UserID,
		Status:           order.Status,
		TotalAmountMinor: order.TotalAmountMinor,
		At:               time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warnf(ctx, "event publish failed type=%s order_id=%s err=%v", eventType, order.OrderID, err)
	}
}

// estimateTimeSaved — грубая оценка сэкономленного времени: ~3 минуты
// ручного сравнения на пару товар×платформа, не более двух часов.
func estimateTimeSaved(items, platforms int) int {
	est := 3 * items * platforms
	if est > 120 {
		return 120
	}
	return est
}
