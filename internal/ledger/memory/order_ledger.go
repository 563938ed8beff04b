// Пакет memory — журнал заказов в памяти: ограниченная вместимость,
// FIFO-вытеснение старейшей записи. Персистентного хранилища у движка
// нет, история живёт ровно столько, сколько живёт процесс.
package memory

import (
	"container/list"
	"context"
	"sync"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/pkg/metrics"
)

const defaultCapacity = 100

type entry struct {
	id    string
	order *domain.Order
}

// OrderLedger — потокобезопасный FIFO-журнал заказов.
// Наружу отдаются только копии: мутации проходят исключительно
// через Advance.
type OrderLedger struct {
	capacity int

	ll    *list.List // front — новейший, back — старейший
	index map[string]*list.Element

	mu sync.Mutex
}

// NewOrderLedger — журнал на capacity записей.
func NewOrderLedger(capacity int) *OrderLedger {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &OrderLedger{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Record — записать заказ. Повторная запись того же id перезаписывает
// содержимое без изменения позиции в очереди вытеснения. Переполнение
// вытесняет старейшую запись.
func (l *OrderLedger) Record(_ context.Context, order *domain.Order) error {
	if order == nil || order.OrderID == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if elem, ok := l.index[order.OrderID]; ok {
		elem.Value.(*entry).order = cloneOrder(order)
		metrics.LedgerOps.WithLabelValues("rewrite").Inc()
		return nil
	}

	elem := l.ll.PushFront(&entry{id: order.OrderID, order: cloneOrder(order)})
	l.index[order.OrderID] = elem

	if l.ll.Len() > l.capacity {
		l.evictOldest()
	}

	metrics.LedgerOps.WithLabelValues("record").Inc()
	metrics.LedgerSize.Set(float64(len(l.index)))
	return nil
}

// Status — заказ по паре (orderID, userID). Несовпадение владельца
// неотличимо снаружи от отсутствия заказа.
func (l *OrderLedger) Status(_ context.Context, orderID, userID string) (*domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	elem, ok := l.index[orderID]
	if !ok {
		metrics.LedgerOps.WithLabelValues("miss").Inc()
		return nil, domain.ErrOrderNotFound
	}
	ent := elem.Value.(*entry)
	if ent.order.UserID != userID {
		metrics.LedgerOps.WithLabelValues("miss").Inc()
		return nil, domain.ErrOrderNotFound
	}

	metrics.LedgerOps.WithLabelValues("hit").Inc()
	return cloneOrder(ent.order), nil
}

// Advance — продвинуть статус заказа на шаг симуляции; терминальные
// статусы остаются как есть. Возвращается копия после продвижения.
func (l *OrderLedger) Advance(_ context.Context, orderID string) (*domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	elem, ok := l.index[orderID]
	if !ok {
		metrics.LedgerOps.WithLabelValues("miss").Inc()
		return nil, domain.ErrOrderNotFound
	}
	ent := elem.Value.(*entry)
	ent.order.Status = ent.order.Status.NextStatus()

	metrics.LedgerOps.WithLabelValues("advance").Inc()
	return cloneOrder(ent.order), nil
}

// Len — текущее число записей.
func (l *OrderLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ll.Len()
}

func (l *OrderLedger) evictOldest() {
	back := l.ll.Back()
	if back == nil {
		return
	}
	l.ll.Remove(back)
	delete(l.index, back.Value.(*entry).id)
	metrics.LedgerOps.WithLabelValues("evict").Inc()
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = append([]domain.Offer(nil), o.Items...)
	return &cp
}
