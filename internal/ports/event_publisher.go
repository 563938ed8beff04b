package ports

import (
	"context"

	"github.com/quickcart/quickcart/internal/domain"
)

// OrderEventPublisher — публикация событий жизненного цикла заказов
// во внешнюю шину. Ошибка публикации не должна ломать основной поток.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
	Close() error
}
