package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации запроса.
var ErrInvalidRequest = errors.New("request validation failed")

// MaxItems — верхняя граница числа позиций в одном запросе.
const MaxItems = 25

// Items — нормализует и проверяет список товаров: обрезает пробелы,
// выбрасывает пустые строки, ограничивает длину списка.
// Возвращает ErrInvalidRequest (с обёрнутой причиной) при любой проблеме.
func Items(items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items не должен быть пустым", ErrInvalidRequest)
	}
	if len(items) > MaxItems {
		return nil, fmt.Errorf("%w: слишком много позиций (%d > %d)", ErrInvalidRequest, len(items), MaxItems)
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: все позиции пустые", ErrInvalidRequest)
	}
	return out, nil
}

// UserID — проверяет идентификатор пользователя.
func UserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user_id обязателен", ErrInvalidRequest)
	}
	return nil
}
