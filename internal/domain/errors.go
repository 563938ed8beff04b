package domain

import "errors"

// Таксономия ошибок движка. Частные сбои внутри сравнения в ошибки
// не превращаются (см. ErrorOffer) — здесь только то, что доходит
// до вызывающего кода.
var (
	// ErrPlatformUnavailable — обе ветки поиска (браузер и HTTP) отказали.
	ErrPlatformUnavailable = errors.New("platform unavailable")

	// ErrItemNotFound — кандидатов нет, либо ни один товар не удалось
	// добавить в корзину.
	ErrItemNotFound = errors.New("item not found")

	// ErrVerificationMismatch — видимых позиций в корзине меньше,
	// чем было успешно добавлено; состоянию корзины доверять нельзя.
	ErrVerificationMismatch = errors.New("cart verification mismatch")

	// ErrStepTimeout — шаг автоматизации не уложился в отведённое время.
	ErrStepTimeout = errors.New("automation step timeout")

	// ErrOrderNotFound — заказ не найден в леджере либо не принадлежит
	// указанному пользователю.
	ErrOrderNotFound = errors.New("order not found")
)
