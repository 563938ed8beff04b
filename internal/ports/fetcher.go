package ports

import (
	"context"
	"io"
)

// PageFetcher — простая загрузка страницы для резервной ветки поиска
// (без рендеринга). Возвращённый reader закрывает вызывающая сторона.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
