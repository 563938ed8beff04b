package app_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/quickcart/quickcart/internal/app"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: srv,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
