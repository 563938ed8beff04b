package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/quickcart/quickcart/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ctxmeta.WithRequestID(context.Background(), "req-42")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-42" {
		t.Fatalf("want req-42, got %q ok=%v", got, ok)
	}
}

func TestRequestID_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	ctx := ctxmeta.WithRequestID(context.Background(), "")
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("empty request id must not be stored")
	}
}

func TestTraceIDs_AbsentWithoutSpan(t *testing.T) {
	t.Parallel()

	if _, ok := ctxmeta.TraceIDFromContext(context.Background()); ok {
		t.Fatalf("trace id must be absent without a span")
	}
	if _, ok := ctxmeta.SpanIDFromContext(context.Background()); ok {
		t.Fatalf("span id must be absent without a span")
	}
}
