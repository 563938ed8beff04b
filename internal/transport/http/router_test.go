package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quickcart/quickcart/internal/domain"
	rest "github.com/quickcart/quickcart/internal/transport/http"
	"github.com/quickcart/quickcart/internal/usecase"
	"github.com/quickcart/quickcart/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeApp — подмена прикладного слоя с программируемыми ответами.
type fakeApp struct {
	quickOrderFn  func(ctx context.Context, items []string, userID string, prefs usecase.Preferences) (*usecase.QuickOrderResult, error)
	placeOrderFn  func(ctx context.Context, platform domain.Platform, items []string, userID string) (*domain.Order, error)
	orderStatusFn func(ctx context.Context, orderID, userID string) (*domain.Order, error)
}

func (f *fakeApp) QuickOrder(ctx context.Context, items []string, userID string, prefs usecase.Preferences) (*usecase.QuickOrderResult, error) {
	return f.quickOrderFn(ctx, items, userID, prefs)
}

func (f *fakeApp) PlaceOrder(ctx context.Context, platform domain.Platform, items []string, userID string) (*domain.Order, error) {
	return f.placeOrderFn(ctx, platform, items, userID)
}

func (f *fakeApp) OrderStatus(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	return f.orderStatusFn(ctx, orderID, userID)
}

func newTestRouter(app *fakeApp) http.Handler {
	return rest.NewRouter(rest.NewHandler(app, noopLogger{}), "test", "")
}

func TestQuickOrder_OK(t *testing.T) {
	app := &fakeApp{
		quickOrderFn: func(_ context.Context, items []string, userID string, prefs usecase.Preferences) (*usecase.QuickOrderResult, error) {
			if len(items) != 2 || userID != "u1" {
				t.Fatalf("request not passed through: items=%v user=%s", items, userID)
			}
			if prefs.SavingsThresholdMinor == nil || *prefs.SavingsThresholdMinor != 3000 {
				t.Fatalf("preferences not passed through: %+v", prefs)
			}
			return &usecase.QuickOrderResult{
				Decision:       usecase.DecisionAutoOrdered,
				Recommendation: &domain.Recommendation{BestPlatform: domain.PlatformZepto, TotalCostMinor: 10500},
				Order:          &domain.Order{OrderID: "zepto_x", Status: domain.StatusPlaced},
			}, nil
		},
	}

	body := `{"items":["tomatoes","milk"],"user_id":"u1","preferences":{"savings_threshold_minor":3000}}`
	req := httptest.NewRequest(http.MethodPost, "/quick-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got usecase.QuickOrderResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Decision != usecase.DecisionAutoOrdered || got.Order.OrderID != "zepto_x" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestQuickOrder_BadRequest(t *testing.T) {
	app := &fakeApp{
		quickOrderFn: func(context.Context, []string, string, usecase.Preferences) (*usecase.QuickOrderResult, error) {
			return nil, validate.ErrInvalidRequest
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/quick-order", strings.NewReader(`{"items":[],"user_id":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestQuickOrder_MalformedJSON(t *testing.T) {
	app := &fakeApp{
		quickOrderFn: func(context.Context, []string, string, usecase.Preferences) (*usecase.QuickOrderResult, error) {
			t.Fatalf("service must not be called on malformed json")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/quick-order", strings.NewReader(`{"items":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	app := &fakeApp{
		placeOrderFn: func(_ context.Context, platform domain.Platform, items []string, userID string) (*domain.Order, error) {
			if platform != domain.PlatformBlinkit {
				t.Fatalf("platform: %s", platform)
			}
			return &domain.Order{OrderID: "blinkit_x", Platform: platform, UserID: userID, Status: domain.StatusPlaced}, nil
		},
	}

	body := `{"platform":"blinkit","items":["milk"],"user_id":"u1"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPlaceOrder_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validate.ErrInvalidRequest, http.StatusBadRequest},
		{"platform down", domain.ErrPlatformUnavailable, http.StatusBadGateway},
		{"nothing added", domain.ErrItemNotFound, http.StatusUnprocessableEntity},
		{"cart mismatch", domain.ErrVerificationMismatch, http.StatusConflict},
		{"internal", errors.New("chrome crashed"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := &fakeApp{
				placeOrderFn: func(context.Context, domain.Platform, []string, string) (*domain.Order, error) {
					return nil, tc.err
				},
			}

			body := `{"platform":"zepto","items":["milk"],"user_id":"u1"}`
			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newTestRouter(app).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("want %d, got %d, body=%s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestPlaceOrder_MissingPlatform(t *testing.T) {
	app := &fakeApp{}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":["milk"],"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestOrderStatus_OK(t *testing.T) {
	app := &fakeApp{
		orderStatusFn: func(_ context.Context, orderID, userID string) (*domain.Order, error) {
			if orderID != "zepto_x" || userID != "u1" {
				t.Fatalf("params not passed: id=%s user=%s", orderID, userID)
			}
			return &domain.Order{OrderID: orderID, UserID: userID, Status: domain.StatusOutForDelivery}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/order/zepto_x?user_id=u1", http.NoBody)
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Status != domain.StatusOutForDelivery {
		t.Fatalf("status: %s", got.Status)
	}
}

func TestOrderStatus_NotFound(t *testing.T) {
	app := &fakeApp{
		orderStatusFn: func(context.Context, string, string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/order/missing?user_id=u1", http.NoBody)
	w := httptest.NewRecorder()
	newTestRouter(app).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	newTestRouter(&fakeApp{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("ping: code=%d body=%q", w.Code, w.Body.String())
	}
}
