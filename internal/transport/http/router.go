// Пакет rest — HTTP-слой движка: квик-заказ, ручное оформление и
// проверка статуса. Вся прикладная логика живёт в usecase.
package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/quickcart/quickcart/internal/domain"
	"github.com/quickcart/quickcart/internal/ports"
	"github.com/quickcart/quickcart/internal/usecase"
	"github.com/quickcart/quickcart/pkg/httpx"
	"github.com/quickcart/quickcart/pkg/validate"
)

// QuickOrderApp — контракт прикладного слоя, нужный HTTP-обработчикам.
type QuickOrderApp interface {
	QuickOrder(ctx context.Context, items []string, userID string, prefs usecase.Preferences) (*usecase.QuickOrderResult, error)
	PlaceOrder(ctx context.Context, platform domain.Platform, items []string, userID string) (*domain.Order, error)
	OrderStatus(ctx context.Context, orderID, userID string) (*domain.Order, error)
}

type Handler struct {
	service QuickOrderApp
	log     ports.Logger
}

func NewHandler(service QuickOrderApp, log ports.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func NewRouter(h *Handler, serviceName, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/quick-order", h.quickOrder)
	r.POST("/orders", h.placeOrder)
	r.GET("/order/:id", h.orderStatus)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

type quickOrderRequest struct {
	Items       []string `json:"items"`
	UserID      string   `json:"user_id"`
	Preferences struct {
		AutoOrder             *bool  `json:"auto_order"`
		SavingsThresholdMinor *int64 `json:"savings_threshold_minor"`
	} `json:"preferences"`
}

// POST /quick-order — сравнение цен по всем платформам и, при достаточной
// экономии, автозаказ на лучшей.
func (h *Handler) quickOrder(c *gin.Context) {
	var req quickOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}

	prefs := usecase.Preferences{
		AutoOrder:             req.Preferences.AutoOrder,
		SavingsThresholdMinor: req.Preferences.SavingsThresholdMinor,
	}

	result, err := h.service.QuickOrder(c.Request.Context(), req.Items, req.UserID, prefs)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(c.Request.Context(), "QuickOrder failed user_id=%s err=%v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type placeOrderRequest struct {
	Platform string   `json:"platform"`
	Items    []string `json:"items"`
	UserID   string   `json:"user_id"`
}

// POST /orders — ручное оформление на выбранной платформе.
func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}
	if req.Platform == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform is required"})
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), domain.Platform(req.Platform), req.Items, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrPlatformUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "platform unavailable"})
		case errors.Is(err, domain.ErrItemNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no items could be added to cart"})
		case errors.Is(err, domain.ErrVerificationMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "cart verification failed"})
		default:
			h.log.Errorf(c.Request.Context(), "PlaceOrder failed platform=%s err=%v", req.Platform, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /order/:id?user_id=... — статус заказа; каждая проверка двигает
// симулированный статус на шаг.
func (h *Handler) orderStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}
	userID := c.Query("user_id")

	order, err := h.service.OrderStatus(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			h.log.Errorf(c.Request.Context(), "OrderStatus failed id=%s err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}
