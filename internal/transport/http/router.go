package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/location"
	"github.com/Gunvolt24/order-precheck/internal/ports"
	"github.com/Gunvolt24/order-precheck/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Handler struct {
	service        ports.PrecheckService
	log            ports.Logger
	handlerTimeout time.Duration // бюджет одного прогона; 0 — без ограничения
}

func NewHandler(service ports.PrecheckService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — сборка HTTP-маршрутов. otelServiceName непустой — включаем
// otelgin-трассировку входящих запросов.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/validate", h.validate)
	r.GET("/validations/:run_id", h.getRunByID)
	r.GET("/customers/:id/validations", h.listRunsByCustomer)

	return r
}

// validateRequest — тело POST /validate.
type validateRequest struct {
	CustomerID   string                 `json:"customerId" binding:"required"`
	ActiveOrders []domain.ActiveOrder   `json:"activeOrders"`
	Steps        []string               `json:"steps"`    // nil — план по умолчанию
	Location     *domain.LocationReport `json:"location"` // снимок геолокации устройства
	Options      validateOptions        `json:"options"`
	Extras       map[string]any         `json:"extras"`
}

type validateOptions struct {
	SkipCache    bool `json:"skipCache"`
	ForceRefresh bool `json:"forceRefresh"`
	HighAccuracy bool `json:"highAccuracy"`
}

// validateResponse — терминальный отчёт плюс решение по навигации.
type validateResponse struct {
	Report     *domain.RunReport `json:"report"`
	Navigation domain.Navigation `json:"navigation"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var steps []domain.Step
	if req.Steps != nil {
		steps = make([]domain.Step, 0, len(req.Steps))
		for _, name := range req.Steps {
			step, err := domain.ParseStep(name)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			steps = append(steps, step)
		}
	}

	ctx := c.Request.Context()
	if h.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.handlerTimeout)
		defer cancel()
	}

	report, nav, err := h.service.Validate(ctx, ports.ValidateInput{
		CustomerID:   req.CustomerID,
		ActiveOrders: req.ActiveOrders,
		Locator:      location.FromReport(req.Location),
		Steps:        steps,
		Extras:       req.Extras,
		SkipCache:    req.Options.SkipCache,
		ForceRefresh: req.Options.ForceRefresh,
		HighAccuracy: req.Options.HighAccuracy,
	})
	if err != nil {
		h.log.Errorf(c.Request.Context(), "Validate aborted customer_id=%s err=%v", req.CustomerID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "validation aborted"})
		return
	}

	c.JSON(http.StatusOK, validateResponse{Report: report, Navigation: nav})
}

func (h *Handler) getRunByID(c *gin.Context) {
	runID := c.Param("run_id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty run id"})
		return
	}
	report, err := h.service.RunByID(c.Request.Context(), runID)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "RunByID failed run_id=%s err=%v", runID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "validation run not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) listRunsByCustomer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty customer id"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)

	reports, err := h.service.RunsByCustomer(c.Request.Context(), id, limit, offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "RunsByCustomer failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if reports == nil {
		reports = []*domain.RunReport{}
	}
	c.JSON(http.StatusOK, reports)
}
