package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calckit/numerics/internal/api/middleware"
	"github.com/calckit/numerics/internal/infrastructure/monitoring"
	"github.com/calckit/numerics/internal/service"
	"github.com/calckit/numerics/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
	}
}

// Root handles the basic liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Numerics Service (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snapshot := h.metrics.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"uptime_seconds":   h.metrics.UptimeSeconds(),
		"requests_total":   snapshot.TotalRequests,
		"errors_total":     snapshot.TotalErrors,
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Intent, limit)

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// ExecuteService runs a single tool and reports its result
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appCtx := req.Context
	if appCtx == nil {
		appCtx = &types.Context{}
	}
	if appCtx.RequestID == nil {
		if id := c.GetString(middleware.RequestIDKey); id != "" {
			appCtx.RequestID = &id
		}
	}

	timer := monitoring.NewTimer(h.metrics, "registry", req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError("registry", req.ToolID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
		h.metrics.RecordToolError("registry", req.ToolID)
	}

	c.JSON(http.StatusOK, result)
}
