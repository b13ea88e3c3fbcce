package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikahlink/backend/internal/middleware"
	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/service"
)

// StatsHandler serves the aggregate counts.
type StatsHandler struct {
	stats service.IStatsService
}

func NewStatsHandler(stats service.IStatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/stats", h.Public)
	protected.GET("/dashboard/stats", middleware.RequireRole(models.RoleAdmin), h.Dashboard)
}

func (h *StatsHandler) Public(c *gin.Context) {
	stats, err := h.stats.Public(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
