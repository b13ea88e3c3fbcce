package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/types"
)

// PremiumHandler exposes the premium request lifecycle.
type PremiumHandler struct {
	premium service.IPremiumService
}

func NewPremiumHandler(premium service.IPremiumService) *PremiumHandler {
	return &PremiumHandler{premium: premium}
}

func (h *PremiumHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/premium-requests", h.Create)
	router.GET("/premium-requests", h.List)
	router.PUT("/premium-requests", h.Approve)
}

func (h *PremiumHandler) Create(c *gin.Context) {
	var req types.PremiumRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	request, err := h.premium.Request(c.Request.Context(), req.Email, req.BiodataID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBiodataNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile does not belong to this email"})
		case errors.Is(err, service.ErrRequestPending):
			c.JSON(http.StatusConflict, gin.H{"error": "premium request already pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create premium request"})
		}
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *PremiumHandler) List(c *gin.Context) {
	requests, err := h.premium.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list premium requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Approve runs the single authoritative premium transition for the
// owner named in the body.
func (h *PremiumHandler) Approve(c *gin.Context) {
	var req types.ApprovePremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.premium.Approve(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "premium request not found"})
			return
		}
		log.Printf("[PremiumHandler] approve for %s failed: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve premium request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "premium request approved"})
}
