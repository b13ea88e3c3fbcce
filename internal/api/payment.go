package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/types"
)

// PaymentHandler delegates charge creation to the gateway and manages
// the payment audit trail.
type PaymentHandler struct {
	payments service.IPaymentService
}

func NewPaymentHandler(payments service.IPaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/payment-intent", h.CreateIntent)
	router.POST("/payments", h.Record)
	router.GET("/payments", h.List)
	router.DELETE("/payments/:id", h.Delete)
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req types.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, clientSecret, err := h.payments.CreateIntent(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrPaymentGateway) {
			log.Printf("[PaymentHandler] gateway failure: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"intent_id": id, "client_secret": clientSecret})
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req types.PaymentRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.payments.Record(c.Request.Context(), req.Email, req.BiodataID, req.Amount, req.IntentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *PaymentHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	records, err := h.payments.ListByPayer(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.payments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}
