package handlers

import (
	"errors"
	"net/http"

	"tutoria/middleware"
	"tutoria/models"
	"tutoria/services/payment"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves fee payment endpoints.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}

// CreatePaymentIntentHandler handles POST /api/payments/intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.PaymentService.CreateIntent(c.GetString(middleware.CtxAccountID), req)
	if err != nil {
		utils.GetLogger().Error("Payment intent creation failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ConfirmPaymentHandler handles POST /api/payments/:id/confirm.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	confirmed, err := h.PaymentService.ConfirmIntent(c.GetString(middleware.CtxAccountID), c.Param("id"))
	if err != nil {
		if errors.Is(err, payment.ErrNotPaid) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

// RecordCashPaymentHandler handles POST /api/payments/cash (staff only).
func (h *PaymentHandler) RecordCashPaymentHandler(c *gin.Context) {
	var req models.CashPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recorded, err := h.PaymentService.RecordCashPayment(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recorded)
}

// ListPaymentHistoryHandler handles GET /api/payments.
func (h *PaymentHandler) ListPaymentHistoryHandler(c *gin.Context) {
	history, err := h.PaymentService.History(c.GetString(middleware.CtxAccountID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
