package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pede_ai/internal/adapter/http/dto/request"
	response "pede_ai/internal/adapter/http/dto/response"
	"pede_ai/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PixGatewayHandler handles HTTP requests for PIX payment-intent creation.
//
// Error bodies on this route follow the public storefront contract
// ({"error": ...}) instead of the back-office AppError shape: the checkout
// client matches on these exact strings.

type PixGatewayHandler struct {
	usecase usecase.IPixGatewayUseCase
}

func NewPixGatewayHandler(uc usecase.IPixGatewayUseCase) *PixGatewayHandler {
	return &PixGatewayHandler{usecase: uc}
}

// CreatePixPayment runs one orchestration attempt for the given order.
func (h *PixGatewayHandler) CreatePixPayment(c *gin.Context) {
	var payload request.PixGatewayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pix][handler] invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	log.Printf("[pix][handler] create start order_id=%s amount=%.2f", payload.OrderID, payload.Amount)

	result, err := h.usecase.CreatePixPayment(c.Request.Context(), usecase.CreatePixPaymentInput{
		OrderID:     payload.OrderID,
		Amount:      payload.Amount,
		Customer:    payload.ToCustomer(),
		Description: payload.Description,
	})
	if err != nil {
		log.Printf("[pix][handler] create failed order_id=%s err=%v", payload.OrderID, err)
		writePixGatewayError(c, err)
		return
	}

	log.Printf("[pix][handler] create success order_id=%s gateway=%s transaction_id=%s", payload.OrderID, result.Gateway, result.TransactionID)
	c.JSON(http.StatusOK, response.FromPixPaymentResult(result))
}

func writePixGatewayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	case errors.Is(err, usecase.ErrGatewaySettingsUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gateway settings"})
	case errors.Is(err, usecase.ErrNoGatewayAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "No gateway available",
			"message": "Nenhum gateway de pagamento disponível no momento. Tente novamente ou entre em contato com a loja para pagar manualmente.",
		})
	case errors.Is(err, usecase.ErrPixPaymentNotPersisted):
		// The provider holds a live intent the store has no record of;
		// this must stay distinguishable from "no gateway available".
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to persist payment intent",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
