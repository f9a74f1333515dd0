package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pede_ai/internal/adapter/http/dto/request"
	response "pede_ai/internal/adapter/http/dto/response"
	"pede_ai/internal/usecase"
	"pede_ai/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous payment status notifications from
// the PIX providers.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleStatusUpdate applies a provider status notification to the order
// that carries the notified transaction id.
func (h *WebhookHandler) HandleStatusUpdate(c *gin.Context) {
	var payload request.PixWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pix][webhook-handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[pix][webhook-handler] notification received transaction_id=%s status=%s", payload.TransactionID, payload.Status)

	order, err := h.usecase.ProcessStatusUpdate(c.Request.Context(), payload.TransactionID, payload.Status)
	if err != nil {
		log.Printf("[pix][webhook-handler] processing failed transaction_id=%s err=%v", payload.TransactionID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
