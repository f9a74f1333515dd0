package routes

import (
	"pede_ai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPixGateway = "/pix-gateway"
	PathPixWebhook = "/pix-webhook"
	PathOrders     = "/orders"
)

func addPaymentRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixGatewayHandler, webhookHandler *handlers.WebhookHandler) {
	// Checkout calls the gateway route once per order (or again when the
	// customer asks for a fresh code); providers call the webhook route.
	rg.POST(PathPixGateway, pixHandler.CreatePixPayment)
	rg.POST(PathPixWebhook, webhookHandler.HandleStatusUpdate)
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}
}
