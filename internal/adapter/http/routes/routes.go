package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "pede_ai/docs" // generated swagger docs
	"pede_ai/internal/adapter/http/handlers"
	"pede_ai/internal/adapter/persistence/repository"
	"pede_ai/internal/infrastructure/database"
	"pede_ai/internal/infrastructure/gateways"
	"pede_ai/internal/infrastructure/monitoring"
	"pede_ai/internal/usecase"
	"pede_ai/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run starts the server.
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.Handler())

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	settingsRepo := repository.NewGatewaySettingsDynamoRepository(ddb)

	// Registration order is the default attempt order; the store's
	// primary_gateway setting only promotes one of these to the front.
	pixGateways := []interfaces.IPixGateway{
		monitoring.Instrument(gateways.NewProviderAGateway(os.Getenv("PROVIDER_A_BASE_URL"))),
		monitoring.Instrument(gateways.NewProviderBGateway(os.Getenv("PROVIDER_B_BASE_URL"))),
		monitoring.Instrument(gateways.NewMercadoPagoGateway()),
	}

	notificationURL := strings.TrimRight(getenvDefault("APP_BASE_URL", "http://localhost:8080"), "/") + "/pix-webhook"

	pixUseCase := usecase.NewPixGatewayUseCase(orderRepo, settingsRepo, notificationURL, pixGateways...)
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)

	pixHandler := handlers.NewPixGatewayHandler(pixUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	// Rotas publicas
	public := router.Group("/")
	addPingRoutes(public)
	addPaymentRoutes(public, pixHandler, webhookHandler)
	addOrderRoutes(public, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
