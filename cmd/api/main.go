package main

import (
	_ "pede_ai/docs"
	"pede_ai/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pede Aí Payments API
// @version         1.0
// @description     PIX payment orchestration for the Pede Aí storefront (orders + gateway fallthrough + webhooks), backed by DynamoDB.

// @contact.name   API Support
// @contact.email  suporte@pedeai.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
