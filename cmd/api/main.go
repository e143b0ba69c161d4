package main

import (
	_ "magazin_online/docs"
	"magazin_online/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Magazin Online Payments API
// @version         1.0
// @description     Shop backend for MAIB eCommerce payments (sessions, status, refunds, callbacks) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
