package main

import (
	_ "sama-store/docs"
	"sama-store/internal/adapter/http/routes"
	"sama-store/internal/util"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SAMA Store API
// @version         1.0
// @description     Storefront backend (catalog, OTP phone verification, checkout, order tracking) backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	util.Init(
		util.GetenvDefault("APP_ENV", "development"),
		util.GetenvDefault("LOG_LEVEL", "info"),
		util.GetenvDefault("LOG_FORMAT", "json"),
	)
	defer util.Sync()

	routes.Run()
}
