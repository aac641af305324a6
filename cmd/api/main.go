package main

import (
	_ "agritrade/docs"
	"agritrade/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AgriTrade API
// @version         1.0
// @description     Produce batch lifecycle and trade engine (bidding, ownership ledger, retail settlement) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Caller identity resolved by the upstream identity service.

func main() {
	routes.Run()
}
