package main

import (
	_ "fluxo_notas/docs"
	"fluxo_notas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fluxo de Notas API
// @version         1.0
// @description     Fluxo de aprovação de notas de pagamento (fiscal + financeiro) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Identity
// @in header
// @name X-User-Id
// @description User identity headers (X-User-Id, X-User-Nome, X-User-Role).

func main() {
	routes.Run()
}
