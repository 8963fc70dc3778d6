package routes

import (
	"log"
	"os"
	"strconv"

	_ "fluxo_notas/docs" // This will be auto-generated
	"fluxo_notas/internal/adapter/http/handlers"
	repository2 "fluxo_notas/internal/adapter/persistence/repository"
	storageadapter "fluxo_notas/internal/adapter/storage"
	"fluxo_notas/internal/domain/entities"
	"fluxo_notas/internal/domain/visibility"
	"fluxo_notas/internal/infrastructure/database"
	"fluxo_notas/internal/infrastructure/identity"
	"fluxo_notas/internal/infrastructure/payments"
	"fluxo_notas/internal/infrastructure/storage"
	"fluxo_notas/internal/usecase"
	"fluxo_notas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	notaRepo := repository2.NewNotaDynamoRepository(ddb)
	sessoes := usecase.NewSessaoManager(notaRepo)

	analistas := entities.ParseAnalistas(os.Getenv("ANALISTAS_NOMEADOS"))
	resolver := visibility.NewResolver(analistas)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured, faturamento will skip liquidação: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var attachmentStore interfaces.IAttachmentStore
	if bucket := os.Getenv("ANEXOS_BUCKET"); bucket != "" {
		attachmentStore = storageadapter.NewS3AttachmentStore(storage.ConnectS3(), bucket)
	} else {
		log.Printf("ANEXOS_BUCKET not set, anexo routes will answer 503")
	}

	actionsUseCase := usecase.NewNotaActionsUseCase(notaRepo, sessoes, paymentGateway, analistas)
	queryUseCase := usecase.NewNotaQueryUseCase(sessoes, resolver)
	anexoUseCase := usecase.NewAnexoUseCase(attachmentStore)

	notaHandler := handlers.NewNotaHandler(actionsUseCase, queryUseCase)
	anexoHandler := handlers.NewAnexoHandler(anexoUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Todas as rotas de notas exigem identidade nos cabeçalhos.
	v1.Use(identity.Middleware())
	addNotaRoutes(v1, notaHandler, anexoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
