package routes

import (
	"log"
	"os"
	"strconv"

	_ "agritrade/docs" // This will be auto-generated
	"agritrade/internal/adapter/http/handlers"
	repository2 "agritrade/internal/adapter/persistence/repository"
	"agritrade/internal/infrastructure/database"
	"agritrade/internal/infrastructure/identity"
	"agritrade/internal/infrastructure/payments"
	"agritrade/internal/usecase"
	"agritrade/internal/usecase/interfaces"

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

	batchRepo := repository2.NewBatchDynamoRepository(ddb)
	paymentRepo := repository2.NewRetailPaymentDynamoRepository(ddb)
	registry := identity.NewPassthroughRoleRegistry()

	var paymentGateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		paymentGateway = rzpGateway
	}

	batchUseCase := usecase.NewBatchUseCase(batchRepo, registry)
	biddingUseCase := usecase.NewBiddingUseCase(batchRepo, registry)
	retailUseCase := usecase.NewRetailUseCase(batchRepo, paymentRepo, paymentGateway, registry)

	batchHandler := handlers.NewBatchHandler(batchUseCase)
	biddingHandler := handlers.NewBiddingHandler(biddingUseCase)
	retailHandler := handlers.NewRetailHandler(retailUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTradeRoutes(v1, batchHandler, biddingHandler, retailHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
