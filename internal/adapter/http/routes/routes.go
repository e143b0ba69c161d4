package routes

import (
	"log"
	_ "magazin_online/docs" // This will be auto-generated
	"magazin_online/internal/adapter/http/handlers"
	repository2 "magazin_online/internal/adapter/persistence/repository"
	"magazin_online/internal/infrastructure/database"
	"magazin_online/internal/infrastructure/payments"
	"magazin_online/internal/usecase"
	"strconv"

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

	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)
	statusCheckRepo := repository2.NewStatusCheckDynamoRepository(ddb)

	cfg := payments.ConfigFromEnv()
	log.Printf("[maib] configuration project_id=%s api=%s test_mode=%t", cfg.ProjectID, cfg.APIBaseURL, cfg.TestMode)
	gateway := payments.NewMaibGateway(cfg)

	paymentUseCase := usecase.NewPaymentUseCase(gateway, paymentRepo, cfg.SignatureKey)
	statusCheckUseCase := usecase.NewStatusCheckUseCase(statusCheckRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	callbackHandler := handlers.NewCallbackHandler(paymentUseCase)
	statusCheckHandler := handlers.NewStatusCheckHandler(statusCheckUseCase)

	// Rute publice
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, callbackHandler, statusCheckHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware())
}

// corsMiddleware mirrors the storefront expectation: any origin may call the
// payment endpoints (the MAIB callback never sends an Origin header anyway).
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
