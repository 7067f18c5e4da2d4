package routes

import (
	"log"
	"os"
	"strconv"

	_ "quoteflow/docs" // This will be auto-generated
	"quoteflow/internal/adapter/http/handlers"
	repository2 "quoteflow/internal/adapter/persistence/repository"
	"quoteflow/internal/infrastructure/database"
	"quoteflow/internal/infrastructure/notifications"
	"quoteflow/internal/usecase"
	"quoteflow/internal/usecase/interfaces"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	transitionRepo := repository2.NewTransitionDynamoRepository(ddb)

	var notifier interfaces.INotificationSender
	sender, err := notifications.NewHTTPSender(os.Getenv("NOTIFICATION_SERVICE_URL"))
	if err != nil {
		log.Printf("Notification sender not configured: %v", err)
	} else {
		notifier = sender
	}

	quoteFlowUseCase := usecase.NewQuoteFlowUseCase(quoteRepo, transitionRepo, notifier)
	jobFlowUseCase := usecase.NewJobFlowUseCase(jobRepo, transitionRepo)
	portalSweepUseCase := usecase.NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)

	quoteFlowHandler := handlers.NewQuoteFlowHandler(quoteFlowUseCase)
	jobFlowHandler := handlers.NewJobFlowHandler(jobFlowUseCase)
	statusFlowHandler := handlers.NewStatusFlowHandler(portalSweepUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStatusFlowRoutes(v1, quoteFlowHandler, jobFlowHandler, statusFlowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
