package routes

import (
	"log"
	"strconv"

	_ "servicecalc/docs" // This will be auto-generated
	"servicecalc/internal/adapter/http/handlers"
	repository2 "servicecalc/internal/adapter/persistence/repository"
	"servicecalc/internal/infrastructure/database"
	"servicecalc/internal/infrastructure/mail"
	"servicecalc/internal/usecase"
	"servicecalc/internal/usecase/interfaces"

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

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb)

	var mailer interfaces.IMailSender
	smtpSender, err := mail.NewSMTPSenderFromEnv()
	if err != nil {
		log.Printf("SMTP sender not configured, notifications disabled: %v", err)
		mailer = mail.NopSender{}
	} else {
		mailer = smtpSender
	}

	calculatorUseCase := usecase.NewCalculatorUseCase(catalogRepo, settingsRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(calculatorUseCase, submissionRepo, settingsRepo, mailer)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo)

	calculatorHandler := handlers.NewCalculatorHandler(calculatorUseCase)
	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCalculatorRoutes(v1, calculatorHandler, inquiryHandler)
	addCatalogRoutes(v1, catalogHandler)
	addSubmissionRoutes(v1, submissionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
