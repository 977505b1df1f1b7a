package routes

import (
	"os"

	_ "villaweb/docs" // This will be auto-generated
	"villaweb/internal/adapter/http/handlers"
	repository2 "villaweb/internal/adapter/persistence/repository"
	"villaweb/internal/domain/pricing"
	"villaweb/internal/infrastructure/auth"
	"villaweb/internal/infrastructure/database"
	"villaweb/internal/infrastructure/pdf"
	"villaweb/internal/usecase"
	"villaweb/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	eventRepo := repository2.NewQuoteEventDynamoRepository(ddb)

	engine := pricing.NewEngine(pricing.DefaultConfig())
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, eventRepo, engine)

	// The renderer is optional: without it the service still quotes, only the
	// PDF route answers 503.
	var renderer interfaces.IPDFRenderer
	abacusRenderer, err := pdf.NewAbacusRenderer(os.Getenv("PDF_SERVICE_TOKEN"))
	if err != nil {
		log.Printf("PDF renderer not configured: %v", err)
	} else {
		renderer = abacusRenderer
	}
	pdfUseCase := usecase.NewQuotePDFUseCase(quoteUseCase, renderer)

	var authorizer interfaces.IAdminAuthorizer
	tokenAuthorizer, err := auth.NewStaticTokenAuthorizer(os.Getenv("ADMIN_API_TOKEN"))
	if err != nil {
		log.Printf("Admin authorizer not configured: %v", err)
	} else {
		authorizer = tokenAuthorizer
	}

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	pdfHandler := handlers.NewQuotePDFHandler(pdfUseCase)
	adminHandler := handlers.NewAdminQuoteHandler(quoteUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, pdfHandler)

	// Rutas de administración
	admin := v1.Group("/admin", adminAuth(authorizer))
	addAdminQuoteRoutes(admin, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
