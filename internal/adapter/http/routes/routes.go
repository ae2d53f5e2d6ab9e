package routes

import (
	"log"
	"os"
	"strconv"

	_ "aga_techserv/docs" // This will be auto-generated
	"aga_techserv/internal/adapter/http/handlers"
	repository2 "aga_techserv/internal/adapter/persistence/repository"
	"aga_techserv/internal/domain/workflow"
	"aga_techserv/internal/infrastructure/attendance"
	"aga_techserv/internal/infrastructure/database"
	"aga_techserv/internal/infrastructure/mailer"
	"aga_techserv/internal/infrastructure/payments"
	"aga_techserv/internal/infrastructure/render"
	"aga_techserv/internal/infrastructure/storage"
	"aga_techserv/internal/scheduler"
	"aga_techserv/internal/usecase"
	"aga_techserv/internal/usecase/interfaces"
	"aga_techserv/pkg/logger"

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
	zlog := logger.Must(logger.New())
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	estimationRepo := repository2.NewEstimationDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	lpoRepo := repository2.NewLPODynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	commentRepo := repository2.NewCommentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	objectStorage := storage.NewS3Storage(storage.ConnectS3())
	renderer := render.NewGotenbergRenderer()
	attendanceProvider := attendance.NewHTTPAttendanceProvider()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	graph := workflow.NewGraph()
	notifier := usecase.NewNotifier(userRepo, mailer.NewGomailMailer(), zlog)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, sequenceRepo, userRepo, commentRepo, graph, notifier, zlog)
	estimationUseCase := usecase.NewEstimationUseCase(estimationRepo, projectRepo, commentRepo, graph, notifier, zlog)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, estimationRepo, projectRepo, commentRepo, graph, notifier, zlog)
	lpoUseCase := usecase.NewLPOUseCase(lpoRepo, projectRepo, commentRepo, objectStorage, notifier, zlog)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo, projectRepo, attendanceProvider, zlog)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, quotationRepo, projectRepo, commentRepo, paymentGateway, renderer, objectStorage, graph, notifier, zlog)

	if err := scheduler.New(projectRepo, invoiceRepo, notifier, zlog).Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	estimationHandler := handlers.NewEstimationHandler(estimationUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	lpoHandler := handlers.NewLPOHandler(lpoUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, workflowHandlers{
		projects:    projectHandler,
		estimations: estimationHandler,
		quotations:  quotationHandler,
		lpos:        lpoHandler,
		expenses:    expenseHandler,
		invoices:    invoiceHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
