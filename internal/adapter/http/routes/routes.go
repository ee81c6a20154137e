package routes

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "serviexpress/docs" // This will be auto-generated
	"serviexpress/internal/adapter/http/handlers"
	repository2 "serviexpress/internal/adapter/persistence/repository"
	"serviexpress/internal/config"
	"serviexpress/internal/infrastructure/chat"
	"serviexpress/internal/infrastructure/database"
	"serviexpress/internal/infrastructure/payments"
	"serviexpress/internal/infrastructure/queue"
	"serviexpress/internal/usecase"
	"serviexpress/internal/worker"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the whole engine and starts the server. Background consumers
// (webhook worker, completion observer, expiry sweeper) stop on SIGINT or
// SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	getRoutes(ctx, cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg.AWSRegion, cfg.DynamoDBEndpoint)
	rdb := queue.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	payoutRepo := repository2.NewPayoutDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	skillRepo := repository2.NewSkillDynamoRepository(ddb)

	chatGateway, err := chat.NewStreamGateway(cfg.StreamAPIKey, cfg.StreamAPISecret)
	if err != nil {
		log.Fatalf("Stream gateway not configured: %v", err)
	}
	paymentProvider, err := payments.NewPayPalGateway(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalWebhookID, cfg.PayPalLive)
	if err != nil {
		log.Fatalf("PayPal gateway not configured: %v", err)
	}
	webhookQueue := queue.NewRedisQueue(rdb, cfg.QueuePollTimeout)

	completionObserver := worker.NewCompletionObserver()
	skillResolver := usecase.NewSkillResolver(skillRepo)

	requestUseCase := usecase.NewRequestUseCase(requestRepo, userRepo, skillResolver, chatGateway, completionObserver, cfg.AdminID)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, requestRepo, chatGateway, cfg.AdminID)
	payoutUseCase := usecase.NewPayoutUseCase(payoutRepo, requestRepo, quotationRepo, userRepo, paymentProvider, cfg.PlatformCommissionRate, cfg.PlatformReceiverEmail)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quotationRepo, requestRepo, payoutUseCase, chatGateway, cfg.AdminID)

	go completionObserver.Run(ctx, requestUseCase)
	go worker.NewExpirySweeper(requestUseCase, cfg.ExpirySweepInterval).Run(ctx)
	go worker.NewCaptureWorker(webhookQueue, paymentUseCase, payoutUseCase, cfg.WorkerMaxAttempts).Run(ctx)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	payoutHandler := handlers.NewPayoutHandler(payoutUseCase)
	webhookHandler := handlers.NewPayPalWebhookHandler(paymentProvider, webhookQueue)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, requestHandler, quotationHandler, payoutHandler)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
