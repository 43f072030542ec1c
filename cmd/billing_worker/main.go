package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/repository/composite"
	"github.com/kingrain94/pitchcraft-api/internal/service"
	"github.com/kingrain94/pitchcraft-api/internal/service/payment"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
	"github.com/kingrain94/pitchcraft-api/internal/worker"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

// Applies billing events queued by the webhook when BILLING_ASYNC is set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	ctx := context.Background()

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// async=false: events pulled off the queue are applied, never re-queued.
	billingService := service.NewBillingService(repo, payment.NewStripeProvider(config.DefaultStripeConfig()), sqsService, appLogger, false)

	billingWorker := worker.NewSQSWorker(
		sqsService,
		sqsService.BillingQueueURL(),
		worker.NewBillingHandler(billingService),
		appLogger,
		1,
		2*time.Second,
	)
	billingWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	billingWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
