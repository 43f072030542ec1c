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
	"github.com/kingrain94/pitchcraft-api/internal/repository/opensearch"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
	"github.com/kingrain94/pitchcraft-api/internal/worker"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	ctx := context.Background()

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	searchRepo := opensearch.NewRepository(osClient, osConfig)
	if err := searchRepo.CreateIndex(ctx); err != nil {
		appLogger.Fatal("Failed to create search index", err)
	}

	appLogger.Info("OpenSearch connection established for index worker")

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	sqsWorker := worker.NewSQSWorker(
		sqsService,
		sqsService.IndexQueueURL(),
		worker.NewIndexHandler(searchRepo),
		appLogger,
		2,
		5*time.Second,
	)
	sqsWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	sqsWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
