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

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

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

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	appLogger.Info("Database, SQS and S3 connections established for export worker")

	exportWorker := worker.NewSQSWorker(
		sqsService,
		sqsService.ExportQueueURL(),
		worker.NewExportHandler(service.NewPitchService(repo, sqsService, cfg.FreePitchLimit), s3Client, s3Config.BucketName, appLogger),
		appLogger,
		1,
		5*time.Second,
	)
	exportWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	exportWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
