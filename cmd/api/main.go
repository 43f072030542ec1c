package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/kingrain94/pitchcraft-api/docs"
	"github.com/kingrain94/pitchcraft-api/internal/api"
	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/metrics"
	"github.com/kingrain94/pitchcraft-api/internal/middleware"
	"github.com/kingrain94/pitchcraft-api/internal/repository/composite"
	"github.com/kingrain94/pitchcraft-api/internal/repository/postgres"
	"github.com/kingrain94/pitchcraft-api/internal/service"
	"github.com/kingrain94/pitchcraft-api/internal/service/generator"
	"github.com/kingrain94/pitchcraft-api/internal/service/payment"
	"github.com/kingrain94/pitchcraft-api/internal/service/pubsub"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

// @title           Pitchcraft API
// @version         1.0
// @description     Generates cold outreach pitches with a language model, keeps each owner's pitch history and enforces the free tier quota.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := postgres.AutoMigrate(dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}
	appLogger.Info("Database connections established - writer and reader connected")

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	redisClient, err := config.DefaultRedisConfig().GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)
	if err := repo.Search().CreateIndex(ctx); err != nil {
		// Search degrades to an empty result until the index exists.
		appLogger.Warn("Failed to create search index", zap.Error(err))
	}

	gen, closeGenerator := newGenerator(ctx, appLogger)
	defer closeGenerator()

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	generationService := service.NewGenerationService(repo, gen, sqsService, appLogger, service.GenerationOptions{
		FreeLimit:   cfg.FreePitchLimit,
		StrictQuota: cfg.StrictQuota,
		Timeout:     cfg.GenerationTimeout,
	})
	generationService.SetChunkPublisher(redisPubSub)
	generationService.SetMetrics(appMetrics)

	billingService := service.NewBillingService(repo, payment.NewStripeProvider(config.DefaultStripeConfig()), sqsService, appLogger, cfg.BillingAsync)
	billingService.SetMetrics(appMetrics)

	authMiddleware := newAuthMiddleware(ctx, cfg, appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	server := api.NewServer(
		api.Services{
			Generator: generationService,
			History:   service.NewPitchService(repo, sqsService, cfg.FreePitchLimit),
			Account:   service.NewAccountService(repo, cfg.FreePitchLimit),
			Billing:   billingService,
			Chunks:    redisPubSub,
		},
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg.GlobalRateLimit,
		appLogger,
	)
	server.StartWebSocketHub()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), appMetrics.GinMiddleware())

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Generations in flight get the full generation timeout to land.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GenerationTimeout+5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	server.StopWebSocketHub()

	appLogger.Info("Server exiting")
	appLogger.Sync()
}

// newAuthMiddleware verifies identity provider tokens through JWKS when
// AUTH_JWKS_URL is set, and falls back to the shared HS256 secret.
func newAuthMiddleware(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) *middleware.AuthMiddleware {
	if cfg.AuthJWKSURL == "" {
		if cfg.JWTSecretKey == "" {
			appLogger.Fatal("Failed to configure auth", errors.New("either AUTH_JWKS_URL or JWT_SECRET_KEY is required"))
		}
		return middleware.NewAuthMiddleware(cfg)
	}

	auth, err := middleware.NewJWKSAuthMiddleware(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to load JWKS", err)
	}
	appLogger.Info("Verifying tokens against JWKS", zap.String("url", cfg.AuthJWKSURL))
	return auth
}

func newGenerator(ctx context.Context, appLogger *logger.Logger) (generator.Generator, func()) {
	geminiConfig := config.DefaultGeminiConfig()
	if geminiConfig.Stub {
		appLogger.Warn("GEMINI_STUB is set, completions are canned")
		return generator.NewStubGenerator(geminiConfig.StubDelay), func() {}
	}

	gemini, err := generator.NewGeminiGenerator(ctx, geminiConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create generator", err)
	}
	return gemini, func() {
		if err := gemini.Close(); err != nil {
			appLogger.Error("Failed to close generator", err)
		}
	}
}
