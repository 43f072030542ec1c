package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/pitchcraft-api/internal/middleware"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	pitch      *PitchHandler
	account    *AccountHandler
	billing    *BillingHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	globalRate int
}

type Services struct {
	Generator PitchGenerator
	History   PitchHistoryService
	Account   AccountStatusService
	Billing   BillingEventService
	Chunks    ChunkSubscriber
}

func NewServer(
	services Services,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	globalRateLimit int,
	logger *logger.Logger,
) *Server {
	return &Server{
		pitch:      NewPitchHandler(services.Generator, services.History),
		account:    NewAccountHandler(services.Account),
		billing:    NewBillingHandler(services.Billing, logger),
		websocket:  NewWebSocketHandler(logger, services.Chunks),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		globalRate: globalRateLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(middleware.RequestID())
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(maxRequestBodyBytes))
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))

	pitches := api.Group("/pitches", s.auth.JWTAuth(), s.rateLimit.OwnerRateLimit())
	{
		pitches.POST("", s.pitch.GeneratePitch)
		pitches.GET("", s.pitch.ListPitches)
		pitches.GET("/latest", s.pitch.LatestPitch)
		pitches.GET("/count", s.pitch.CountPitches)
		pitches.GET("/search", s.pitch.SearchPitches)
		pitches.GET("/export", s.pitch.ExportPitches)
		pitches.POST("/archive", s.pitch.ArchivePitches)
		pitches.GET("/stream", s.websocket.HandleWebSocket)
		pitches.GET("/:id", s.pitch.GetPitch)
	}

	api.GET("/account", s.auth.JWTAuth(), s.rateLimit.OwnerRateLimit(), s.account.GetAccount)

	billing := api.Group("/billing")
	{
		billing.POST("/checkout", s.auth.JWTAuth(), s.rateLimit.OwnerRateLimit(), s.billing.CreateCheckout)
		// Authenticated by the provider signature, not a bearer token.
		billing.POST("/webhook", s.billing.Webhook)
	}
}

// StartWebSocketHub starts fanning out pitch chunks to websocket clients
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
