package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/pitchcraft-api/internal/api/dto"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/service"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const (
	maxWebhookBodyBytes   = int64(65536)
	stripeSignatureHeader = "Stripe-Signature"
)

type BillingEventService interface {
	Receive(ctx context.Context, payload []byte, signature string) (*service.BillingResult, error)
	CreateCheckout(ctx context.Context, ownerID string) (*domain.CheckoutSession, error)
}

type BillingHandler struct {
	*BaseHandler
	service BillingEventService
	logger  *logger.Logger
}

func NewBillingHandler(service BillingEventService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{service: service, logger: logger}
}

// CreateCheckout Start a pro subscription checkout
// @Summary Create checkout session
// @Tags    billing
// @Produce json
// @Success 200 {object} dto.CheckoutResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	session, err := h.service.CreateCheckout(h.RequestCtx(c), h.OwnerID(c))
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	case errors.Is(err, service.ErrCheckoutUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.Error{Error: "Checkout is not available right now"})
		return
	case err != nil:
		h.logger.Error("Failed to create checkout session", err)
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// Webhook Receive payment provider events
// @Summary Billing webhook
// @Description Verifies the provider signature, then applies checkout completion or acknowledges subscription cancellation
// @Tags    billing
// @Accept  json
// @Produce json
// @Param   Stripe-Signature header string true "Provider signature"
// @Success 200 {object} dto.BillingAckResponse
// @Failure 400 {object} dto.Error
// @Failure 413 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /billing/webhook [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Failed to read request body"})
		return
	}
	if int64(len(payload)) > maxWebhookBodyBytes {
		c.JSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "Request body too large"})
		return
	}

	result, err := h.service.Receive(h.RequestCtx(c), payload, c.GetHeader(stripeSignatureHeader))
	if errors.Is(err, service.ErrUnrecognizedBillingEvent) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: service.ErrUnrecognizedBillingEvent.Error()})
		return
	}
	if err != nil {
		h.logger.Error("Failed to handle billing event", err)
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, dto.BillingAckResponse{
		Received:       result.Acknowledged,
		Queued:         result.Queued,
		Duplicate:      result.Duplicate,
		UpdatedRecords: result.UpdatedRecords,
	})
}
