package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/metrics"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

//go:generate mockery --name PaymentProvider --output ../mocks
type PaymentProvider interface {
	// ParseEvent verifies the provider signature and reduces the payload to
	// a BillingEvent. Unsupported or malformed events return
	// ErrUnrecognizedBillingEvent.
	ParseEvent(payload []byte, signature string) (*domain.BillingEvent, error)
	CreateCheckoutSession(ctx context.Context, ownerID string) (*domain.CheckoutSession, error)
}

type BillingResult struct {
	Acknowledged   bool  `json:"acknowledged"`
	Queued         bool  `json:"queued,omitempty"`
	Duplicate      bool  `json:"duplicate,omitempty"`
	UpdatedRecords int64 `json:"updated_records"`
}

type BillingService struct {
	repo     repository.Repository
	payments PaymentProvider
	sqsSvc   SQSService
	metrics  metrics.Recorder
	logger   *logger.Logger
	async    bool
}

func NewBillingService(repo repository.Repository, payments PaymentProvider, sqsSvc SQSService, logger *logger.Logger, async bool) *BillingService {
	return &BillingService{
		repo:     repo,
		payments: payments,
		sqsSvc:   sqsSvc,
		metrics:  metrics.Nop{},
		logger:   logger,
		async:    async,
	}
}

func (s *BillingService) SetMetrics(recorder metrics.Recorder) {
	s.metrics = recorder
}

// OnCheckoutCompleted makes the owner pro with billingReference, on the
// entitlement record and on every existing ledger row.
func (s *BillingService) OnCheckoutCompleted(ctx context.Context, ownerID, billingReference string) (*BillingResult, error) {
	return s.HandleEvent(ctx, domain.BillingEvent{
		Type:             domain.BillingEventCheckoutCompleted,
		OwnerID:          ownerID,
		BillingReference: billingReference,
	})
}

// OnSubscriptionCanceled is acknowledged and recorded, but the owner keeps
// their current tier.
func (s *BillingService) OnSubscriptionCanceled(ctx context.Context, ownerID string) (*BillingResult, error) {
	return s.HandleEvent(ctx, domain.BillingEvent{
		Type:    domain.BillingEventSubscriptionCanceled,
		OwnerID: ownerID,
	})
}

// Receive verifies a raw webhook and either applies it or, in async mode,
// queues it for the billing worker.
func (s *BillingService) Receive(ctx context.Context, payload []byte, signature string) (*BillingResult, error) {
	event, err := s.payments.ParseEvent(payload, signature)
	if err != nil {
		s.metrics.IncBillingEvent("unknown", "rejected")
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedBillingEvent, err)
	}

	if s.async {
		if err := validateEvent(*event); err != nil {
			s.metrics.IncBillingEvent(string(event.Type), "rejected")
			return nil, err
		}
		if err := s.sqsSvc.SendBillingMessage(ctx, *event); err != nil {
			return nil, fmt.Errorf("failed to queue billing event: %w", err)
		}
		s.metrics.IncBillingEvent(string(event.Type), "queued")
		return &BillingResult{Acknowledged: true, Queued: true}, nil
	}

	return s.HandleEvent(ctx, *event)
}

// HandleEvent applies a verified event. Replaying an event id that was
// already applied is acknowledged without touching storage again.
func (s *BillingService) HandleEvent(ctx context.Context, event domain.BillingEvent) (*BillingResult, error) {
	if err := validateEvent(event); err != nil {
		s.metrics.IncBillingEvent(string(event.Type), "rejected")
		return nil, err
	}
	log := s.logger.With(zap.String("owner", event.OwnerID), zap.String("event_type", string(event.Type)), zap.String("event_id", event.ID))

	processed, err := s.repo.BillingEvent().IsProcessed(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if processed {
		log.Info("Billing event already processed")
		s.metrics.IncBillingEvent(string(event.Type), "duplicate")
		return &BillingResult{Acknowledged: true, Duplicate: true}, nil
	}

	switch event.Type {
	case domain.BillingEventCheckoutCompleted:
		updated, err := s.repo.BillingEvent().ApplyCheckout(ctx, event)
		if err != nil {
			log.Error("Failed to apply checkout", err)
			s.metrics.IncBillingEvent(string(event.Type), "error")
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		log.Info("Owner upgraded to pro", zap.Int64("updated_records", updated))
		s.metrics.IncBillingEvent(string(event.Type), "applied")
		return &BillingResult{Acknowledged: true, UpdatedRecords: updated}, nil

	case domain.BillingEventSubscriptionCanceled:
		if err := s.repo.BillingEvent().ApplyCancellation(ctx, event); err != nil {
			log.Error("Failed to record cancellation", err)
			s.metrics.IncBillingEvent(string(event.Type), "error")
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		log.Info("Subscription canceled, entitlement unchanged")
		s.metrics.IncBillingEvent(string(event.Type), "acknowledged")
		return &BillingResult{Acknowledged: true}, nil
	}

	return nil, ErrUnrecognizedBillingEvent
}

func (s *BillingService) CreateCheckout(ctx context.Context, ownerID string) (*domain.CheckoutSession, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrAuthenticationRequired
	}
	session, err := s.payments.CreateCheckoutSession(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to create checkout session", err, zap.String("owner", ownerID))
		return nil, fmt.Errorf("%w: %w", ErrCheckoutUnavailable, err)
	}
	return session, nil
}

func validateEvent(event domain.BillingEvent) error {
	if strings.TrimSpace(event.OwnerID) == "" {
		return ErrUnrecognizedBillingEvent
	}
	switch event.Type {
	case domain.BillingEventCheckoutCompleted:
		if strings.TrimSpace(event.BillingReference) == "" {
			return ErrUnrecognizedBillingEvent
		}
		return nil
	case domain.BillingEventSubscriptionCanceled:
		return nil
	}
	return ErrUnrecognizedBillingEvent
}
