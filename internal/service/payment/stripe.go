package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

const (
	// OwnerMetadataKey carries the owner id on checkout sessions and the
	// subscriptions they create.
	OwnerMetadataKey = "owner"

	eventCheckoutCompleted   = "checkout.session.completed"
	eventSubscriptionDeleted = "customer.subscription.deleted"
)

var (
	ErrInvalidSignature = errors.New("signature verification failed")
	ErrUnsupportedEvent = errors.New("unsupported event type")
	ErrMalformedEvent   = errors.New("malformed event payload")
	ErrNotConfigured    = errors.New("billing not configured")
)

type checkoutCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

type StripeProvider struct {
	config         *config.StripeConfig
	createCheckout checkoutCreator
	now            func() time.Time
}

func NewStripeProvider(cfg *config.StripeConfig) *StripeProvider {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return &StripeProvider{
		config:         cfg,
		createCheckout: sc.CheckoutSessions.New,
		now:            time.Now,
	}
}

// ParseEvent verifies the Stripe-Signature header and maps the event to a
// BillingEvent.
func (p *StripeProvider) ParseEvent(payload []byte, signature string) (*domain.BillingEvent, error) {
	if p.config.WebhookSecret == "" {
		return nil, ErrNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		p.config.WebhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if event.Data == nil {
		return nil, ErrMalformedEvent
	}

	billingEvent := &domain.BillingEvent{
		ID:         event.ID,
		ReceivedAt: p.now().UTC(),
	}

	switch string(event.Type) {
	case eventCheckoutCompleted:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
		}
		owner := strings.TrimSpace(sess.ClientReferenceID)
		if owner == "" {
			owner = strings.TrimSpace(sess.Metadata[OwnerMetadataKey])
		}
		if owner == "" || sess.ID == "" {
			return nil, ErrMalformedEvent
		}
		billingEvent.Type = domain.BillingEventCheckoutCompleted
		billingEvent.OwnerID = owner
		billingEvent.BillingReference = sess.ID

	case eventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
		}
		owner := strings.TrimSpace(sub.Metadata[OwnerMetadataKey])
		if owner == "" {
			return nil, ErrMalformedEvent
		}
		billingEvent.Type = domain.BillingEventSubscriptionCanceled
		billingEvent.OwnerID = owner

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEvent, event.Type)
	}

	return billingEvent, nil
}

// CreateCheckoutSession starts a subscription checkout for the pro price.
// The owner is carried as client_reference_id and as metadata on both the
// session and the resulting subscription.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, ownerID string) (*domain.CheckoutSession, error) {
	if p.config.SecretKey == "" || p.config.PriceIDPro == "" || p.config.FrontendURL == "" {
		return nil, ErrNotConfigured
	}

	metadata := map[string]string{OwnerMetadataKey: ownerID}
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		ClientReferenceID: stripe.String(ownerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.config.PriceIDPro),
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
		SuccessURL: stripe.String(p.config.CheckoutSuccessURL()),
		CancelURL:  stripe.String(p.config.CheckoutCancelURL()),
	}
	params.Context = ctx
	params.Metadata = metadata

	sess, err := p.createCheckout(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session failed: %w", err)
	}

	return &domain.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
